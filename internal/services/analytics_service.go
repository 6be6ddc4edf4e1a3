// internal/services/analytics_service.go
package services

import (
	"github.com/orderdesk/backend/internal/analyzer"
	"github.com/orderdesk/backend/internal/store"
)

// AnalyticsService materializes collections from the store and delegates the
// aggregation to the pure analyzer package. Rendering the results is the
// caller's business.
type AnalyticsService struct {
	store store.Store
}

func NewAnalyticsService(s store.Store) *AnalyticsService {
	return &AnalyticsService{store: s}
}

func (s *AnalyticsService) TopClients(limit int) ([]analyzer.TopClient, error) {
	clients, err := s.store.GetClients()
	if err != nil {
		return nil, err
	}
	orders, err := s.store.GetOrders()
	if err != nil {
		return nil, err
	}
	return analyzer.TopClientsByOrders(clients, orders, limit), nil
}

func (s *AnalyticsService) Statistics() (analyzer.SalesStatistics, error) {
	clients, err := s.store.GetClients()
	if err != nil {
		return analyzer.SalesStatistics{}, err
	}
	products, err := s.store.GetProducts()
	if err != nil {
		return analyzer.SalesStatistics{}, err
	}
	orders, err := s.store.GetOrders()
	if err != nil {
		return analyzer.SalesStatistics{}, err
	}
	return analyzer.ComputeSalesStatistics(clients, products, orders), nil
}

func (s *AnalyticsService) TopProducts(limit int) ([]analyzer.ProductSales, error) {
	products, err := s.store.GetProducts()
	if err != nil {
		return nil, err
	}
	orders, err := s.store.GetOrders()
	if err != nil {
		return nil, err
	}
	return analyzer.TopProductsByQuantity(products, orders, limit), nil
}

func (s *AnalyticsService) ClientNetwork() (*analyzer.Graph, error) {
	clients, err := s.store.GetClients()
	if err != nil {
		return nil, err
	}
	orders, err := s.store.GetOrders()
	if err != nil {
		return nil, err
	}
	return analyzer.ClientNetwork(clients, orders), nil
}

func (s *AnalyticsService) SalesOverTime(period analyzer.Period) ([]analyzer.RevenueBucket, error) {
	orders, err := s.store.GetOrders()
	if err != nil {
		return nil, err
	}
	return analyzer.SalesOverTime(orders, period)
}
