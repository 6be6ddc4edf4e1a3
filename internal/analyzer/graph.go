// internal/analyzer/graph.go
package analyzer

import (
	"sort"

	"github.com/orderdesk/backend/internal/models"
)

// Graph is an undirected weighted graph over clients. Edges hold From < To
// and are ordered by (From, To) so renderings are deterministic.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

type Node struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

type Edge struct {
	From   uint `json:"from"`
	To     uint `json:"to"`
	Weight int  `json:"weight"`
}

// ClientNetwork links every pair of clients that purchased at least one
// common product. The edge weight is the size of the intersection of the
// product-id sets the two clients ever ordered; quantities are ignored.
// Pair enumeration is quadratic in client count, which is acceptable for
// the small client volumes this system targets and is a known scaling limit.
func ClientNetwork(clients []models.Client, orders []models.Order) *Graph {
	g := &Graph{
		Nodes: make([]Node, 0, len(clients)),
		Edges: []Edge{},
	}

	sortedClients := make([]models.Client, len(clients))
	copy(sortedClients, clients)
	sort.Slice(sortedClients, func(i, j int) bool { return sortedClients[i].ID < sortedClients[j].ID })

	for _, c := range sortedClients {
		g.Nodes = append(g.Nodes, Node{ID: c.ID, Label: c.Name})
	}

	purchased := make(map[uint]map[uint]struct{})
	for _, o := range orders {
		for _, item := range o.Items {
			if purchased[o.ClientID] == nil {
				purchased[o.ClientID] = make(map[uint]struct{})
			}
			purchased[o.ClientID][item.ProductID] = struct{}{}
		}
	}

	buyerIDs := make([]uint, 0, len(purchased))
	for id := range purchased {
		buyerIDs = append(buyerIDs, id)
	}
	sort.Slice(buyerIDs, func(i, j int) bool { return buyerIDs[i] < buyerIDs[j] })

	for i := 0; i < len(buyerIDs); i++ {
		for j := i + 1; j < len(buyerIDs); j++ {
			weight := intersectionSize(purchased[buyerIDs[i]], purchased[buyerIDs[j]])
			if weight > 0 {
				g.Edges = append(g.Edges, Edge{From: buyerIDs[i], To: buyerIDs[j], Weight: weight})
			}
		}
	}

	return g
}

func intersectionSize(a, b map[uint]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for id := range a {
		if _, ok := b[id]; ok {
			count++
		}
	}
	return count
}
