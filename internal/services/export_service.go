// internal/services/export_service.go
package services

import (
	"io"

	"github.com/orderdesk/backend/internal/interchange"
	"github.com/orderdesk/backend/internal/store"
)

type ExportService struct {
	store store.Store
}

func NewExportService(s store.Store) *ExportService {
	return &ExportService{store: s}
}

func (s *ExportService) ExportDocument() (*interchange.Document, error) {
	return interchange.Export(s.store)
}

// ImportDocument replaces the store contents; ids are regenerated.
func (s *ExportService) ImportDocument(doc *interchange.Document) error {
	return interchange.Import(s.store, doc)
}

func (s *ExportService) WriteCSV(kind interchange.EntityKind, w io.Writer) error {
	return interchange.ExportCSV(s.store, kind, w)
}
