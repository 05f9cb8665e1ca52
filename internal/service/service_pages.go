package service

import (
	"context"

	"github.com/MKhiriev/dashboard-server/internal/pages"
)

type pageService struct {
	table *pages.Table
}

func NewPageService(table *pages.Table) PageService {
	return &pageService{table: table}
}

func (s *pageService) Routes(ctx context.Context) []pages.Route {
	return s.table.Routes()
}

func (s *pageService) Match(ctx context.Context, path string) pages.Match {
	return s.table.Match(path)
}
