package catalog

import (
	"context"
	"strings"

	"plantstore/internal/domain"
	plantrepo "plantstore/internal/repository/plant"
)

// Price band boundaries, in cents.
const (
	priceBandLowMax  int64 = 200_00
	priceBandHighMin int64 = 500_00
)

const defaultPageSize = 10

// BrowseInput is the shopper-facing catalog query. All fields optional.
type BrowseInput struct {
	Search       string
	Type         string
	PriceRange   string // "low" | "medium" | "high"
	Availability string // "in_stock" | "out_of_stock"
	Page         int    // 1-based
	PageSize     int
}

// Page is one page of catalog results with the exact total match count.
type Page struct {
	Plants   []domain.Plant `json:"plants"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

// Service answers public catalog queries.
type Service struct {
	plants plantrepo.Repository
}

func New(plants plantrepo.Repository) *Service {
	return &Service{plants: plants}
}

// Browse lists plants matching the query, newest first.
func (s *Service) Browse(ctx context.Context, in BrowseInput) (*Page, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 {
		size = defaultPageSize
	}

	f := plantrepo.ListFilter{
		Search: strings.TrimSpace(in.Search),
		Type:   strings.TrimSpace(in.Type),
		Limit:  size,
		Offset: (page - 1) * size,
	}

	switch in.PriceRange {
	case "low":
		max := priceBandLowMax
		f.MaxPriceCents = &max
	case "medium":
		min, max := priceBandLowMax, priceBandHighMin
		f.MinPriceCents = &min
		f.MaxPriceCents = &max
	case "high":
		min := priceBandHighMin
		f.MinPriceCents = &min
	}

	switch in.Availability {
	case "in_stock":
		v := true
		f.InStock = &v
	case "out_of_stock":
		v := false
		f.InStock = &v
	}

	plants, total, err := s.plants.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &Page{Plants: plants, Total: total, Page: page, PageSize: size}, nil
}

// Get fetches one plant for the detail view.
func (s *Service) Get(ctx context.Context, id string) (*domain.Plant, error) {
	return s.plants.GetByID(ctx, id)
}
