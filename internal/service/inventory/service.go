package inventory

import (
	"context"
	"fmt"
	"io"
	"strings"

	"plantstore/internal/domain"
	plantrepo "plantstore/internal/repository/plant"
)

// imageSaver is the slice of the media store the service needs.
type imageSaver interface {
	Save(filename string, r io.Reader) (string, error)
}

// Service manages one nursery's plant listings. Every call is scoped to the
// calling nursery; touching another nursery's plant surfaces as not found.
type Service struct {
	plants plantrepo.Repository
	media  imageSaver
}

func New(plants plantrepo.Repository, media imageSaver) *Service {
	return &Service{plants: plants, media: media}
}

// PlantInput is the editable plant payload for create and update.
type PlantInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Stock       int    `json:"stock"`
	Type        string `json:"type"`
	Season      string `json:"season"`
	ImageURL    string `json:"imageUrl"`
}

func (in PlantInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if in.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	if in.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

// List pages through the nursery's own plants.
func (s *Service) List(ctx context.Context, nurseryID string, page, pageSize int) ([]domain.Plant, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.plants.List(ctx, plantrepo.ListFilter{
		NurseryID: nurseryID,
		Limit:     pageSize,
		Offset:    (page - 1) * pageSize,
	})
}

// Create adds a plant to the nursery's catalog.
func (s *Service) Create(ctx context.Context, nurseryID string, in PlantInput) (*domain.Plant, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.plants.Create(ctx, domain.Plant{
		NurseryID:   nurseryID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
		Type:        in.Type,
		Season:      in.Season,
		ImageURL:    in.ImageURL,
	})
}

// Update rewrites a plant the nursery owns.
func (s *Service) Update(ctx context.Context, nurseryID, plantID string, in PlantInput) (*domain.Plant, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	cur, err := s.plants.GetByID(ctx, plantID)
	if err != nil {
		return nil, err
	}
	if cur.NurseryID != nurseryID {
		return nil, domain.ErrNotFound
	}
	return s.plants.Update(ctx, domain.Plant{
		ID:          plantID,
		NurseryID:   nurseryID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
		Type:        in.Type,
		Season:      in.Season,
		ImageURL:    in.ImageURL,
	})
}

// Delete removes a plant the nursery owns.
func (s *Service) Delete(ctx context.Context, nurseryID, plantID string) error {
	return s.plants.Delete(ctx, nurseryID, plantID)
}

// SaveImage stores an uploaded image and returns its public URL.
func (s *Service) SaveImage(filename string, r io.Reader) (string, error) {
	return s.media.Save(filename, r)
}
