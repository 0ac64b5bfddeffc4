package address

import (
	"context"
	"fmt"
	"strings"

	"plantstore/internal/domain"
	addressrepo "plantstore/internal/repository/address"
)

// Service manages a user's saved delivery addresses.
type Service struct {
	repo addressrepo.Repository
}

func New(repo addressrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Input is the editable address payload.
type Input struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	IsDefault   bool   `json:"isDefault"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.AddressLine) == "" {
		return fmt.Errorf("%w: address line required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.City) == "" {
		return fmt.Errorf("%w: city required", domain.ErrInvalidInput)
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.Address, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Create(ctx context.Context, userID string, in Input) (*domain.Address, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Address{
		UserID:      userID,
		Name:        strings.TrimSpace(in.Name),
		Phone:       strings.TrimSpace(in.Phone),
		AddressLine: strings.TrimSpace(in.AddressLine),
		City:        strings.TrimSpace(in.City),
		PostalCode:  strings.TrimSpace(in.PostalCode),
		IsDefault:   in.IsDefault,
	})
}

func (s *Service) Update(ctx context.Context, userID, id string, in Input) (*domain.Address, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, domain.Address{
		ID:          id,
		UserID:      userID,
		Name:        strings.TrimSpace(in.Name),
		Phone:       strings.TrimSpace(in.Phone),
		AddressLine: strings.TrimSpace(in.AddressLine),
		City:        strings.TrimSpace(in.City),
		PostalCode:  strings.TrimSpace(in.PostalCode),
		IsDefault:   in.IsDefault,
	})
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}
