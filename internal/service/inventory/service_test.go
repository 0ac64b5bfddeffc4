package inventory

import (
	"context"
	"io"
	"strings"
	"testing"

	"plantstore/internal/domain"
	plantrepo "plantstore/internal/repository/plant"
)

type stubPlantRepo struct {
	lastFilter plantrepo.ListFilter
	byID       map[string]domain.Plant
	deleted    []string
}

func newStubPlantRepo() *stubPlantRepo {
	return &stubPlantRepo{byID: map[string]domain.Plant{}}
}

func (r *stubPlantRepo) List(_ context.Context, f plantrepo.ListFilter) ([]domain.Plant, int, error) {
	r.lastFilter = f
	return nil, 0, nil
}

func (r *stubPlantRepo) GetByID(_ context.Context, id string) (*domain.Plant, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *stubPlantRepo) Create(_ context.Context, p domain.Plant) (*domain.Plant, error) {
	p.ID = "plant-1"
	r.byID[p.ID] = p
	return &p, nil
}

func (r *stubPlantRepo) Update(_ context.Context, p domain.Plant) (*domain.Plant, error) {
	r.byID[p.ID] = p
	return &p, nil
}

func (r *stubPlantRepo) Delete(_ context.Context, nurseryID, id string) error {
	p, ok := r.byID[id]
	if !ok || p.NurseryID != nurseryID {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubPlantRepo) Upsert(_ context.Context, p domain.Plant) (*domain.Plant, error) {
	return &p, nil
}

type stubMedia struct{ saved []string }

func (m *stubMedia) Save(filename string, _ io.Reader) (string, error) {
	m.saved = append(m.saved, filename)
	return "http://host/media/key.png", nil
}

func TestCreateValidation(t *testing.T) {
	svc := New(newStubPlantRepo(), &stubMedia{})
	ctx := context.Background()

	cases := []struct {
		name string
		in   PlantInput
	}{
		{"missing name", PlantInput{PriceCents: 100}},
		{"negative price", PlantInput{Name: "Fern", PriceCents: -1}},
		{"negative stock", PlantInput{Name: "Fern", PriceCents: 100, Stock: -2}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, "n1", tc.in); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}

	p, err := svc.Create(ctx, "n1", PlantInput{Name: " Fern ", PriceCents: 150_00, Stock: 3, Type: "indoor"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Name != "Fern" || p.NurseryID != "n1" {
		t.Fatalf("unexpected plant: %+v", p)
	}
}

func TestUpdateOwnership(t *testing.T) {
	repo := newStubPlantRepo()
	svc := New(repo, &stubMedia{})
	ctx := context.Background()

	created, err := svc.Create(ctx, "n1", PlantInput{Name: "Fern", PriceCents: 150_00, Stock: 3})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Another nursery cannot update the plant.
	if _, err := svc.Update(ctx, "n2", created.ID, PlantInput{Name: "Stolen", PriceCents: 1}); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign nursery, got %v", err)
	}

	got, err := svc.Update(ctx, "n1", created.ID, PlantInput{Name: "Boston Fern", PriceCents: 175_00, Stock: 2})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Boston Fern" || got.PriceCents != 175_00 {
		t.Fatalf("unexpected plant after update: %+v", got)
	}
}

func TestDeleteScopedToNursery(t *testing.T) {
	repo := newStubPlantRepo()
	svc := New(repo, &stubMedia{})
	ctx := context.Background()

	created, err := svc.Create(ctx, "n1", PlantInput{Name: "Fern", PriceCents: 150_00})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, "n2", created.ID); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "n1", created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestListScopesToNursery(t *testing.T) {
	repo := newStubPlantRepo()
	svc := New(repo, &stubMedia{})

	if _, _, err := svc.List(context.Background(), "n1", 2, 0); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastFilter.NurseryID != "n1" {
		t.Fatalf("expected nursery filter, got %+v", repo.lastFilter)
	}
	if repo.lastFilter.Limit != 10 || repo.lastFilter.Offset != 10 {
		t.Fatalf("expected default page size and offset 10, got %+v", repo.lastFilter)
	}
}

func TestSaveImage(t *testing.T) {
	media := &stubMedia{}
	svc := New(newStubPlantRepo(), media)

	url, err := svc.SaveImage("leaf.png", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("save image: %v", err)
	}
	if url == "" || len(media.saved) != 1 {
		t.Fatalf("expected image to be saved, got url=%q saved=%v", url, media.saved)
	}
}
