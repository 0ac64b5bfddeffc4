package importer

import (
	"context"
	"strings"
	"testing"

	"plantstore/internal/domain"
)

type recordingWriter struct {
	plants []domain.Plant
}

func (w *recordingWriter) Upsert(_ context.Context, p domain.Plant) (*domain.Plant, error) {
	w.plants = append(w.plants, p)
	return &p, nil
}

func TestRun(t *testing.T) {
	csvData := `name,description,price,stock,type,season,image_url
Monstera Deliciosa,Split-leaf philodendron,450,12,indoor,all,http://img/monstera.png
Boston Fern,Hanging fern,199.50,20,indoor,monsoon,
,,,,,
Hybrid Tea Rose,Fragrant rose,250,8,outdoor,winter,http://img/rose.png
`
	w := &recordingWriter{}
	imp := NewCSVImporter(strings.NewReader(csvData), w, "n1")

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 imported, got %d", count)
	}

	first := w.plants[0]
	if first.Name != "Monstera Deliciosa" || first.NurseryID != "n1" {
		t.Fatalf("unexpected first plant: %+v", first)
	}
	if first.PriceCents != 450_00 || first.Stock != 12 {
		t.Fatalf("unexpected price/stock: %+v", first)
	}
	if w.plants[1].PriceCents != 199_50 {
		t.Fatalf("expected decimal price converted to cents, got %d", w.plants[1].PriceCents)
	}
	if w.plants[2].ImageURL != "http://img/rose.png" {
		t.Fatalf("expected image url kept, got %q", w.plants[2].ImageURL)
	}
}

func TestRunColumnOrderIndependent(t *testing.T) {
	csvData := `price,name,stock
90,Golden Barrel Cactus,0
`
	w := &recordingWriter{}
	imp := NewCSVImporter(strings.NewReader(csvData), w, "n1")

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if count != 1 || w.plants[0].Name != "Golden Barrel Cactus" || w.plants[0].PriceCents != 90_00 {
		t.Fatalf("unexpected result: count=%d plants=%+v", count, w.plants)
	}
}

func TestRunRejectsBadRows(t *testing.T) {
	cases := []struct {
		name string
		csv  string
	}{
		{"missing price", "name,price\nFern,\n"},
		{"negative price", "name,price\nFern,-5\n"},
		{"bad stock", "name,price,stock\nFern,100,lots\n"},
	}
	for _, tc := range cases {
		w := &recordingWriter{}
		imp := NewCSVImporter(strings.NewReader(tc.csv), w, "n1")
		if _, err := imp.Run(context.Background()); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}
