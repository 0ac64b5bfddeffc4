package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"plantstore/internal/domain"
)

type PlantWriter interface {
	Upsert(ctx context.Context, plant domain.Plant) (*domain.Plant, error)
}

// CSVImporter reads plant catalog CSV files and inserts/updates plants for
// one nursery.
type CSVImporter struct {
	reader    *csv.Reader
	plantRepo PlantWriter
	nurseryID string
}

func NewCSVImporter(r io.Reader, repo PlantWriter, nurseryID string) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:    csvr,
		plantRepo: repo,
		nurseryID: nurseryID,
	}
}

type csvRow struct {
	Name        string
	Description string
	PriceCents  int64
	Stock       int
	Type        string
	Season      string
	ImageURL    string
}

// Run parses CSV rows and upserts plants by name.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if row == nil {
			continue
		}

		_, err = i.plantRepo.Upsert(ctx, domain.Plant{
			NurseryID:   i.nurseryID,
			Name:        row.Name,
			Description: row.Description,
			PriceCents:  row.PriceCents,
			Stock:       row.Stock,
			Type:        row.Type,
			Season:      row.Season,
			ImageURL:    row.ImageURL,
		})
		if err != nil {
			return imported, fmt.Errorf("upsert plant %q: %w", row.Name, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (*csvRow, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field("name")
	if name == "" {
		return nil, nil // blank row
	}

	priceCents, err := parsePriceCents(field("price"))
	if err != nil {
		return nil, fmt.Errorf("row %q: %w", name, err)
	}

	stock := 0
	if s := field("stock"); s != "" {
		stock, err = strconv.Atoi(s)
		if err != nil || stock < 0 {
			return nil, fmt.Errorf("row %q: invalid stock %q", name, s)
		}
	}

	return &csvRow{
		Name:        name,
		Description: field("description"),
		PriceCents:  priceCents,
		Stock:       stock,
		Type:        field("type"),
		Season:      field("season"),
		ImageURL:    field("image_url"),
	}, nil
}

// parsePriceCents accepts whole-currency amounts like "250" or "199.50".
func parsePriceCents(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("price required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	return int64(math.Round(v * 100)), nil
}
