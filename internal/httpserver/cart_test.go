package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"plantstore/internal/domain"
)

func cartEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnv(t, func(d *Deps) {
		d.CatalogSvc = &stubCatalogSvc{plants: map[string]*domain.Plant{
			"p1": {ID: "p1", Name: "Fern", PriceCents: 150_00, Stock: 5, NurseryID: "n1"},
			"p2": {ID: "p2", Name: "Rose", PriceCents: 300_00, Stock: 2, NurseryID: "n1"},
			"p3": {ID: "p3", Name: "Cactus", PriceCents: 90_00, Stock: 0, NurseryID: "n1"},
		}}
	})
}

func decodeCart(t *testing.T, body []byte) cartResponse {
	t.Helper()
	var resp cartResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	return resp
}

func TestAddCartItem(t *testing.T) {
	env := cartEnv(t)

	rec := env.do(http.MethodPost, "/cart/items", "customer-token", `{"plantId":"p1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	resp := decodeCart(t, rec.Body.Bytes())
	if len(resp.Lines) != 1 || resp.Lines[0].Quantity != 1 || resp.TotalCents != 150_00 {
		t.Fatalf("unexpected cart: %+v", resp)
	}

	// Adding the same plant again leaves the cart unchanged.
	rec = env.do(http.MethodPost, "/cart/items", "customer-token", `{"plantId":"p1"}`)
	resp = decodeCart(t, rec.Body.Bytes())
	if len(resp.Lines) != 1 || resp.Lines[0].Quantity != 1 {
		t.Fatalf("expected duplicate add ignored, got %+v", resp)
	}
}

func TestAddCartItemUnknownPlant(t *testing.T) {
	env := cartEnv(t)
	rec := env.do(http.MethodPost, "/cart/items", "customer-token", `{"plantId":"nope"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAddCartItemOutOfStock(t *testing.T) {
	env := cartEnv(t)
	rec := env.do(http.MethodPost, "/cart/items", "customer-token", `{"plantId":"p3"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestSetCartQuantity(t *testing.T) {
	env := cartEnv(t)
	env.do(http.MethodPost, "/cart/items", "customer-token", `{"plantId":"p1"}`)
	env.do(http.MethodPost, "/cart/items", "customer-token", `{"plantId":"p2"}`)

	rec := env.do(http.MethodPut, "/cart/items/p1", "customer-token", `{"quantity":2}`)
	resp := decodeCart(t, rec.Body.Bytes())
	if resp.TotalCents != 600_00 {
		t.Fatalf("expected total 60000, got %d", resp.TotalCents)
	}
	if resp.Lines[0].LineTotalCents != 300_00 || resp.Lines[1].LineTotalCents != 300_00 {
		t.Fatalf("unexpected line totals: %+v", resp.Lines)
	}

	// Quantity zero removes the line.
	rec = env.do(http.MethodPut, "/cart/items/p1", "customer-token", `{"quantity":0}`)
	resp = decodeCart(t, rec.Body.Bytes())
	if len(resp.Lines) != 1 || resp.Lines[0].PlantID != "p2" {
		t.Fatalf("expected p1 removed, got %+v", resp)
	}
}

func TestRemoveAndClearCart(t *testing.T) {
	env := cartEnv(t)
	env.do(http.MethodPost, "/cart/items", "customer-token", `{"plantId":"p1"}`)
	env.do(http.MethodPost, "/cart/items", "customer-token", `{"plantId":"p2"}`)

	rec := env.do(http.MethodDelete, "/cart/items/p1", "customer-token", "")
	resp := decodeCart(t, rec.Body.Bytes())
	if len(resp.Lines) != 1 {
		t.Fatalf("expected one line after remove, got %+v", resp)
	}

	rec = env.do(http.MethodDelete, "/cart", "customer-token", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = env.do(http.MethodGet, "/cart", "customer-token", "")
	resp = decodeCart(t, rec.Body.Bytes())
	if len(resp.Lines) != 0 || resp.TotalCents != 0 {
		t.Fatalf("expected empty cart, got %+v", resp)
	}
}

func TestCartsIsolatedPerProfile(t *testing.T) {
	env := cartEnv(t)
	env.do(http.MethodPost, "/cart/items", "customer-token", `{"plantId":"p1"}`)

	rec := env.do(http.MethodGet, "/cart", "nursery-token", "")
	resp := decodeCart(t, rec.Body.Bytes())
	if len(resp.Lines) != 0 {
		t.Fatalf("expected empty cart for other profile, got %+v", resp)
	}
}
