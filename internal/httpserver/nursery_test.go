package httpserver

import (
	"net/http"
	"strings"
	"testing"

	"plantstore/internal/domain"
	ordersvc "plantstore/internal/service/order"
)

func TestUpdateOrderStatus(t *testing.T) {
	n := "n1"
	env := newTestEnv(t, func(d *Deps) {
		d.OrderSvc = &stubOrderSvc{order: &domain.Order{ID: "o1", NurseryID: &n, Status: domain.StatusShipped}}
	})

	rec := env.do(http.MethodPut, "/nursery/orders/o1/status", "nursery-token", `{"status":"shipped"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"shipped"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUpdateOrderStatusInvalidTransition(t *testing.T) {
	env := newTestEnv(t, func(d *Deps) {
		d.OrderSvc = &stubOrderSvc{err: ordersvc.ErrInvalidTransition}
	})

	rec := env.do(http.MethodPut, "/nursery/orders/o1/status", "nursery-token", `{"status":"confirmed"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCancelOrder(t *testing.T) {
	env := newTestEnv(t, func(d *Deps) {
		d.OrderSvc = &stubOrderSvc{order: &domain.Order{ID: "o1", Status: domain.StatusCancelled}}
	})

	rec := env.do(http.MethodPost, "/orders/o1/cancel", "customer-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"cancelled"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCancelOrderAfterShipping(t *testing.T) {
	env := newTestEnv(t, func(d *Deps) {
		d.OrderSvc = &stubOrderSvc{err: ordersvc.ErrInvalidTransition}
	})

	rec := env.do(http.MethodPost, "/orders/o1/cancel", "customer-token", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestCreatePlant(t *testing.T) {
	env := newTestEnv(t, func(d *Deps) {
		d.InventorySvc = &stubInventorySvc{created: &domain.Plant{ID: "p1", Name: "Fern", PriceCents: 150_00}}
	})

	rec := env.do(http.MethodPost, "/nursery/plants", "nursery-token", `{"name":"Fern","priceCents":15000,"stock":3}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCreatePlantValidation(t *testing.T) {
	env := newTestEnv(t, func(d *Deps) {
		d.InventorySvc = &stubInventorySvc{err: domain.ErrInvalidInput}
	})

	rec := env.do(http.MethodPost, "/nursery/plants", "nursery-token", `{"priceCents":-1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestDeletePlant(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(http.MethodDelete, "/nursery/plants/p1", "nursery-token", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestListPlantsPublic(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(http.MethodGet, "/plants?search=fern&price_range=low&page=2", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestGetPlantNotFound(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(http.MethodGet, "/plants/nope", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
