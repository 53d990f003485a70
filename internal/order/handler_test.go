package order

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func setupApp(svc *Service) *fiber.App {
	a := fiber.New()
	NewHandler(svc).RegisterPublicRoutes(a)
	return a
}

func TestGetOrders_EmptyLog(t *testing.T) {
	a := setupApp(NewService(NewInMemoryRepository()))

	res, err := a.Test(httptest.NewRequest("GET", "/api/orders", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var orders []Order
	if err := json.NewDecoder(res.Body).Decode(&orders); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty JSON array, got %v", orders)
	}
}

func TestGetOrders_ListsPlacedOrders(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	if _, err := svc.Place(context.Background(), []LineItem{{ProductID: 3, Name: "Verde", Price: 44000, Quantity: 1}}); err != nil {
		t.Fatal(err)
	}
	a := setupApp(svc)

	res, err := a.Test(httptest.NewRequest("GET", "/api/orders", nil), -1)
	if err != nil {
		t.Fatal(err)
	}

	var orders []Order
	json.NewDecoder(res.Body).Decode(&orders)
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].ID != 1 || orders[0].Total != 44000 || orders[0].Status != StatusCompleted {
		t.Errorf("unexpected order %+v", orders[0])
	}
}
