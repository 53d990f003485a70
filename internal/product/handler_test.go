package product

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func setupApp() *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(NewInMemoryRepository(Seed())))
	h.RegisterPublicRoutes(app)
	return app
}

func TestGetProducts_ReturnsSeededCatalog(t *testing.T) {
	app := setupApp()

	res, err := app.Test(httptest.NewRequest("GET", "/api/products", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var body struct {
		Data []Product `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 6 {
		t.Fatalf("expected 6 products, got %d", len(body.Data))
	}
	for _, p := range body.Data {
		if p.Stock < 0 {
			t.Errorf("product %d has negative stock %d", p.ID, p.Stock)
		}
	}
}

func TestGetProduct_Found(t *testing.T) {
	app := setupApp()

	res, err := app.Test(httptest.NewRequest("GET", "/api/products/2", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var p Product
	json.NewDecoder(res.Body).Decode(&p)
	if p != Seed()[1] {
		t.Errorf("expected %+v, got %+v", Seed()[1], p)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	app := setupApp()

	for _, path := range []string{"/api/products/999", "/api/products/abc", "/api/products/-1", "/api/products/+"} {
		res, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != fiber.StatusNotFound {
			t.Fatalf("%s: expected 404 got %d", path, res.StatusCode)
		}
		var body map[string]string
		json.NewDecoder(res.Body).Decode(&body)
		if body["error"] != "Producto no encontrado" {
			t.Errorf("%s: unexpected error payload %v", path, body)
		}
	}
}

// Ids are read up to the first non-digit, so trailing junk still finds the product.
func TestGetProduct_LeadingDigits(t *testing.T) {
	app := setupApp()

	for path, want := range map[string]int{
		"/api/products/1abc": 1,
		"/api/products/2.5":  2,
		"/api/products/+3":   3,
		"/api/products/04":   4,
	} {
		res, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, res.StatusCode)
		}
		var p Product
		json.NewDecoder(res.Body).Decode(&p)
		if p.ID != want {
			t.Errorf("%s: expected product %d, got %d", path, want, p.ID)
		}
	}
}

// The catalog exposes no write endpoints.
func TestProductHandler_RegistersReadOnlyRoutes(t *testing.T) {
	app := setupApp()

	for _, grp := range app.Stack() {
		for _, r := range grp {
			if r.Method != fiber.MethodGet && r.Method != fiber.MethodHead {
				t.Fatalf("unexpected %s route %s", r.Method, r.Path)
			}
		}
	}
}
