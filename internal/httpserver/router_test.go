package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/JustAsh123/shopalot/internal/domain"
	categoryrepo "github.com/JustAsh123/shopalot/internal/repository/category"
	cartsvc "github.com/JustAsh123/shopalot/internal/service/cart"
	categorysvc "github.com/JustAsh123/shopalot/internal/service/category"
)

const testSecret = "test-secret"

type memCartRepo struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: make(map[string]*domain.Cart)}
}

func (m *memCartRepo) Get(_ context.Context, userID string) (*domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart, ok := m.carts[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *cart
	cp.Lines = append([]domain.CartLine(nil), cart.Lines...)
	return &cp, nil
}

func (m *memCartRepo) Put(_ context.Context, cart domain.Cart) (*domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.carts[cart.UserID]
	if ok && existing.Version != cart.Version {
		return nil, domain.ErrVersionConflict
	}
	cart.Version++
	cp := cart
	m.carts[cart.UserID] = &cp
	return &cart, nil
}

type memCategoryRepo struct {
	records []domain.Category
}

func (m *memCategoryRepo) List(context.Context) ([]domain.Category, error) {
	return m.records, nil
}

func (m *memCategoryRepo) Upsert(_ context.Context, in categoryrepo.UpsertInput) (*domain.Category, error) {
	c := domain.Category{ID: in.Slug, Name: in.Name, Slug: in.Slug, ParentID: in.ParentID}
	m.records = append(m.records, c)
	return &c, nil
}

func testRouter(t *testing.T) (*memCartRepo, *memCategoryRepo, http.Handler) {
	t.Helper()
	cartRepo := newMemCartRepo()
	catRepo := &memCategoryRepo{}
	router := buildRouter(zap.NewNop(), nil, Deps{
		CartLedger:     cartsvc.NewLedger(cartRepo, nil),
		CategorySvc:    categorysvc.New(catRepo),
		JWTSecret:      testSecret,
		AllowedOrigins: []string{"http://localhost:5173"},
	})
	return cartRepo, catRepo, router
}

func mintToken(t *testing.T, userID string, admin bool) string {
	t.Helper()
	claims := sessionClaims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func doRequest(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	_, _, router := testRouter(t)
	rec := doRequest(router, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz: %d", rec.Code)
	}
}

func TestCartRequiresAuth(t *testing.T) {
	_, _, router := testRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/cart", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = doRequest(router, http.MethodGet, "/api/cart", "not-a-jwt", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", rec.Code)
	}
}

func TestCartAddAndGetFlow(t *testing.T) {
	_, _, router := testRouter(t)
	token := mintToken(t, "u1", false)

	rec := doRequest(router, http.MethodPost, "/api/cart/items/p1", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("add: %d %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(router, http.MethodPost, "/api/cart/items/p1", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("second add: %d", rec.Code)
	}

	rec = doRequest(router, http.MethodGet, "/api/cart", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: %d", rec.Code)
	}
	var body cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.CartItems) != 1 || body.CartItems[0].Qty != 2 {
		t.Fatalf("unexpected cart: %+v", body.CartItems)
	}

	rec = doRequest(router, http.MethodDelete, "/api/cart/items/p1", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("remove: %d", rec.Code)
	}
}

func TestCartIsolatedPerUser(t *testing.T) {
	_, _, router := testRouter(t)

	doRequest(router, http.MethodPost, "/api/cart/items/p1", mintToken(t, "u1", false), "")

	rec := doRequest(router, http.MethodGet, "/api/cart", mintToken(t, "u2", false), "")
	var body cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.CartItems) != 0 {
		t.Fatalf("u2 sees u1's cart: %+v", body.CartItems)
	}
}

func TestAdminRoutesRequireAdminClaim(t *testing.T) {
	_, _, router := testRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/admin/categories", mintToken(t, "u1", false), `{"name":"Audio"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rec.Code)
	}

	rec = doRequest(router, http.MethodPost, "/api/admin/categories", mintToken(t, "admin", true), `{"name":"Audio"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for admin, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestCategoryTreeEndpoint(t *testing.T) {
	_, catRepo, router := testRouter(t)
	parent := "a"
	catRepo.records = []domain.Category{
		{ID: "a", Name: "Audio", Slug: "audio"},
		{ID: "b", Name: "Headphones", Slug: "headphones", ParentID: &parent},
	}

	rec := doRequest(router, http.MethodGet, "/api/categories", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("categories: %d", rec.Code)
	}
	var body struct {
		Categories []struct {
			ID            string `json:"id"`
			Subcategories []struct {
				ID string `json:"id"`
			} `json:"subcategories"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Categories) != 1 || len(body.Categories[0].Subcategories) != 1 {
		t.Fatalf("unexpected tree: %s", rec.Body.String())
	}
}
