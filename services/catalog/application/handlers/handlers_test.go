package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/httpx"
	appsvcs "github.com/ghuser/backoffice/services/catalog/application/services"
	catalogdomain "github.com/ghuser/backoffice/services/catalog/domain"
	"github.com/ghuser/backoffice/services/catalog/domain/models"
)

// fakeItemRepo backs the handlers with an in-memory store. referenced marks
// item IDs used on document lines, driving the deactivation guard.
type fakeItemRepo struct {
	items      map[int64]*models.Item
	referenced map[int64]bool
	nextID     int64
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{
		items:      make(map[int64]*models.Item),
		referenced: make(map[int64]bool),
		nextID:     1,
	}
}

func (f *fakeItemRepo) Insert(_ context.Context, item *models.Item) error {
	item.ID = f.nextID
	f.nextID++
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, id int64) (*models.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, catalogdomain.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakeItemRepo) GetByIDAndStatus(_ context.Context, id int64, status models.Status) (*models.Item, error) {
	item, ok := f.items[id]
	if !ok || item.Status != status {
		return nil, catalogdomain.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakeItemRepo) ExistsByNameCI(_ context.Context, name string) (bool, error) {
	for _, item := range f.items {
		if strings.EqualFold(item.Name.String(), name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeItemRepo) FindAll(_ context.Context) ([]*models.Item, error) {
	out := make([]*models.Item, 0, len(f.items))
	for _, item := range f.items {
		cp := *item
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeItemRepo) Update(_ context.Context, item *models.Item) error {
	if _, ok := f.items[item.ID]; !ok {
		return catalogdomain.ErrItemNotFound
	}
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeItemRepo) UpdateStatus(_ context.Context, item *models.Item) error {
	return f.Update(context.Background(), item)
}

func (f *fakeItemRepo) ReferencedByLine(_ context.Context, itemID int64) (bool, error) {
	return f.referenced[itemID], nil
}

func newTestRouter(repo *fakeItemRepo) chi.Router {
	svcs := &appsvcs.Services{
		Item:    appsvcs.NewItemService(repo, nil, nil),
		AppCode: "INV-BO",
	}
	r := chi.NewRouter()
	r.Route("/items", func(r chi.Router) {
		r.Get("/", NewGetItemsHandler(svcs).Execute)
		r.Post("/", NewPostItemHandler(svcs).Execute)
		r.Put("/{id}", NewPutItemHandler(svcs).Execute)
		r.Patch("/{id}/status", NewPatchItemStatusHandler(svcs).Execute)
	})
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) httpx.Envelope {
	t.Helper()
	var env httpx.Envelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v (body: %s)", err, w.Body.String())
	}
	return env
}

func createItem(t *testing.T, router chi.Router, body string) map[string]any {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("create item: %d %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	data, ok := env.ResponseData.(map[string]any)
	if !ok {
		t.Fatalf("unexpected responseData type: %T", env.ResponseData)
	}
	return data
}

func TestPostItem(t *testing.T) {
	router := newTestRouter(newFakeItemRepo())

	data := createItem(t, router, `{"name":"Blue Widget","description":"10mm","price":120,"cost":100}`)
	if data["status"] != "ACTIVE" {
		t.Errorf("status = %v, want ACTIVE", data["status"])
	}
	if data["id"] == float64(0) {
		t.Error("expected assigned id")
	}
}

func TestPostItem_zeroPriceAllowed(t *testing.T) {
	router := newTestRouter(newFakeItemRepo())

	data := createItem(t, router, `{"name":"Freebie","price":0,"cost":0}`)
	if data["price"] != float64(0) {
		t.Errorf("price = %v, want 0", data["price"])
	}
}

func TestPostItem_missingPrice(t *testing.T) {
	router := newTestRouter(newFakeItemRepo())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/items",
		strings.NewReader(`{"name":"Blue Widget","cost":100}`)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if !strings.Contains(env.ResponseDesc, "price") {
		t.Errorf("expected price error, got %q", env.ResponseDesc)
	}
}

func TestPostItem_duplicateName(t *testing.T) {
	router := newTestRouter(newFakeItemRepo())
	createItem(t, router, `{"name":"Blue Widget","price":120,"cost":100}`)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/items",
		strings.NewReader(`{"name":"blue widget","price":1,"cost":1}`)))

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.ResponseCode != httpx.CodeConflict {
		t.Errorf("responseCode = %q, want 03", env.ResponseCode)
	}
	if env.ResponseDesc != "Item name already exists" {
		t.Errorf("unexpected responseDesc: %q", env.ResponseDesc)
	}
}

func TestGetItems_byIDOnlyServesActive(t *testing.T) {
	repo := newFakeItemRepo()
	router := newTestRouter(repo)
	createItem(t, router, `{"name":"Blue Widget","price":120,"cost":100}`)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items?id=1", http.NoBody))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 while active, got %d", w.Code)
	}

	// Deactivate and look up again.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/items/1/status",
		strings.NewReader(`{"status":"INACTIVE"}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("deactivate: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items?id=1", http.NoBody))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for inactive item, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.ResponseDesc != "Item 1 not found" {
		t.Errorf("unexpected responseDesc: %q", env.ResponseDesc)
	}
}

func TestGetItems_listIncludesInactive(t *testing.T) {
	router := newTestRouter(newFakeItemRepo())
	createItem(t, router, `{"name":"Blue Widget","price":120,"cost":100}`)
	createItem(t, router, `{"name":"Red Widget","price":90,"cost":70}`)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/items/1/status",
		strings.NewReader(`{"status":"INACTIVE"}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("deactivate: %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items", http.NoBody))
	env := decodeEnvelope(t, w)
	items, ok := env.ResponseData.([]any)
	if !ok {
		t.Fatalf("unexpected responseData type: %T", env.ResponseData)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 items regardless of status, got %d", len(items))
	}
}

func TestPutItem(t *testing.T) {
	router := newTestRouter(newFakeItemRepo())
	createItem(t, router, `{"name":"Blue Widget","price":120,"cost":100}`)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/items/1",
		strings.NewReader(`{"name":"Green Widget","description":"repainted","price":200,"cost":150}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	data := env.ResponseData.(map[string]any)
	if data["name"] != "Green Widget" || data["price"] != float64(200) {
		t.Errorf("fields not updated: %v", data)
	}
}

func TestPatchItemStatus_blockedWhileReferenced(t *testing.T) {
	repo := newFakeItemRepo()
	router := newTestRouter(repo)
	createItem(t, router, `{"name":"Blue Widget","price":120,"cost":100}`)
	repo.referenced[1] = true

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/items/1/status",
		strings.NewReader(`{"status":"INACTIVE"}`)))

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.ResponseDesc != "Item used in documents" {
		t.Errorf("unexpected responseDesc: %q", env.ResponseDesc)
	}
}

func TestPatchItemStatus_badTarget(t *testing.T) {
	router := newTestRouter(newFakeItemRepo())
	createItem(t, router, `{"name":"Blue Widget","price":120,"cost":100}`)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/items/1/status",
		strings.NewReader(`{"status":"ARCHIVED"}`)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.ResponseDesc != "status must be ACTIVE or INACTIVE" {
		t.Errorf("unexpected responseDesc: %q", env.ResponseDesc)
	}
}

func TestPatchItemStatus_lowercaseAccepted(t *testing.T) {
	router := newTestRouter(newFakeItemRepo())
	createItem(t, router, `{"name":"Blue Widget","price":120,"cost":100}`)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/items/1/status",
		strings.NewReader(`{"status":"inactive"}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	data := env.ResponseData.(map[string]any)
	if data["status"] != "INACTIVE" {
		t.Errorf("status = %v, want INACTIVE", data["status"])
	}
}
