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
	appsvcs "github.com/ghuser/backoffice/services/user/application/services"
	userdomain "github.com/ghuser/backoffice/services/user/domain"
	"github.com/ghuser/backoffice/services/user/domain/models"
)

// fakeUserRepo backs the handlers with an in-memory store enforcing unique emails.
type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeUserRepo) Insert(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return userdomain.NewError(userdomain.ErrEmailTaken, "Email already exists")
		}
	}
	user.ID = f.nextID
	f.nextID++
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return userdomain.ErrUserNotFound
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return userdomain.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func newTestRouter() chi.Router {
	svcs := &appsvcs.Services{
		User:    appsvcs.NewUserService(newFakeUserRepo()),
		AppCode: "INV-BO",
	}
	r := chi.NewRouter()
	r.Route("/users", func(r chi.Router) {
		r.Get("/", NewGetUsersHandler(svcs).Execute)
		r.Post("/", NewPostUserHandler(svcs).Execute)
		r.Put("/{id}", NewPutUserHandler(svcs).Execute)
		r.Delete("/{id}", NewDeleteUserHandler(svcs).Execute)
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

func TestPostUser(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	data := env.ResponseData.(map[string]any)
	if data["email"] != "ada@example.com" {
		t.Errorf("email = %v", data["email"])
	}
	if data["id"] == float64(0) {
		t.Error("expected assigned id")
	}
}

func TestPostUser_invalidEmail(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"firstName":"Ada","email":"not-an-email"}`)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if !strings.Contains(env.ResponseDesc, "email") {
		t.Errorf("expected email error, got %q", env.ResponseDesc)
	}
}

func TestPostUser_duplicateEmail(t *testing.T) {
	router := newTestRouter()

	body := `{"firstName":"Ada","email":"ada@example.com"}`
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("first create: %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.ResponseDesc != "Email already exists" {
		t.Errorf("unexpected responseDesc: %q", env.ResponseDesc)
	}
}

func TestDeleteUser(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"firstName":"Ada","email":"ada@example.com"}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("create: %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/1", http.NoBody))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.ResponseData != "message : User 1 deleted" {
		t.Errorf("unexpected responseData: %v", env.ResponseData)
	}

	// Gone afterwards.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users?id=1", http.NoBody))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestDeleteUser_notFound(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/9", http.NoBody))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.ResponseDesc != "User 9 not found" {
		t.Errorf("unexpected responseDesc: %q", env.ResponseDesc)
	}
}
