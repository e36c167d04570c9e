package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/luxystore/luxy-api/app/models"
)

type fakeSessionStore struct {
	userID  string
	cleared bool
}

func (f *fakeSessionStore) GetUserID(r *http.Request) string {
	return f.userID
}

func (f *fakeSessionStore) SetUserID(w http.ResponseWriter, r *http.Request, userID string) error {
	f.userID = userID
	return nil
}

func (f *fakeSessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	f.cleared = true
	f.userID = ""
	return nil
}

type fakeAdminRepo struct {
	admins map[string]*models.AdminUser
	err    error
}

func (f *fakeAdminRepo) FindByUserID(ctx context.Context, userID string) (*models.AdminUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	admin, ok := f.admins[userID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return admin, nil
}

func (f *fakeAdminRepo) GetAll(ctx context.Context) ([]models.AdminUser, error) { return nil, nil }
func (f *fakeAdminRepo) Create(ctx context.Context, admin *models.AdminUser) error {
	return nil
}
func (f *fakeAdminRepo) Delete(ctx context.Context, id string) error { return nil }

func gatedRequest(t *testing.T, store *fakeSessionStore, repo *fakeAdminRepo) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		if AdminFromContext(r.Context()) == nil {
			t.Error("handler ran without an admin in context")
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := AdminAuthMiddleware(store, repo)(next)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/dashboard", nil))
	return rec, reached
}

func TestAdminGateNoSession(t *testing.T) {
	store := &fakeSessionStore{}
	repo := &fakeAdminRepo{admins: map[string]*models.AdminUser{}}

	rec, reached := gatedRequest(t, store, repo)

	if reached {
		t.Fatal("handler ran for a request with no session")
	}
	if rec.Code != http.StatusFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/admin/login?status=error") {
		t.Errorf("redirect location = %q, want admin login with error status", loc)
	}
	if store.cleared {
		t.Error("session cleared for a guest with no session to clear")
	}
}

func TestAdminGateNonAdminUser(t *testing.T) {
	store := &fakeSessionStore{userID: "u1"}
	repo := &fakeAdminRepo{admins: map[string]*models.AdminUser{}}

	rec, reached := gatedRequest(t, store, repo)

	if reached {
		t.Fatal("handler ran for a non-admin user")
	}
	if rec.Code != http.StatusFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if !store.cleared {
		t.Error("session was not cleared before redirecting a non-admin")
	}
}

func TestAdminGateLookupErrorFailsClosed(t *testing.T) {
	store := &fakeSessionStore{userID: "u1"}
	repo := &fakeAdminRepo{err: models.ErrDataUnavailable}

	rec, reached := gatedRequest(t, store, repo)

	if reached {
		t.Fatal("handler ran while the admin lookup was failing")
	}
	if rec.Code != http.StatusFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if !store.cleared {
		t.Error("session was not cleared on lookup failure")
	}
}

func TestAdminGateAdminPassesThrough(t *testing.T) {
	store := &fakeSessionStore{userID: "u1"}
	repo := &fakeAdminRepo{admins: map[string]*models.AdminUser{
		"u1": {ID: "a1", UserID: "u1", Email: "admin@luxystore.in"},
	}}

	rec, reached := gatedRequest(t, store, repo)

	if !reached {
		t.Fatal("handler did not run for an admin user")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if store.cleared {
		t.Error("admin session was cleared")
	}
}
