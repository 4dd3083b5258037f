package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinemaspot-frontend/internal/data/apiclient"
	"cinemaspot-frontend/internal/data/entity"
	"cinemaspot-frontend/internal/store"
	"cinemaspot-frontend/pkg/utils"

	"go.uber.org/zap"
)

type recordedCall struct {
	method string
	path   string
	auth   string
}

func newAdminEnv(t *testing.T) (AdminService, *[]recordedCall) {
	t.Helper()

	var calls []recordedCall
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, recordedCall{
			method: r.Method,
			path:   r.URL.Path,
			auth:   r.Header.Get("Authorization"),
		})
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Write([]byte(`{"id":"x1"}`))
	}))
	t.Cleanup(srv.Close)

	client := apiclient.NewClient(utils.APIConfig{BaseURL: srv.URL, TimeoutSeconds: 5}, zap.NewNop())
	api := apiclient.NewAPI(client, zap.NewNop())

	return NewAdminService(api, zap.NewNop()), &calls
}

func adminSession() *store.Session {
	return &store.Session{
		ID: "sess-admin",
		Auth: store.AuthState{
			Logged: true,
			Token:  "tok-admin",
			User:   &entity.User{ID: "u-admin", Role: entity.RoleAdmin},
		},
	}
}

func customerSession() *store.Session {
	return &store.Session{
		ID: "sess-user",
		Auth: store.AuthState{
			Logged: true,
			Token:  "tok-user",
			User:   &entity.User{ID: "u1", Role: entity.RoleCustomer},
		},
	}
}

func TestAdminGuards(t *testing.T) {
	svc, calls := newAdminEnv(t)
	ctx := context.Background()

	if _, err := svc.List(ctx, &store.Session{ID: "anon"}, "movies"); !errors.Is(err, ErrLoginRequired) {
		t.Errorf("anonymous list: got %v, want ErrLoginRequired", err)
	}

	if _, err := svc.List(ctx, customerSession(), "movies"); !errors.Is(err, ErrAdminRequired) {
		t.Errorf("customer list: got %v, want ErrAdminRequired", err)
	}

	if _, err := svc.List(ctx, adminSession(), "invoices"); !errors.Is(err, ErrUnknownResource) {
		t.Errorf("unregistered resource: got %v, want ErrUnknownResource", err)
	}

	if len(*calls) != 0 {
		t.Errorf("guard rejections must not reach the upstream, saw %d calls", len(*calls))
	}
}

func TestAdminRegistryCoversAllResources(t *testing.T) {
	svc, calls := newAdminEnv(t)
	ctx := context.Background()
	sess := adminSession()

	resources := []string{
		"movies", "rooms", "showtimes", "categories",
		"reservations", "users", "roles", "actors", "movie-cast",
	}

	for _, resource := range resources {
		if _, err := svc.List(ctx, sess, resource); err != nil {
			t.Errorf("list %s: %v", resource, err)
		}
	}

	if len(*calls) != len(resources) {
		t.Fatalf("expected %d upstream calls, got %d", len(resources), len(*calls))
	}
	for i, call := range *calls {
		if want := "/" + resources[i] + "/"; call.path != want {
			t.Errorf("call %d path = %q, want %q", i, call.path, want)
		}
		if call.auth != "Bearer tok-admin" {
			t.Errorf("call %d missing admin token, auth = %q", i, call.auth)
		}
	}
}

func TestAdminCreateValidatesKnownShapes(t *testing.T) {
	svc, calls := newAdminEnv(t)
	ctx := context.Background()
	sess := adminSession()

	// movies payload missing every required field
	_, err := svc.Create(ctx, sess, "movies", json.RawMessage(`{"title":""}`))
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("invalid movie payload: got %v, want validation failure", err)
	}
	if len(*calls) != 0 {
		t.Fatal("invalid payload must not reach the upstream")
	}

	valid := json.RawMessage(`{
		"title": "Arrival", "description": "First contact.",
		"category": "c1", "duration": "116", "rating": "PG-13",
		"director": "Denis Villeneuve"
	}`)
	if _, err := svc.Create(ctx, sess, "movies", valid); err != nil {
		t.Fatalf("valid movie payload: %v", err)
	}
	if len(*calls) != 1 || (*calls)[0].method != http.MethodPost {
		t.Errorf("expected one POST, got %+v", *calls)
	}
}

func TestAdminUnknownShapePassesThrough(t *testing.T) {
	svc, calls := newAdminEnv(t)

	// categories has no local validator; upstream owns the shape
	_, err := svc.Create(context.Background(), adminSession(), "categories", json.RawMessage(`{"whatever":1}`))
	if err != nil {
		t.Fatalf("passthrough create: %v", err)
	}
	if len(*calls) != 1 {
		t.Fatalf("expected one upstream call, got %d", len(*calls))
	}
}

func TestAdminUpdateAndDelete(t *testing.T) {
	svc, calls := newAdminEnv(t)
	ctx := context.Background()
	sess := adminSession()

	if _, err := svc.Update(ctx, sess, "rooms", "r1", json.RawMessage(`{"name":"Sala 1"}`)); err != nil {
		t.Fatalf("update room: %v", err)
	}
	if err := svc.Delete(ctx, sess, "rooms", "r1"); err != nil {
		t.Fatalf("delete room: %v", err)
	}

	if len(*calls) != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", len(*calls))
	}
	if (*calls)[0].method != http.MethodPut || (*calls)[0].path != "/rooms/r1" {
		t.Errorf("unexpected update call: %+v", (*calls)[0])
	}
	if (*calls)[1].method != http.MethodDelete || (*calls)[1].path != "/rooms/r1" {
		t.Errorf("unexpected delete call: %+v", (*calls)[1])
	}
}
