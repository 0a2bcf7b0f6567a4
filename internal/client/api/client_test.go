package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lgmarques/taskhub/internal/common"
)

func TestLogin_StoresTokenAndSendsBearer(t *testing.T) {
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/authentication/login":
			var req map[string]string
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req["email"] != "john@example.com" || req["password"] != "password123" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
		case r.Method == http.MethodGet && r.URL.Path == "/api/tasks":
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode([]Task{})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	ctx := context.Background()

	if c.Authenticated() {
		t.Fatal("fresh client must not be authenticated")
	}
	if err := c.Login(ctx, "john@example.com", "password123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !c.Authenticated() {
		t.Fatal("client must be authenticated after login")
	}

	if _, err := c.ListTasks(ctx); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("authorization header: got %q", gotAuth)
	}

	c.Logout()
	if c.Authenticated() {
		t.Fatal("client must not be authenticated after logout")
	}
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	err := c.Login(context.Background(), "john@example.com", "wrong")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if c.Authenticated() {
		t.Fatal("failed login must not store a token")
	}
}

func TestRegister_FieldErrorsSurfaceInMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode([]map[string]string{
			{"field": "email", "message": "must not be blank"},
			{"field": "password", "message": "must not be blank"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	err := c.Register(context.Background(), "John", "", "")
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	want := "email must not be blank; password must not be blank"
	if got := err.Error(); !strings.Contains(got, want) {
		t.Fatalf("error message: got %q, want substring %q", got, want)
	}
}

func TestTaskRoundTrip(t *testing.T) {
	store := map[int64]Task{}
	nextID := int64(1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/tasks":
			var data TaskData
			_ = json.NewDecoder(r.Body).Decode(&data)
			task := Task{ID: nextID, Title: data.Title, Status: data.Status, Priority: data.Priority}
			store[nextID] = task
			nextID++
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(task)
		case r.Method == http.MethodGet && r.URL.Path == "/api/tasks/1":
			_ = json.NewEncoder(w).Encode(store[1])
		case r.Method == http.MethodDelete && r.URL.Path == "/api/tasks/1":
			delete(store, 1)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Task deleted successfully"})
		case r.Method == http.MethodGet && r.URL.Path == "/api/tasks/99":
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	ctx := context.Background()

	created, err := c.CreateTask(ctx, TaskData{Title: "write report"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 1 || created.Title != "write report" {
		t.Fatalf("unexpected created task: %+v", created)
	}

	got, err := c.GetTask(ctx, 1)
	if err != nil || got.Title != "write report" {
		t.Fatalf("get: %+v, %v", got, err)
	}

	if _, err := c.GetTask(ctx, 99); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("missing task: got %v", err)
	}

	if err := c.DeleteTask(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
