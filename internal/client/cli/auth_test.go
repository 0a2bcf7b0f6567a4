package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/lgmarques/taskhub/internal/client/api"
)

// stubInputs feeds canned answers to the prompt seams. Text prompts consume
// from texts in order; the password prompt always returns pw.
func stubInputs(t *testing.T, texts []string, pw []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			t.Fatalf("unexpected text prompt %d", i)
		}
		v := texts[i]
		i++
		return v, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return pw, nil }

	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func muteOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	var lines []string
	printlnFn = func(a ...any) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				lines = append(lines, s)
			}
		}
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

type fakeAPI struct {
	authenticated bool

	regName, regEmail, regPass string
	regErr                     error

	loginEmail, loginPass string
	loginErr              error

	creates []api.TaskData
	listOut []api.Task
	getOut  *api.Task
	getErr  error
	deleted []int64
}

func (f *fakeAPI) Authenticated() bool { return f.authenticated }
func (f *fakeAPI) Logout()             { f.authenticated = false }

func (f *fakeAPI) Register(_ context.Context, name, email, password string) error {
	f.regName, f.regEmail, f.regPass = name, email, password
	return f.regErr
}

func (f *fakeAPI) Login(_ context.Context, email, password string) error {
	f.loginEmail, f.loginPass = email, password
	if f.loginErr == nil {
		f.authenticated = true
	}
	return f.loginErr
}

func (f *fakeAPI) CreateTask(_ context.Context, data api.TaskData) (*api.Task, error) {
	f.creates = append(f.creates, data)
	return &api.Task{ID: int64(len(f.creates)), Title: data.Title}, nil
}

func (f *fakeAPI) ListTasks(_ context.Context) ([]api.Task, error) { return f.listOut, nil }

func (f *fakeAPI) GetTask(_ context.Context, id int64) (*api.Task, error) {
	return f.getOut, f.getErr
}

func (f *fakeAPI) UpdateTask(_ context.Context, id int64, data api.TaskData) (*api.Task, error) {
	return &api.Task{ID: id, Title: data.Title, Status: data.Status}, nil
}

func (f *fakeAPI) DeleteTask(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestRegister_Success(t *testing.T) {
	muteOutput(t)
	f := &fakeAPI{}
	a := &App{api: f}

	stubInputs(t, []string{"John Doe", "john@example.com"}, []byte("password123"))

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regName != "John Doe" || f.regEmail != "john@example.com" || f.regPass != "password123" {
		t.Fatalf("register call mismatch: %q %q %q", f.regName, f.regEmail, f.regPass)
	}
	if a.isLoggedIn() {
		t.Fatal("registration must not log the user in")
	}
}

func TestLogin_SetsUserEmail(t *testing.T) {
	muteOutput(t)
	f := &fakeAPI{}
	a := &App{api: f}

	stubInputs(t, []string{"john@example.com"}, []byte("password123"))

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if !a.isLoggedIn() || a.userEmail != "john@example.com" {
		t.Fatalf("login state: loggedIn=%v email=%q", a.isLoggedIn(), a.userEmail)
	}
	if a.getStatus() != "john@example.com" {
		t.Fatalf("status: %q", a.getStatus())
	}
}

func TestLogin_Failure(t *testing.T) {
	muteOutput(t)
	f := &fakeAPI{loginErr: errors.New("unauthorized")}
	a := &App{api: f}

	stubInputs(t, []string{"john@example.com"}, []byte("wrongpw"))

	if err := a.Login(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if a.isLoggedIn() || a.userEmail != "" {
		t.Fatalf("failed login must not change state: %q", a.userEmail)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	muteOutput(t)
	f := &fakeAPI{authenticated: true}
	a := &App{api: f, userEmail: "john@example.com"}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if a.isLoggedIn() || a.userEmail != "" {
		t.Fatal("logout must clear the session")
	}
	if a.getStatus() != "guest" {
		t.Fatalf("status: %q", a.getStatus())
	}
}
