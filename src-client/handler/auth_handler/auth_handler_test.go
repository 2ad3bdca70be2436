package auth_handler_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campusevents/src-client/handler/auth_handler"
	"campusevents/src-client/model"
	"campusevents/src-client/session"
	"campusevents/src-client/utils"

	"github.com/uptrace/bun/driver/sqliteshim"
)

func backend(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Error(err)
		}
		if r.PostForm.Get("username") != "ada@uni.edu" || r.PostForm.Get("password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Incorrect email or password"}`))
			return
		}
		w.Write([]byte(`{"access_token":"tok","token_type":"bearer","role":"faculty","name":"Ada"}`))
	})
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"Check your email to verify your account."}`))
	})
	mux.HandleFunc("POST /auth/forgot-password", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("email") != "ada@uni.edu" {
			t.Errorf("email query = %q", r.URL.Query().Get("email"))
		}
		w.Write([]byte(`{"message":"If the account exists, a reset link was sent."}`))
	})
	return mux
}

func newAppState(t *testing.T) (*utils.AppState, *bytes.Buffer) {
	t.Helper()
	server := httptest.NewServer(backend(t))
	t.Cleanup(server.Close)

	t.Setenv("API_URL", server.URL)
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("DISCORD_APP_TOKEN", "")
	rawDB, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	rawDB.SetMaxOpenConns(1)
	out := &bytes.Buffer{}
	as, err := utils.NewAppStateWith(utils.NewConfig(), rawDB, out)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(as.GracefulShutdown)
	as.ReadPassword = func(prompt string) (string, error) {
		t.Fatalf("unexpected password prompt %q", prompt)
		return "", nil
	}
	auth_handler.Init(as)
	return as, out
}

func run(t *testing.T, as *utils.AppState, args ...string) error {
	t.Helper()
	handler, ok := as.GetCmdHandler("auth")
	if !ok {
		t.Fatal("auth command not registered")
	}
	return handler(context.Background(), args)
}

func TestLoginLogout(t *testing.T) {
	as, out := newAppState(t)
	ctx := context.Background()

	if err := run(t, as, "login", "ada@uni.edu", "--password", "secret"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Logged in as Ada (Faculty).") {
		t.Errorf("output:\n%s", out)
	}
	current, err := as.Sessions.Load(ctx)
	if err != nil || current.Token != "tok" || current.Role != model.RoleFaculty {
		t.Fatalf("session = %+v, err = %v", current, err)
	}

	if err := run(t, as, "logout"); err != nil {
		t.Fatal(err)
	}
	if _, err := as.Sessions.Load(ctx); !errors.Is(err, session.ErrNoSession) {
		t.Errorf("session should be cleared, got %v", err)
	}
}

func TestLoginPromptsForPassword(t *testing.T) {
	as, _ := newAppState(t)
	prompted := false
	as.ReadPassword = func(prompt string) (string, error) {
		prompted = true
		return "secret\n", nil
	}
	if err := run(t, as, "login", "  ada@uni.edu "); err != nil {
		t.Fatal(err)
	}
	if !prompted {
		t.Error("password prompt not used")
	}
}

func TestLoginRejected(t *testing.T) {
	as, _ := newAppState(t)
	if err := run(t, as, "login", "ada@uni.edu", "--password", "wrong"); err == nil {
		t.Fatal("expected login to fail")
	}
	if _, err := as.Sessions.Load(context.Background()); !errors.Is(err, session.ErrNoSession) {
		t.Errorf("nothing should be stored on failure, got %v", err)
	}
}

func TestLoginBlankUsername(t *testing.T) {
	as, _ := newAppState(t)
	if err := run(t, as, "login", "--password", "secret"); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestSignup(t *testing.T) {
	as, out := newAppState(t)
	err := run(t, as, "signup", "--name", "Ada", "--email", "ada@uni.edu", "--password", "secret")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Check your email") {
		t.Errorf("output:\n%s", out)
	}

	err = run(t, as, "signup", "--name", "Ada", "--email", "not-an-email", "--password", "secret")
	if err == nil {
		t.Fatal("expected an invalid email to be rejected")
	}
}

func TestForgotPassword(t *testing.T) {
	as, out := newAppState(t)
	if err := run(t, as, "forgot-password", "ada@uni.edu"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "reset link") {
		t.Errorf("output:\n%s", out)
	}
}

func TestWhoami(t *testing.T) {
	as, out := newAppState(t)
	if err := run(t, as, "whoami"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Not logged in.") {
		t.Errorf("output:\n%s", out)
	}

	out.Reset()
	if err := as.Sessions.Save(context.Background(), session.Session{Token: "tok", Role: model.RoleStudent, Name: "Lan"}); err != nil {
		t.Fatal(err)
	}
	if err := run(t, as, "whoami"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Lan, Student") || !strings.Contains(out.String(), "register for events and edit profile") {
		t.Errorf("output:\n%s", out)
	}
}
