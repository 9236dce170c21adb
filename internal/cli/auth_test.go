package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/tuneboxed/sessionstore/internal/logging"
	"github.com/tuneboxed/sessionstore/internal/session"
	"github.com/tuneboxed/sessionstore/internal/storage"

	_ "modernc.org/sqlite"
)

// newTestApp builds an App over an in-memory database. input is what the
// REPL reader will serve.
func newTestApp(t *testing.T, input string) *App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := storage.RunMigrations(context.Background(), db); err != nil {
		t.Fatal(err)
	}

	store := session.NewStore(storage.NewStateStore(db, logging.NewNopLogger()), logging.NewNopLogger())
	if err := store.Load(context.Background(), false); err != nil {
		t.Fatal(err)
	}

	return &App{
		store:  store,
		log:    logging.NewNopLogger(),
		reader: bufio.NewReader(strings.NewReader(input)),
	}
}

// stubInputs replaces the text-prompt seam with canned answers, consumed in
// order.
func stubInputs(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected prompt %q", prompt)
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

// stubPassword makes every password prompt return pw.
func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(string, io.Writer) ([]byte, error) {
		return []byte(pw), nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func TestAppRegister_CreatesAndSignsIn(t *testing.T) {
	a := newTestApp(t, "")
	stubInputs(t, "carol", "carol@example.com")
	stubPassword(t, "secret1")

	if err := a.Register(context.Background()); err != nil {
		t.Fatal(err)
	}

	cur := a.store.Current()
	if cur == nil || cur.Username != "carol" {
		t.Fatalf("current = %+v, want carol signed in", cur)
	}
}

func TestAppRegister_DuplicateReportedNotReturned(t *testing.T) {
	a := newTestApp(t, "")
	ctx := context.Background()
	if _, err := a.store.Register(ctx, "carol", "carol@example.com", "secret1", "secret1"); err != nil {
		t.Fatal(err)
	}

	stubInputs(t, "carol", "other@example.com")
	stubPassword(t, "secret1")

	// Domain errors surface as a printed message, not a REPL error.
	if err := a.Register(ctx); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if n := len(a.store.Accounts()); n != 1 {
		t.Fatalf("accounts = %d, want 1", n)
	}
}

func TestAppLogin(t *testing.T) {
	a := newTestApp(t, "")
	ctx := context.Background()
	if _, err := a.store.Register(ctx, "carol", "carol@example.com", "secret1", "secret1"); err != nil {
		t.Fatal(err)
	}
	if err := a.store.Logout(ctx); err != nil {
		t.Fatal(err)
	}

	stubInputs(t, "carol")
	stubPassword(t, "wrong1")
	if err := a.Login(ctx); err != nil {
		t.Fatal(err)
	}
	if a.store.SignedIn() {
		t.Fatal("wrong password must not sign in")
	}

	stubInputs(t, "carol")
	stubPassword(t, "secret1")
	if err := a.Login(ctx); err != nil {
		t.Fatal(err)
	}
	if !a.store.SignedIn() {
		t.Fatal("expected signed-in session")
	}
}

func TestAppLogout(t *testing.T) {
	a := newTestApp(t, "")
	ctx := context.Background()
	if _, err := a.store.Register(ctx, "carol", "carol@example.com", "secret1", "secret1"); err != nil {
		t.Fatal(err)
	}

	if err := a.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	if a.store.SignedIn() {
		t.Fatal("expected signed-out session")
	}
}

func TestAppUpdateProfile(t *testing.T) {
	a := newTestApp(t, "")
	ctx := context.Background()
	if _, err := a.store.Register(ctx, "carol", "carol@example.com", "secret1", "secret1"); err != nil {
		t.Fatal(err)
	}

	stubInputs(t, "Carol", "", "tunes all day")
	if err := a.UpdateProfile(ctx); err != nil {
		t.Fatal(err)
	}

	cur := a.store.Current()
	if cur.FirstName != "Carol" || cur.LastName != "" || cur.Bio != "tunes all day" {
		t.Fatalf("profile = %q %q %q", cur.FirstName, cur.LastName, cur.Bio)
	}
}

func TestAppUpdateProfile_NotSignedIn(t *testing.T) {
	a := newTestApp(t, "")
	stubInputs(t, "Carol", "", "")

	// Reported to the user, not bubbled up to the REPL.
	if err := a.UpdateProfile(context.Background()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
