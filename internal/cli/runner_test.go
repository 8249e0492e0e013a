package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/littlelemon/internal/config"
	"github.com/idilsaglam/littlelemon/internal/ui"
)

const capstone = `{"menu":[
	{"id":1,"title":"Greek Salad","price":"12.99","category":{"title":"starters"}},
	{"id":2,"title":"Bruschetta","price":"7.99","category":{"title":"starters"}},
	{"id":3,"title":"Grilled Fish","price":"20.00","category":{"title":"mains"}}
]}`

// capture redirects plain output for the duration of the test.
func capture(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = new(bytes.Buffer), new(bytes.Buffer)
	prevOut, prevErr := ui.Out, ui.Err
	ui.Out, ui.Err = out, errOut
	ui.SetTheme("mono")
	t.Cleanup(func() {
		ui.Out, ui.Err = prevOut, prevErr
		ui.SetTheme("classic")
	})
	return out, errOut
}

func offline() config.Config {
	cfg := config.Default()
	cfg.Remote.Disabled = true
	cfg.Store.Driver = config.DriverMemory
	return cfg
}

func remote(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestListFallsBackToBuiltInMenu(t *testing.T) {
	out, errOut := capture(t)

	code := Run(context.Background(), []string{"ls"}, Options{Config: offline()})
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %q", code, errOut)
	}
	for _, want := range []string{"[fallback]", "12 of 12 items", "Appetizers (4)", "Hummus", "Ice Tea"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(errOut.String(), "Using local data") {
		t.Errorf("expected a fallback notice on stderr, got %q", errOut)
	}
}

func TestListHideAndQuery(t *testing.T) {
	out, _ := capture(t)

	code := Run(context.Background(),
		[]string{"ls", "--hide", "Salads", "-q", "r"},
		Options{Config: offline()})
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	got := out.String()
	for _, want := range []string{"Fried Calamari Rings", "Beer", "Water"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	for _, absent := range []string{"Caesar Salad", "Hummus", "Coke"} {
		if strings.Contains(got, absent) {
			t.Errorf("output should not contain %q:\n%s", absent, got)
		}
	}
}

func TestListFlat(t *testing.T) {
	out, _ := capture(t)

	if code := Run(context.Background(), []string{"ls", "--flat", "-q", "salad"}, Options{Config: offline()}); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(out.String(), "[Salads]") {
		t.Errorf("flat listing should tag categories:\n%s", out)
	}
	if strings.Contains(out.String(), "Salads (4)") {
		t.Errorf("flat listing should not print section headers:\n%s", out)
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	capture(t)
	if code := Run(context.Background(), []string{"search"}, Options{Config: offline()}); code != 2 {
		t.Errorf("exit = %d, want 2", code)
	}
}

func TestCategories(t *testing.T) {
	out, _ := capture(t)

	if code := Run(context.Background(), []string{"categories"}, Options{Config: offline()}); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	want := "Appetizers (4)\nSalads (4)\nBeverages (4)\n"
	if out.String() != want {
		t.Errorf("categories = %q, want %q", out.String(), want)
	}
}

func TestSyncThenSearchOffline(t *testing.T) {
	out, errOut := capture(t)
	path := filepath.Join(t.TempDir(), "menu.json")

	cfg := config.Default()
	cfg.Remote.URL = remote(t, http.StatusOK, capstone)
	cfg.Store.Driver = config.DriverJSON
	cfg.Store.Path = path

	if code := Run(context.Background(), []string{"sync"}, Options{Config: cfg}); code != 0 {
		t.Fatalf("sync exit = %d, stderr = %q", code, errOut)
	}
	if !strings.Contains(out.String(), "saved 3 items") {
		t.Errorf("sync output = %q", out)
	}

	out.Reset()
	cfg.Remote.Disabled = true
	if code := Run(context.Background(), []string{"search", "--offline", "SALAD"}, Options{Config: cfg}); code != 0 {
		t.Fatalf("search exit = %d, stderr = %q", code, errOut)
	}
	got := out.String()
	if !strings.Contains(got, "Greek Salad") || !strings.Contains(got, "[local]") {
		t.Errorf("search output:\n%s", got)
	}
	if strings.Contains(got, "Grilled Fish") {
		t.Errorf("search should filter by title:\n%s", got)
	}
}

func TestSyncCBORDriverIgnoresExtension(t *testing.T) {
	_, errOut := capture(t)
	path := filepath.Join(t.TempDir(), "menu.snapshot")

	cfg := config.Default()
	cfg.Remote.URL = remote(t, http.StatusOK, capstone)
	cfg.Store.Driver = config.DriverCBOR
	cfg.Store.Path = path

	if code := Run(context.Background(), []string{"sync"}, Options{Config: cfg}); code != 0 {
		t.Fatalf("sync exit = %d, stderr = %q", code, errOut)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// Three items encode as a CBOR array header 0x83.
	if len(b) == 0 || b[0] != 0x83 {
		t.Errorf("cbor driver wrote %q", b[:min(len(b), 8)])
	}
}

func TestSyncRepairsCorruptSnapshot(t *testing.T) {
	out, errOut := capture(t)
	path := filepath.Join(t.TempDir(), "menu.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Remote.URL = remote(t, http.StatusOK, capstone)
	cfg.Store.Driver = config.DriverJSON
	cfg.Store.Path = path

	if code := Run(context.Background(), []string{"sync"}, Options{Config: cfg}); code != 0 {
		t.Fatalf("sync exit = %d, stderr = %q", code, errOut)
	}
	out.Reset()

	cfg.Remote.Disabled = true
	if code := Run(context.Background(), []string{"ls"}, Options{Config: cfg}); code != 0 {
		t.Fatalf("ls exit = %d, stderr = %q", code, errOut)
	}
	if !strings.Contains(out.String(), "[local]") || !strings.Contains(out.String(), "Bruschetta") {
		t.Errorf("ls after repair:\n%s", out)
	}
}

func TestSyncSQLite(t *testing.T) {
	out, errOut := capture(t)

	cfg := config.Default()
	cfg.Remote.URL = remote(t, http.StatusOK, capstone)
	cfg.Store.Path = filepath.Join(t.TempDir(), "menu.db")

	if code := Run(context.Background(), []string{"sync"}, Options{Config: cfg}); code != 0 {
		t.Fatalf("sync exit = %d, stderr = %q", code, errOut)
	}
	out.Reset()

	cfg.Remote.Disabled = true
	if code := Run(context.Background(), []string{"search", "--offline", "fish"}, Options{Config: cfg}); code != 0 {
		t.Fatalf("search exit = %d, stderr = %q", code, errOut)
	}
	if !strings.Contains(out.String(), "Grilled Fish") {
		t.Errorf("search output:\n%s", out)
	}
}

func TestSyncFailsWhenRemoteFails(t *testing.T) {
	_, errOut := capture(t)

	cfg := config.Default()
	cfg.Remote.URL = remote(t, http.StatusInternalServerError, "")
	cfg.Store.Driver = config.DriverMemory

	if code := Run(context.Background(), []string{"sync"}, Options{Config: cfg}); code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "500") || !strings.Contains(errOut.String(), cfg.Remote.URL) {
		t.Errorf("stderr should name the URL and status: %q", errOut)
	}
}

func TestSyncRejectsOffline(t *testing.T) {
	capture(t)
	if code := Run(context.Background(), []string{"sync"}, Options{Config: offline()}); code != 2 {
		t.Errorf("exit = %d, want 2", code)
	}
}

func TestUnknownSubcommand(t *testing.T) {
	out, errOut := capture(t)
	if code := Run(context.Background(), []string{"frobnicate"}, Options{Config: offline()}); code != 2 {
		t.Errorf("exit = %d, want 2", code)
	}
	if !strings.Contains(errOut.String(), "frobnicate") || !strings.Contains(out.String(), "Usage:") {
		t.Errorf("expected error and help, got stderr=%q stdout=%q", errOut, out)
	}
}
