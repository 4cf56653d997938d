package words

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeWordFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeWordFile(t, "Apple\nbe\ncat!\nplanet\nPLANET\ngranola\n1234\n")

	list, src := load(Options{File: path})
	if src != "file" {
		t.Fatalf("source = %q, want file", src)
	}
	want := []string{"apple", "planet", "granola"}
	if strings.Join(list, ",") != strings.Join(want, ",") {
		t.Errorf("list = %v, want %v", list, want)
	}
}

func TestLoadFromRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("planet\nplant\nzz\n"))
	}))
	defer srv.Close()

	list, src := load(Options{URL: srv.URL, Timeout: time.Second})
	if src != "remote" {
		t.Fatalf("source = %q, want remote", src)
	}
	if len(list) != 2 {
		t.Errorf("list = %v, want 2 words", list)
	}
}

func TestMissingFileFallsBackToRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("planet\n"))
	}))
	defer srv.Close()

	_, src := load(Options{File: filepath.Join(t.TempDir(), "missing.txt"), URL: srv.URL, Timeout: time.Second})
	if src != "remote" {
		t.Fatalf("source = %q, want remote", src)
	}
}

func TestLoadFallback(t *testing.T) {
	// A closed server guarantees the fetch fails fast.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	list, src := load(Options{URL: srv.URL, Timeout: time.Second})
	if src != "fallback" {
		t.Fatalf("source = %q, want fallback", src)
	}
	if len(list) < 15 {
		t.Fatalf("fallback list has %d words, want at least 15", len(list))
	}

	sevenDistinct := false
	for _, w := range list {
		if len(w) < 4 || !isAlpha(w) {
			t.Errorf("fallback word %q fails normalization rules", w)
		}
		if distinctLetters(w) == 7 {
			sevenDistinct = true
		}
	}
	if !sevenDistinct {
		t.Error("fallback list has no word with 7 distinct letters")
	}
}

func TestRemoteErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := fetchWordList(srv.URL, time.Second); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestNormalizeLinesDedupes(t *testing.T) {
	list := normalizeLines(strings.NewReader("plant\nPlant\n plant \nplane\n"))
	if len(list) != 2 || list[0] != "plant" || list[1] != "plane" {
		t.Errorf("list = %v, want [plant plane]", list)
	}
}

func TestInitRunsOnce(t *testing.T) {
	first := writeWordFile(t, "apple\nplanet\ngranola\nbanana\n")
	Init(Options{File: first})

	if !Contains("apple") || Contains("zebra") {
		t.Error("membership check wrong after Init")
	}
	count, src := Stats()
	if count != 4 || src != "file" {
		t.Fatalf("Stats = %d, %q", count, src)
	}

	// A second Init must be a no-op.
	Init(Options{File: writeWordFile(t, "other\nwords\nhere\n")})
	if count, _ := Stats(); count != 4 {
		t.Errorf("second Init reloaded the list: count = %d", count)
	}
	if len(List()) != 4 {
		t.Errorf("List = %v", List())
	}
}

func distinctLetters(w string) int {
	seen := make(map[rune]struct{})
	for _, r := range w {
		seen[r] = struct{}{}
	}
	return len(seen)
}
