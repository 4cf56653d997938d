// internal/words/words.go
//
// Word-list provider for the puzzle generator and validator.
//
// Responsibilities:
//   - Load the dictionary once per process from a local file, a remote URL,
//     or an embedded fallback list, in that order of preference.
//   - Normalize entries: lowercase, alphabetic only, length ≥ 4, deduped.
//   - Supply the list plus membership and stats helpers.
//
// Initialization behavior (Init):
//   1. If Options.File is set and loads a non-empty list, use it.
//   2. Otherwise fetch Options.URL (bounded by Options.Timeout).
//   3. On any failure, fall back to the embedded default list so the server
//      always starts with a usable (if small) dictionary.
//
// Constraints:
//   • Words are at least 4 lowercase ASCII letters.
//   • Initialization runs once (sync.Once); the list is immutable after.

package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultListURL points at the public dwyl english word list.
const DefaultListURL = "https://raw.githubusercontent.com/dwyl/english-words/master/words_alpha.txt"

const (
	minWordLength  = 4
	defaultTimeout = 5 * time.Second
)

// Embedded tiny default (ensures the server runs even with no network).
//
//go:embed default_words.txt
var embeddedWords string

// Options selects the dictionary source.
type Options struct {
	File    string        // local word file, one word per line (wins if set)
	URL     string        // remote list URL; defaults to DefaultListURL
	Timeout time.Duration // bound on the remote fetch; defaults to 5s
}

var (
	initOnce sync.Once
	list     []string
	wordSet  map[string]struct{}
	source   string // "file" | "remote" | "fallback"
)

// Init loads the word list exactly once. It never fails: when no configured
// source yields words it degrades to the embedded fallback list.
func Init(opts Options) {
	initOnce.Do(func() {
		list, source = load(opts)
		wordSet = toSet(list)
	})
}

// load resolves the sources in preference order. Split from Init so tests
// can exercise it without tripping the sync.Once.
func load(opts Options) ([]string, string) {
	if opts.File != "" {
		ws, err := readWordFile(opts.File)
		if err == nil && len(ws) > 0 {
			return ws, "file"
		}
		log.Warn().Err(err).Str("file", opts.File).Msg("word file unusable, trying remote")
	}

	url := opts.URL
	if url == "" {
		url = DefaultListURL
	}
	ws, err := fetchWordList(url, opts.Timeout)
	if err == nil && len(ws) > 0 {
		return ws, "remote"
	}
	log.Warn().Err(err).Str("url", url).Msg("remote word list unusable, using embedded fallback")

	return normalizeLines(strings.NewReader(embeddedWords)), "fallback"
}

// readWordFile loads one word per line from a file, keeping only normalized
// entries.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return normalizeLines(f), nil
}

// fetchWordList downloads a word list over HTTP with a bounded timeout.
func fetchWordList(url string, timeout time.Duration) ([]string, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch word list: unexpected status %s", resp.Status)
	}
	return normalizeLines(resp.Body), nil
}

// normalizeLines scans newline-separated words, lowercases and trims each,
// and keeps alphabetic entries of at least minWordLength letters, deduped in
// first-seen order.
func normalizeLines(r io.Reader) []string {
	var out []string
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) < minWordLength || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(ws []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ws))
	for _, w := range ws {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// List returns the loaded dictionary. Callers must not mutate it.
func List() []string { return list }

// Contains reports whether w is in the loaded dictionary.
func Contains(w string) bool {
	_, ok := wordSet[strings.ToLower(w)]
	return ok
}

// Stats returns the word count and the source label
// ("file", "remote", or "fallback").
func Stats() (count int, src string) {
	return len(list), source
}
