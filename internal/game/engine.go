// internal/game/engine.go
//
// Core game engine for a single Spelling Bee session.
// Responsibilities:
//   - Validate submissions against the puzzle letters, the center-letter
//     rule, the dictionary, and the already-entered words.
//   - Score accepted words from the fixed length table.
//   - Track state transitions: playing → over (word cap or explicit end).
//
// Notes:
//   - Validation checks run in a fixed order and stop at the first failure,
//     so the user-facing message for a given word is deterministic: a word
//     that is both too short and uses invalid letters reports "too short".
//   - Validate is pure; only Session.Submit mutates session state.

package game

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/robalobadob/spellbee/internal/puzzle"
)

const (
	// DefaultMinWordLength is the shortest acceptable submission.
	DefaultMinWordLength = 4

	// DefaultMaxWords is the number of accepted words that ends a session.
	DefaultMaxWords = 3
)

// scoreTable maps word length to points. Lengths above 7 score the same as
// 7; the table is deliberately capped even though one UI variant once used
// raw length for long words.
var scoreTable = map[int]int{4: 2, 5: 4, 6: 6, 7: 8}

// ErrSessionOver is returned by Submit once a session is terminal.
var ErrSessionOver = errors.New("session over")

// NewSession constructs a session for a generated puzzle. outerOrder is the
// initial display order of the non-center letters; maxWords falls back to
// DefaultMaxWords when non-positive.
func NewSession(p *puzzle.Puzzle, outerOrder []string, maxWords int) *Session {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	return &Session{
		ID:           uuid.NewString(),
		Puzzle:       p,
		OuterOrder:   outerOrder,
		WordsEntered: []string{},
		MaxWords:     maxWords,
	}
}

// Normalize lowercases and trims a submission and strips everything outside
// a–z. All comparisons run against the normalized form; an empty result is
// later rejected as too short.
func Normalize(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate classifies one submission against a puzzle and the words already
// entered this session. Checks run in order: length, center letter, letter
// membership, dictionary, duplicate. Pure: identical inputs always yield
// identical results.
func Validate(word string, p *puzzle.Puzzle, alreadyEntered []string, minLength int) Result {
	if minLength <= 0 {
		minLength = DefaultMinWordLength
	}
	w := Normalize(word)
	switch {
	case len(w) < minLength:
		return Result{Verdict: VerdictTooShort}
	case !p.HasCenter(w):
		return Result{Verdict: VerdictMissingCenter}
	case !p.UsesOnlyLetters(w):
		return Result{Verdict: VerdictInvalidLetters}
	case !p.Contains(w):
		return Result{Verdict: VerdictNotInDictionary}
	case entered(alreadyEntered, w):
		return Result{Verdict: VerdictDuplicate}
	}
	return Result{Verdict: VerdictAccepted, Points: ScoreFor(len(w))}
}

// ScoreFor returns the points for a word of the given length:
// 4→2, 5→4, 6→6, 7 and above→8, below 4→0. Total and stateless.
func ScoreFor(length int) int {
	if length < DefaultMinWordLength {
		return 0
	}
	if pts, ok := scoreTable[length]; ok {
		return pts
	}
	return scoreTable[7]
}

// Submit validates a word and, on acceptance, applies it to the session:
// appends the word, adds its points, and marks the session over once the
// word cap is reached. Returns the result, the new state string
// ("playing"/"over"), or ErrSessionOver if the session was already terminal.
func (s *Session) Submit(word string, minLength int) (Result, string, error) {
	if s.Over {
		return Result{}, s.State(), ErrSessionOver
	}
	res := Validate(word, s.Puzzle, s.WordsEntered, minLength)
	if res.Verdict == VerdictAccepted {
		s.WordsEntered = append(s.WordsEntered, Normalize(word))
		s.Score += res.Points
		if len(s.WordsEntered) >= s.MaxWords {
			s.Over = true
		}
	}
	return res, s.State(), nil
}

// End terminates the session explicitly (the player gave up or exited).
func (s *Session) End() {
	s.Over = true
}

// State reports a coarse string representation of the session state.
func (s *Session) State() string {
	if s.Over {
		return "over"
	}
	return "playing"
}

// entered reports whether w is already in the accepted list.
func entered(words []string, w string) bool {
	for _, e := range words {
		if e == w {
			return true
		}
	}
	return false
}
