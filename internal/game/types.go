// internal/game/types.go
//
// Core type definitions for the Spelling Bee game engine.
// Defines:
//   - Verdict: classification of a single word submission.
//   - Result: verdict plus the points awarded on acceptance.
//   - Session: state for a single in-progress or finished game.

package game

import "github.com/robalobadob/spellbee/internal/puzzle"

// Verdict classifies one submission. Every rejection reason is a verdict,
// not an error: rejected words are routine input, not failures.
type Verdict string

const (
	VerdictTooShort        Verdict = "too_short"
	VerdictMissingCenter           = "missing_center"
	VerdictInvalidLetters          = "invalid_letters"
	VerdictNotInDictionary         = "not_in_dictionary"
	VerdictDuplicate               = "duplicate"
	VerdictAccepted                = "accepted"
)

// Result is the outcome of validating one submission. Points is zero unless
// the verdict is VerdictAccepted.
type Result struct {
	Verdict Verdict `json:"verdict"`
	Points  int     `json:"points"`
}

// Message returns the user-facing text for the result.
func (r Result) Message() string {
	switch r.Verdict {
	case VerdictTooShort:
		return "Word is too short"
	case VerdictMissingCenter:
		return "Middle letter is not included"
	case VerdictInvalidLetters:
		return "Word contains invalid letters"
	case VerdictNotInDictionary:
		return "Word not found in dictionary"
	case VerdictDuplicate:
		return "You already used that word"
	case VerdictAccepted:
		return "Accepted!"
	}
	return string(r.Verdict)
}

// Session holds the state of a single play-through.
type Session struct {
	ID           string         // Unique session identifier (UUID).
	Puzzle       *puzzle.Puzzle // Immutable letter selection for this session.
	OuterOrder   []string       // Current display order of the 6 outer letters.
	WordsEntered []string       // Accepted words in insertion order (no duplicates).
	Score        int            // Points accumulated so far.
	MaxWords     int            // Accepted-word cap that ends the session (typically 3).
	Over         bool           // True once the cap is reached or the player ends the game.
}
