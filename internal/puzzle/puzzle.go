// internal/puzzle/puzzle.go
//
// Puzzle generation for the Spelling Bee game.
// Responsibilities:
//   - Represent a puzzle: 7 distinct letters, one required center letter,
//     and the dictionary words formable from those letters.
//   - Generate puzzles from a word list: shuffle pangram candidates, and for
//     each candidate try every letter as center until one yields enough
//     valid words (first success wins).
//   - Fall back to a fixed letter set when the dictionary is too sparse, so
//     generation always returns a puzzle.
//   - Reshuffle the display order of the 6 outer letters.
//
// Notes:
//   - Letter membership is tracked with a 26-bit mask (letterSet), which
//     makes the subset and pangram checks single mask operations.
//   - The Generator owns its randomness; seed it for deterministic tests.

package puzzle

import (
	"math/bits"
	"math/rand"
	"time"
)

const (
	// GameSize is the number of distinct letters in a puzzle.
	GameSize = 7

	// DefaultMinValidWords is the threshold a candidate letter set must
	// reach before it is accepted on the primary generation path.
	DefaultMinValidWords = 10

	// fallbackPangram supplies the fixed fallback letter set: the
	// deduplicated letters of "planet" plus 'g'. Its first letter is the
	// fallback center.
	fallbackPangram = "planetg"
)

// letterSet is a bitmask over the lowercase ASCII alphabet: bit 0 is 'a',
// bit 25 is 'z'. Non-letter bytes are ignored when building a set.
type letterSet uint32

func makeLetterSet(word string) letterSet {
	var set letterSet
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c >= 'a' && c <= 'z' {
			set |= 1 << (c - 'a')
		}
	}
	return set
}

// contains reports whether every letter of other is in s.
func (s letterSet) contains(other letterSet) bool { return s&other == other }

// count returns the number of distinct letters in the set.
func (s letterSet) count() int { return bits.OnesCount32(uint32(s)) }

// letters expands the mask into single-letter strings in a–z order.
func (s letterSet) letters() []string {
	out := make([]string, 0, s.count())
	for c := byte('a'); c <= 'z'; c++ {
		if s&(1<<(c-'a')) != 0 {
			out = append(out, string(c))
		}
	}
	return out
}

// Puzzle is an immutable letter selection plus the dictionary words that can
// be formed from it. Letters are sorted a–z; display order is the caller's
// concern (see Generator.Reshuffle).
type Puzzle struct {
	Letters    []string // 7 distinct lowercase letters, sorted a–z
	Center     string   // required letter, always a member of Letters
	ValidWords []string // dictionary words formable from Letters that contain Center

	validSet map[string]struct{}
	all      letterSet
	center   letterSet
}

// New builds a puzzle from a word supplying the letter set, a center letter,
// and a precomputed valid-word list. The letter word must contain the center
// and deduplicate to GameSize letters; it exists so hosts and tests can
// construct fixed puzzles without running generation.
func New(letterWord, center string, validWords []string) *Puzzle {
	return fromSet(makeLetterSet(letterWord), center, validWords)
}

func fromSet(all letterSet, center string, validWords []string) *Puzzle {
	set := make(map[string]struct{}, len(validWords))
	for _, w := range validWords {
		set[w] = struct{}{}
	}
	return &Puzzle{
		Letters:    all.letters(),
		Center:     center,
		ValidWords: validWords,
		validSet:   set,
		all:        all,
		center:     makeLetterSet(center),
	}
}

// Outer returns the 6 non-center letters in a–z order, as a fresh slice.
func (p *Puzzle) Outer() []string {
	out := make([]string, 0, GameSize-1)
	for _, l := range p.Letters {
		if l != p.Center {
			out = append(out, l)
		}
	}
	return out
}

// Contains reports whether word is one of the puzzle's valid words.
func (p *Puzzle) Contains(word string) bool {
	_, ok := p.validSet[word]
	return ok
}

// HasCenter reports whether word uses the center letter.
func (p *Puzzle) HasCenter(word string) bool {
	return makeLetterSet(word)&p.center != 0
}

// UsesOnlyLetters reports whether every letter of word is in the puzzle set.
func (p *Puzzle) UsesOnlyLetters(word string) bool {
	return p.all.contains(makeLetterSet(word))
}

// IsPangram reports whether word uses all 7 puzzle letters.
func (p *Puzzle) IsPangram(word string) bool {
	return makeLetterSet(word) == p.all
}

// Generator produces puzzles from a dictionary. It owns its random source so
// tests can seed it for reproducible selection.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator constructs a Generator seeded from the wall clock.
func NewGenerator() *Generator {
	return NewSeededGenerator(time.Now().UnixNano())
}

// NewSeededGenerator constructs a Generator with a fixed seed.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate selects a puzzle from dict. Words in dict are expected to be
// lowercase, alphabetic, and at least 4 letters (the words package owns that
// normalization).
//
// Primary path: iterate pangram candidates (words with exactly GameSize
// distinct letters) in uniformly random order; for each, try every letter as
// center in a–z order and accept the first (letters, center) pair whose
// valid-word count reaches minValid.
//
// Fallback path: if no pair qualifies (including when dict is empty), use
// the fixed fallback letter set with its first letter as center and whatever
// valid words dict yields, without enforcing the threshold. Generate never
// fails.
func (g *Generator) Generate(dict []string, minValid int) *Puzzle {
	if minValid <= 0 {
		minValid = DefaultMinValidWords
	}

	cands := pangramCandidates(dict)
	g.rng.Shuffle(len(cands), func(i, j int) {
		cands[i], cands[j] = cands[j], cands[i]
	})

	for _, cand := range cands {
		all := makeLetterSet(cand)
		for _, center := range all.letters() {
			valid := collectValid(dict, all, makeLetterSet(center))
			if len(valid) >= minValid {
				return fromSet(all, center, valid)
			}
		}
	}

	// Fallback: fixed letters, threshold not enforced.
	all := padToGameSize(makeLetterSet(fallbackPangram))
	center := string(fallbackPangram[0])
	return fromSet(all, center, collectValid(dict, all, makeLetterSet(center)))
}

// Reshuffle returns a new uniformly random display order for the outer
// letters. It never mutates the puzzle; callers store the order themselves.
func (g *Generator) Reshuffle(p *Puzzle) []string {
	outer := p.Outer()
	g.rng.Shuffle(len(outer), func(i, j int) {
		outer[i], outer[j] = outer[j], outer[i]
	})
	return outer
}

// pangramCandidates filters dict down to words with exactly GameSize
// distinct letters.
func pangramCandidates(dict []string) []string {
	var out []string
	for _, w := range dict {
		if makeLetterSet(w).count() == GameSize {
			out = append(out, w)
		}
	}
	return out
}

// collectValid returns the dict words whose letters are a subset of all and
// which use the center letter, preserving dict order.
func collectValid(dict []string, all, center letterSet) []string {
	var out []string
	for _, w := range dict {
		ws := makeLetterSet(w)
		if all.contains(ws) && ws&center != 0 {
			out = append(out, w)
		}
	}
	return out
}

// padToGameSize tops up a letter set with unused letters (a–z order) until
// it has GameSize members. Guards the fallback path against a fallback
// pangram with fewer than GameSize distinct letters.
func padToGameSize(set letterSet) letterSet {
	for c := byte('a'); c <= 'z' && set.count() < GameSize; c++ {
		set |= 1 << (c - 'a')
	}
	return set
}
