package store

import (
	"context"
	"errors"
	"testing"

	"github.com/robalobadob/spellbee/internal/game"
	"github.com/robalobadob/spellbee/internal/puzzle"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	p := puzzle.New("plangent", "p", []string{"plant"})
	sess := game.NewSession(p, p.Outer(), 3)

	if err := st.Save(ctx, sess); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := st.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != sess {
		t.Error("Get returned a different session")
	}
}

func TestMemoryStoreMissing(t *testing.T) {
	st := NewMemoryStore()
	if _, err := st.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
