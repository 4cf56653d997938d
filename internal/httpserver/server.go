// internal/httpserver/server.go
//
// HTTP wiring for the Spelling Bee backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, /game/submit, /game/reshuffle,
//     /game/end, and GET /game/{id}.
//
// Notes:
//   - The server is thin glue: puzzle selection lives in internal/puzzle,
//     submission rules in internal/game. Handlers own the session mutations
//     (save after every state change) but never the game rules.
//   - CORS is origin-aware and credentials-enabled.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellbee/internal/config"
	"github.com/robalobadob/spellbee/internal/game"
	"github.com/robalobadob/spellbee/internal/puzzle"
	"github.com/robalobadob/spellbee/internal/store"
	"github.com/robalobadob/spellbee/internal/words"
)

// revealLimit caps how many of the puzzle's possible words the end-of-game
// response lists.
const revealLimit = 20

// Server bundles router, session store, puzzle generator, and config.
type Server struct {
	r   *chi.Mux
	st  store.Store
	gen *puzzle.Generator
	cfg *config.Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, gen *puzzle.Generator, cfg *config.Config) *Server {
	s := &Server{r: chi.NewRouter(), st: st, gen: gen, cfg: cfg}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORS.Origin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"spellbee-go","endpoints":["/health","POST /game/new","POST /game/submit","POST /game/reshuffle","POST /game/end","GET /game/{id}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Debug: word list count + source
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		count, src := words.Stats()
		_ = json.NewEncoder(w).Encode(map[string]any{"count": count, "source": src})
	})

	// Game endpoints
	s.r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/submit", s.handleSubmit)
		r.Post("/reshuffle", s.handleReshuffle)
		r.Post("/end", s.handleEnd)
		r.Get("/{id}", s.handleState)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameRes is the payload for POST /game/new.
type newGameRes struct {
	GameID       string   `json:"gameId"`
	Center       string   `json:"center"`
	OuterLetters []string `json:"outerLetters"`
	MaxWords     int      `json:"maxWords"`
	WordCount    int      `json:"wordCount"` // number of formable words
	Source       string   `json:"source"`    // dictionary source label
}

// handleNewGame generates a puzzle from the loaded dictionary and opens a
// fresh session for it.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	p := s.gen.Generate(words.List(), s.cfg.Game.MinValidWords)
	sess := game.NewSession(p, s.gen.Reshuffle(p), s.cfg.Game.MaxWords)
	if err := s.st.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	_, src := words.Stats()
	log.Info().
		Str("gameId", sess.ID).
		Str("center", p.Center).
		Int("validWords", len(p.ValidWords)).
		Str("source", src).
		Msg("new game")

	_ = json.NewEncoder(w).Encode(newGameRes{
		GameID:       sess.ID,
		Center:       p.Center,
		OuterLetters: sess.OuterOrder,
		MaxWords:     sess.MaxWords,
		WordCount:    len(p.ValidWords),
		Source:       src,
	})
}

// submitReq/Res payloads for POST /game/submit.
type submitReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}
type submitRes struct {
	Verdict      game.Verdict `json:"verdict"`
	Points       int          `json:"points"`
	Message      string       `json:"message"`
	Score        int          `json:"score"`
	WordsEntered []string     `json:"wordsEntered"`
	State        string       `json:"state"` // "playing" | "over"
}

// handleSubmit runs one submission through the engine and persists the
// session if it changed.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.st.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	res, state, err := sess.Submit(req.Word, s.cfg.Game.MinWordLength)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.st.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(submitRes{
		Verdict:      res.Verdict,
		Points:       res.Points,
		Message:      res.Message(),
		Score:        sess.Score,
		WordsEntered: sess.WordsEntered,
		State:        state,
	})
}

// reshuffleReq/Res payloads for POST /game/reshuffle.
type reshuffleReq struct {
	GameID string `json:"gameId"`
}
type reshuffleRes struct {
	OuterLetters []string `json:"outerLetters"`
}

// handleReshuffle stores and returns a fresh display order for the outer
// letters. The letter set and center never change.
func (s *Server) handleReshuffle(w http.ResponseWriter, r *http.Request) {
	var req reshuffleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.st.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	sess.OuterOrder = s.gen.Reshuffle(sess.Puzzle)
	if err := s.st.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(reshuffleRes{OuterLetters: sess.OuterOrder})
}

// endReq/Res payloads for POST /game/end.
type endReq struct {
	GameID string `json:"gameId"`
}
type endRes struct {
	Score         int      `json:"score"`
	WordsEntered  []string `json:"wordsEntered"`
	PossibleWords []string `json:"possibleWords"` // capped at revealLimit
	State         string   `json:"state"`
}

// handleEnd terminates a session on the player's request and reveals a slice
// of the words the puzzle allowed.
func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	var req endReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.st.Get(r.Context(), req.GameID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	sess.End()
	if err := s.st.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	possible := sess.Puzzle.ValidWords
	if len(possible) > revealLimit {
		possible = possible[:revealLimit]
	}
	_ = json.NewEncoder(w).Encode(endRes{
		Score:         sess.Score,
		WordsEntered:  sess.WordsEntered,
		PossibleWords: possible,
		State:         sess.State(),
	})
}

// stateRes is the payload for GET /game/{id}.
type stateRes struct {
	GameID       string   `json:"gameId"`
	Center       string   `json:"center"`
	OuterLetters []string `json:"outerLetters"`
	WordsEntered []string `json:"wordsEntered"`
	Score        int      `json:"score"`
	MaxWords     int      `json:"maxWords"`
	State        string   `json:"state"`
}

// handleState reports the current session state.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	sess, err := s.st.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"store_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(stateRes{
		GameID:       sess.ID,
		Center:       sess.Puzzle.Center,
		OuterLetters: sess.OuterOrder,
		WordsEntered: sess.WordsEntered,
		Score:        sess.Score,
		MaxWords:     sess.MaxWords,
		State:        sess.State(),
	})
}
