package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/brandsmith/moodgrid/pkg/board"
	"github.com/brandsmith/moodgrid/pkg/cache"
	"github.com/brandsmith/moodgrid/pkg/errors"
	"github.com/brandsmith/moodgrid/pkg/render"
	"github.com/brandsmith/moodgrid/pkg/session"
)

// defaultViewportWidth is assumed when the client omits ?width.
const defaultViewportWidth = 1280

// =============================================================================
// Handlers
// =============================================================================

type presetInfo struct {
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	names := s.catalog.Names()
	out := make([]presetInfo, 0, len(names))
	for _, n := range names {
		out = append(out, presetInfo{Name: n, Default: n == s.catalog.DefaultName()})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"presets": out})
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadOrCreateSession(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	ed := s.editorFor(sess, r)
	geom := ed.Geometry()
	slots := ed.Compose()

	data, err := render.BoardJSON(ed.Preset(), ed.Tier(), geom, slots)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render board"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleBoardSVG(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadOrCreateSession(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	ed := s.editorFor(sess, r)
	key := cache.BoardKey(ed.Preset(), ed.Tier().String(), ed.Swaps(), "svg")

	if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		s.writeSVG(w, data)
		return
	}

	data := render.BoardSVG(ed.Geometry(), ed.Compose())
	if err := s.cache.Set(r.Context(), key, data, artifactTTL); err != nil {
		s.logger.Warn("cache artifact", "err", err)
	}
	s.writeSVG(w, data)
}

type swapRequest struct {
	A     string   `json:"a"`
	B     string   `json:"b"`
	Width *float64 `json:"width,omitempty"`
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	var req swapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid swap request body"))
		return
	}

	sess, err := s.loadOrCreateSession(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	width := defaultViewportWidth
	if req.Width != nil {
		width = int(*req.Width)
	}
	ed := board.NewEditor(s.catalog, s.registry,
		board.WithPreset(sess.ActivePreset),
		board.WithViewportWidth(float64(width)))
	ed.RestoreSwaps(sess.Swaps)

	// Ids outside the active geometry make this a no-op, not an error.
	swapped := ed.Swap(req.A, req.B)
	if swapped {
		sess.RecordSwaps(ed.Swaps())
		if err := s.sessions.Set(r.Context(), sess); err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "persist session"))
			return
		}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"swapped": swapped,
		"swaps":   ed.Swaps(),
	})
}

type presetRequest struct {
	Name string `json:"name"`
}

func (s *Server) handlePreset(w http.ResponseWriter, r *http.Request) {
	var req presetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid preset request body"))
		return
	}
	if _, ok := s.catalog.Preset(req.Name); !ok {
		s.writeError(w, errors.New(errors.ErrCodePresetNotFound, "unknown preset %q", req.Name))
		return
	}

	sess, err := s.loadOrCreateSession(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	sess.SetActivePreset(req.Name)
	if err := s.sessions.Set(r.Context(), sess); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "persist session"))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"preset": sess.ActivePreset,
		"swaps":  sess.Swaps,
	})
}

// =============================================================================
// Session plumbing
// =============================================================================

// loadOrCreateSession resolves the session named by the request header,
// minting a fresh one when the header is absent or the session has
// expired. The session id is always echoed on the response.
func (s *Server) loadOrCreateSession(w http.ResponseWriter, r *http.Request) (*session.Session, error) {
	id := r.Header.Get(SessionHeader)
	if id != "" {
		sess, err := s.sessions.Get(r.Context(), id)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "load session")
		}
		if sess != nil {
			w.Header().Set(SessionHeader, sess.ID)
			return sess, nil
		}
	}

	sess := session.New(s.catalog.DefaultName(), session.DefaultTTL)
	if err := s.sessions.Set(r.Context(), sess); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create session")
	}
	w.Header().Set(SessionHeader, sess.ID)
	return sess, nil
}

// editorFor builds an editor for a read-only view of the session's
// board. A ?preset override changes the view without touching the
// session; swaps only apply when they belong to the viewed preset.
func (s *Server) editorFor(sess *session.Session, r *http.Request) *board.Editor {
	presetName := sess.ActivePreset
	if q := r.URL.Query().Get("preset"); q != "" {
		presetName = q
	}

	width := float64(defaultViewportWidth)
	if q := r.URL.Query().Get("width"); q != "" {
		if v, err := strconv.ParseFloat(q, 64); err == nil && v > 0 {
			width = v
		}
	}

	ed := board.NewEditor(s.catalog, s.registry,
		board.WithPreset(presetName),
		board.WithViewportWidth(width))
	if ed.Preset() == sess.ActivePreset {
		ed.RestoreSwaps(sess.Swaps)
	}
	return ed
}

// =============================================================================
// Response helpers
// =============================================================================

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeSVG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodePresetNotFound, errors.ErrCodeTileNotFound,
		errors.ErrCodeSessionNotFound, errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidPreset,
		errors.ErrCodeInvalidPlacement, errors.ErrCodeInvalidTile,
		errors.ErrCodeInvalidTier, errors.ErrCodeInvalidGeometry,
		errors.ErrCodeInvalidBoard, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, map[string]any{
		"error": errors.UserMessage(err),
		"code":  string(code),
	})
}
