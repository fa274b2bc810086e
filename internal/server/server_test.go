package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brandsmith/moodgrid/pkg/board"
	"github.com/brandsmith/moodgrid/pkg/catalog"
	"github.com/brandsmith/moodgrid/pkg/session"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	reg, err := board.NewRegistry(
		board.Tile{ID: "brand-hero", Type: "image"},
		board.Tile{ID: "brand-logo", Type: "logo"},
		board.Tile{ID: "brand-palette", Type: "palette"},
	)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return New(Config{Addr: ":0"}, catalog.Builtin(), reg, session.NewMemoryStore(), nil, nil)
}

func doJSON(t *testing.T, h http.Handler, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(data)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if sessionID != "" {
		req.Header.Set(SessionHeader, sessionID)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestPresetsEndpoint(t *testing.T) {
	h := testServer(t).Router()
	w := doJSON(t, h, http.MethodGet, "/api/presets", "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var out struct {
		Presets []struct {
			Name    string `json:"name"`
			Default bool   `json:"default"`
		} `json:"presets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Presets) != 3 {
		t.Fatalf("presets = %d, want 3", len(out.Presets))
	}
	foundDefault := false
	for _, p := range out.Presets {
		if p.Default {
			foundDefault = true
			if p.Name != catalog.PresetEditorial {
				t.Errorf("default preset = %q, want %q", p.Name, catalog.PresetEditorial)
			}
		}
	}
	if !foundDefault {
		t.Error("no preset marked default")
	}
}

func TestBoardEndpointCreatesSession(t *testing.T) {
	h := testServer(t).Router()
	w := doJSON(t, h, http.MethodGet, "/api/board?width=1280", "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Header().Get(SessionHeader) == "" {
		t.Error("response should carry a fresh session id")
	}

	var out struct {
		Preset string `json:"preset"`
		Tier   string `json:"tier"`
		Slots  []any  `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Preset != catalog.PresetEditorial {
		t.Errorf("preset = %q, want default", out.Preset)
	}
	if out.Tier != "desktop" {
		t.Errorf("tier = %q, want desktop for width 1280", out.Tier)
	}
	if len(out.Slots) == 0 {
		t.Error("board should have slots")
	}
}

func TestBoardEndpointTierFromWidth(t *testing.T) {
	h := testServer(t).Router()

	tests := []struct {
		width string
		tier  string
	}{
		{"320", "mobile"},
		{"767", "mobile"},
		{"768", "tablet"},
		{"1023", "tablet"},
		{"1024", "desktop"},
	}
	for _, tt := range tests {
		w := doJSON(t, h, http.MethodGet, "/api/board?width="+tt.width, "", nil)
		var out struct {
			Tier string `json:"tier"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.Tier != tt.tier {
			t.Errorf("width %s: tier = %q, want %q", tt.width, out.Tier, tt.tier)
		}
	}
}

func TestSwapEndpointPersistsAcrossRequests(t *testing.T) {
	h := testServer(t).Router()

	// Establish a session
	w := doJSON(t, h, http.MethodGet, "/api/board", "", nil)
	sid := w.Header().Get(SessionHeader)
	if sid == "" {
		t.Fatal("no session id")
	}

	// Swap two placements of the editorial desktop geometry
	w = doJSON(t, h, http.MethodPost, "/api/swap", sid, map[string]any{"a": "hero", "b": "palette"})
	if w.Code != http.StatusOK {
		t.Fatalf("swap status = %d: %s", w.Code, w.Body.String())
	}
	var swapOut struct {
		Swapped bool              `json:"swapped"`
		Swaps   map[string]string `json:"swaps"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &swapOut); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !swapOut.Swapped {
		t.Fatal("swap of valid placements should apply")
	}
	if swapOut.Swaps["hero"] != "palette" || swapOut.Swaps["palette"] != "hero" {
		t.Errorf("swaps = %v", swapOut.Swaps)
	}

	// The same session sees the swap on subsequent board reads
	w = doJSON(t, h, http.MethodGet, "/api/board", sid, nil)
	var out struct {
		Slots []struct {
			Placement string `json:"placement"`
			Tile      *struct {
				ID string `json:"id"`
			} `json:"tile"`
		} `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, slot := range out.Slots {
		if slot.Placement == "palette" {
			if slot.Tile == nil || slot.Tile.ID != "brand-hero" {
				t.Errorf("palette slot after swap = %+v, want brand-hero", slot.Tile)
			}
		}
	}
}

func TestSwapEndpointUnknownPlacementIsNoop(t *testing.T) {
	h := testServer(t).Router()

	w := doJSON(t, h, http.MethodPost, "/api/swap", "", map[string]any{"a": "hero", "b": "bogus"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 no-op", w.Code)
	}
	var out struct {
		Swapped bool              `json:"swapped"`
		Swaps   map[string]string `json:"swaps"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Swapped {
		t.Error("swap with unknown placement should not apply")
	}
	if len(out.Swaps) != 0 {
		t.Errorf("swaps = %v, want empty", out.Swaps)
	}
}

func TestPresetEndpointClearsSwaps(t *testing.T) {
	h := testServer(t).Router()

	w := doJSON(t, h, http.MethodGet, "/api/board", "", nil)
	sid := w.Header().Get(SessionHeader)

	doJSON(t, h, http.MethodPost, "/api/swap", sid, map[string]any{"a": "hero", "b": "palette"})

	w = doJSON(t, h, http.MethodPost, "/api/preset", sid, map[string]string{"name": catalog.PresetGallery})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var out struct {
		Preset string            `json:"preset"`
		Swaps  map[string]string `json:"swaps"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Preset != catalog.PresetGallery {
		t.Errorf("preset = %q, want gallery", out.Preset)
	}
	if len(out.Swaps) != 0 {
		t.Errorf("swaps = %v, want cleared on preset change", out.Swaps)
	}
}

func TestPresetEndpointUnknownPreset(t *testing.T) {
	h := testServer(t).Router()
	w := doJSON(t, h, http.MethodPost, "/api/preset", "", map[string]string{"name": "bogus"})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	var out struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Code != "PRESET_NOT_FOUND" {
		t.Errorf("code = %q, want PRESET_NOT_FOUND", out.Code)
	}
}

func TestBoardSVGEndpoint(t *testing.T) {
	h := testServer(t).Router()
	w := doJSON(t, h, http.MethodGet, "/api/board.svg?width=1280", "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "<svg") {
		t.Error("body should be an svg document")
	}
}

func TestHealthz(t *testing.T) {
	h := testServer(t).Router()
	w := doJSON(t, h, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
