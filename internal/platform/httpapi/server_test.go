package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/memory"
)

type fakeStore struct {
	best     map[memory.Difficulty]memory.BestScore
	entries  []memory.ScoreEntry
	settings *config.Settings
	err      error
	gotMode  memory.Mode
	gotDiff  memory.Difficulty
	gotLimit int
}

func (f *fakeStore) BestScores() (map[memory.Difficulty]memory.BestScore, error) {
	return f.best, f.err
}

func (f *fakeStore) ScoreHistory(mode memory.Mode, limit int) ([]memory.ScoreEntry, error) {
	f.gotMode, f.gotLimit = mode, limit
	return f.entries, f.err
}

func (f *fakeStore) TopTimes(d memory.Difficulty, limit int) ([]memory.ScoreEntry, error) {
	f.gotDiff, f.gotLimit = d, limit
	return f.entries, f.err
}

func (f *fakeStore) Settings() (config.Settings, bool, error) {
	if f.settings == nil {
		return config.DefaultSettings(), false, nil
	}
	return *f.settings, true, nil
}

func (f *fakeStore) SetSettings(s config.Settings) error {
	if f.err != nil {
		return f.err
	}
	f.settings = &s
	return nil
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, New(&fakeStore{}, nil), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestBest(t *testing.T) {
	store := &fakeStore{best: map[memory.Difficulty]memory.BestScore{
		memory.DifficultyMedium: {Seconds: 95, Moves: 18},
	}}
	rec := do(t, New(store, nil), http.MethodGet, "/api/best", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var got []bestResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("rows = %d, expected 3", len(got))
	}
	if got[0].Recorded || got[0].Display != "No record yet" {
		t.Errorf("easy = %+v, expected no record", got[0])
	}
	if !got[1].Recorded || got[1].Seconds != 95 || got[1].Display != "01:35 (18 moves)" {
		t.Errorf("medium = %+v", got[1])
	}
	if got[2].Pairs != 15 {
		t.Errorf("hard pairs = %d, expected 15", got[2].Pairs)
	}
}

func TestScores(t *testing.T) {
	store := &fakeStore{entries: []memory.ScoreEntry{
		{ID: "a", Mode: memory.ModeSolo, Difficulty: memory.DifficultyEasy, Moves: 9, Seconds: 40, Date: time.Now()},
	}}
	s := New(store, nil)

	rec := do(t, s, http.MethodGet, "/api/scores?mode=solo&limit=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if store.gotMode != memory.ModeSolo || store.gotLimit != 5 {
		t.Errorf("query = %q/%d, expected solo/5", store.gotMode, store.gotLimit)
	}
	var got []memory.ScoreEntry
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" || got[0].Seconds != 40 {
		t.Errorf("entries = %+v", got)
	}

	rec = do(t, s, http.MethodGet, "/api/scores?limit=100000", "")
	if rec.Code != http.StatusOK || store.gotLimit != maxLimit || store.gotMode != "" {
		t.Errorf("status=%d limit=%d mode=%q, expected capped limit for all modes", rec.Code, store.gotLimit, store.gotMode)
	}
}

func TestScoresEmptyIsArray(t *testing.T) {
	rec := do(t, New(&fakeStore{}, nil), http.MethodGet, "/api/scores", "")
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %q, expected []", body)
	}
}

func TestScoresBadQuery(t *testing.T) {
	s := New(&fakeStore{}, nil)
	for _, target := range []string{"/api/scores?mode=online", "/api/scores?limit=-1", "/api/scores?limit=ten"} {
		if rec := do(t, s, http.MethodGet, target, ""); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, expected 400", target, rec.Code)
		}
	}
}

func TestTopTimes(t *testing.T) {
	store := &fakeStore{entries: []memory.ScoreEntry{{ID: "fast", Difficulty: memory.DifficultyHard, Seconds: 70}}}
	s := New(store, nil)

	rec := do(t, s, http.MethodGet, "/api/best/HARD?limit=3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if store.gotDiff != memory.DifficultyHard || store.gotLimit != 3 {
		t.Errorf("query = %s/%d, expected hard/3", store.gotDiff, store.gotLimit)
	}

	if rec := do(t, s, http.MethodGet, "/api/best/extreme", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown difficulty status = %d, expected 404", rec.Code)
	}
}

func TestStoreError(t *testing.T) {
	s := New(&fakeStore{err: errors.New("disk gone")}, nil)
	if rec := do(t, s, http.MethodGet, "/api/best", ""); rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, expected 500", rec.Code)
	}
}

func TestSettings(t *testing.T) {
	store := &fakeStore{}
	s := New(store, nil)

	rec := do(t, s, http.MethodGet, "/api/settings", "")
	var got config.Settings
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != config.DefaultSettings() {
		t.Errorf("settings = %+v, expected defaults", got)
	}

	rec = do(t, s, http.MethodPut, "/api/settings", `{"soundEnabled":false,"vibrationEnabled":true,"difficulty":"hard"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, expected 200", rec.Code)
	}
	if store.settings == nil || store.settings.SoundEnabled || store.settings.Difficulty != "hard" {
		t.Errorf("stored settings = %+v", store.settings)
	}

	rec = do(t, s, http.MethodPut, "/api/settings", `{"difficulty":"impossible"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad difficulty status = %d, expected 400", rec.Code)
	}
	rec = do(t, s, http.MethodPut, "/api/settings", `{"volume":11}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown field status = %d, expected 400", rec.Code)
	}
}

func TestNotFound(t *testing.T) {
	rec := do(t, New(&fakeStore{}, nil), http.MethodGet, "/api/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, expected 404", rec.Code)
	}
}
