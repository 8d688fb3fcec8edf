package handle

import (
	"context"
	"encoding/json"
	"net/http"

	"sampahkupilah/api/internal/classify"
	"sampahkupilah/api/internal/gate"
	"sampahkupilah/api/internal/store"
)

// DetectionStore is the slice of the repo the handlers need; satisfied by
// *store.DetectionRepo and by fakes in tests.
type DetectionStore interface {
	Insert(ctx context.Context, rec store.DetectionRecord) error
	History(ctx context.Context, identity string, limit int) ([]store.DetectionRecord, error)
}

type Handle struct {
	engs *classify.Engines
	gate *gate.RateGate
	repo DetectionStore // nil when no database is configured
}

func New(engs *classify.Engines, g *gate.RateGate, repo DetectionStore) *Handle {
	return &Handle{
		engs: engs,
		gate: g,
		repo: repo,
	}
}

// errorBody is the structured JSON error envelope. Messages are user-facing
// Indonesian prose; the error code is for programmatic handling.
type errorBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	CooldownMS int64  `json:"cooldown_ms,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	writeJSON(w, code, errorBody{Error: errCode, Message: message})
}
