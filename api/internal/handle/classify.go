package handle

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"sampahkupilah/api/internal/classify"
	"sampahkupilah/api/internal/gate"
	"sampahkupilah/api/internal/store"
)

type ClassifyRequest struct {
	ImageBase64 string   `json:"imageBase64"`
	Images      []string `json:"images"`
	UserEmail   string   `json:"userEmail"`
	LLMName     string   `json:"llm_name"`
}

const persistTimeout = 10 * time.Second

// Classify runs the full pipeline: intake, gate, inference, resilient
// decode and bin mapping, with a fire-and-forget persistence write at the end.
// Malformed model output never fails the request; the caller always gets a
// best-effort decision.
func (h *Handle) Classify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Gunakan metode POST.")
		return
	}
	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "Body permintaan bukan JSON yang valid.")
		return
	}

	images, err := classify.NormalizeImages(req.ImageBase64, req.Images)
	if err != nil {
		writeError(w, http.StatusBadRequest, "no_image", "Tidak ada gambar yang bisa diproses. Kirim minimal satu foto.")
		return
	}

	wait, err := h.gate.TryAcquire()
	if err != nil {
		h.writeGateRejection(w, wait, err)
		return
	}
	defer h.gate.Release()

	engine, err := h.engs.Get(req.LLMName)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_engine", "Engine klasifikasi tidak dikenal.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestDeadline(r))
	defer cancel()

	raw, err := engine.Classify(ctx, images)
	if err != nil {
		h.writeInferenceError(w, err)
		return
	}

	decision, decErr := classify.DecodeDecision(raw)
	if decErr != nil {
		// Policy: malformed model output degrades to defaults, never to an error.
		log.Printf("classify: falling back to defaults: %v", decErr)
	}
	resp := classify.BuildResponse(decision)

	if req.UserEmail != "" && h.repo != nil {
		go h.persistDetection(req.UserEmail, resp.Decision)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handle) writeGateRejection(w http.ResponseWriter, wait time.Duration, err error) {
	body := errorBody{CooldownMS: wait.Milliseconds()}
	switch {
	case errors.Is(err, gate.ErrCooldown):
		body.Error = "cooldown"
		body.Message = "Tunggu sebentar sebelum memindai lagi."
	case errors.Is(err, gate.ErrBusy):
		body.Error = "busy"
		body.Message = "Masih ada pemindaian yang berjalan. Coba lagi sebentar lagi."
	default:
		body.Error = "rejected"
		body.Message = "Permintaan ditolak. Coba lagi."
	}
	writeJSON(w, http.StatusTooManyRequests, body)
}

func (h *Handle) writeInferenceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, classify.ErrRateLimited):
		log.Printf("classify: upstream rate limit: %v", err)
		writeJSON(w, http.StatusTooManyRequests, errorBody{
			Error:      "rate_limited",
			Message:    "Layanan AI sedang sibuk. Coba lagi beberapa saat.",
			CooldownMS: gate.DefaultCooldown.Milliseconds(),
		})
	case classify.IsCredentialError(err):
		log.Printf("classify: credential error: %v", err)
		writeError(w, http.StatusInternalServerError, "missing_api_key",
			"Kunci API layanan AI belum dikonfigurasi dengan benar.")
	default:
		log.Printf("classify: inference error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal",
			"Terjadi kesalahan saat menghubungi layanan AI. Coba lagi.")
	}
}

// persistDetection runs detached from the request: the response has already
// been written, so failures are logged and dropped.
func (h *Handle) persistDetection(identity string, d classify.Decision) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	rec := store.DetectionRecord{
		UserIdentity: identity,
		Category:     d.Category,
		BinName:      d.BinName,
		Confidence:   d.Confidence,
		Reason:       d.Reason,
		CreatedAt:    time.Now(),
	}
	if err := h.repo.Insert(ctx, rec); err != nil {
		log.Printf("classify: persist detection for %s: %v", identity, err)
	}
}

func requestDeadline(r *http.Request) time.Duration {
	deadline := 120 * time.Second
	if ts := r.Header.Get("X-Request-Timeout"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	} else if ts := r.URL.Query().Get("timeoutSec"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	}
	return deadline
}
