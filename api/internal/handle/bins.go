package handle

import (
	"net/http"
	"strconv"
	"strings"

	"sampahkupilah/api/internal/classify"
)

// Bins serves the fixed bin taxonomy. The IoT proxy reads the same list.
func (h *Handle) Bins(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Gunakan metode GET.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"bins": classify.Bins()})
}

// History returns recent detection records for one identity.
func (h *Handle) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Gunakan metode GET.")
		return
	}
	identity := strings.TrimSpace(r.URL.Query().Get("email"))
	if identity == "" {
		writeError(w, http.StatusBadRequest, "no_identity", "Parameter email wajib diisi.")
		return
	}
	if h.repo == nil {
		writeError(w, http.StatusServiceUnavailable, "no_store", "Riwayat tidak tersedia tanpa database.")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	records, err := h.repo.History(r.Context(), identity, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "Gagal membaca riwayat.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": records})
}
