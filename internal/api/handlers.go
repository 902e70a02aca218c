package api

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/susu3304/huntbot/internal/db"
	"github.com/susu3304/huntbot/internal/lootsplit"
)

// maxReportBytes bounds the size of a pasted report.
const maxReportBytes = 64 << 10

type splitResponse struct {
	Result       lootsplit.SplitResult         `json:"result"`
	Instructions []lootsplit.PayerInstructions `json:"instructions"`
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Ping(r.Context()); err != nil {
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSplit accepts the report either as plain text or as {"text": "..."}.
func (a *API) handleSplit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxReportBytes))
	if err != nil {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}

	text := string(body)
	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "application/json" {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		text = req.Text
	}

	session := lootsplit.Parse(text)
	if len(session.Players) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "no party members detected",
		})
		return
	}

	res := lootsplit.CalculateSplit(session)
	instructions := lootsplit.Instructions(res)
	if instructions == nil {
		instructions = []lootsplit.PayerInstructions{}
	}
	writeJSON(w, http.StatusOK, splitResponse{Result: res, Instructions: instructions})
}

// Protected handlers
func (a *API) handleListTimers(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	timers, err := a.store.ListTimersByUser(r.Context(), claims.UserID)
	if err != nil {
		a.log.Errorw("failed to list timers", "user", claims.UserID, "error", err)
		http.Error(w, "failed to list timers", http.StatusInternalServerError)
		return
	}
	if timers == nil {
		timers = []db.Timer{}
	}
	writeJSON(w, http.StatusOK, timers)
}
