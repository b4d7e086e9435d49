package web

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/vestplan/vestplan/internal/platform/errors"
	"github.com/vestplan/vestplan/internal/services/web/platform/httpx"
	"github.com/vestplan/vestplan/internal/split"
)

// apiResponse is the JSON payload for successful calculations.
type apiResponse struct {
	Success bool `json:"success"`
	split.Result
}

// handleAPICalculate computes a schedule for a JSON equity payload.
func (h *handlers) handleAPICalculate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SetEquity *float64 `json:"set_equity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "set_equity" {
			h.writeAPIError(w, r, apperrors.EK(apperrors.KindInvalidInput, "web.error.equity_not_number", "set_equity must be a number"))
			return
		}
		h.writeAPIError(w, r, apperrors.EK(apperrors.KindInvalidInput, "web.error.invalid_json", "invalid json body"))
		return
	}
	if payload.SetEquity == nil {
		h.writeAPIError(w, r, apperrors.EK(apperrors.KindInvalidInput, "web.error.equity_required", "set_equity is required"))
		return
	}

	result, err := h.calc.Calculate(*payload.SetEquity)
	if err != nil {
		h.writeAPIError(w, r, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, apiResponse{Success: true, Result: result})
}

// handleAPIHealth reports service health for API clients.
func (h *handlers) handleAPIHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) writeAPIError(w http.ResponseWriter, r *http.Request, err error) {
	loc, _ := localizer(w, r)
	_ = httpx.WriteJSONError(w, apperrors.HTTPStatus(err), publicMessage(loc, err))
}
