package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/numera/internal/api/shared"
	"github.com/phrazzld/numera/internal/domain/numerology"
	"github.com/phrazzld/numera/internal/service"
)

// NumerologyHandler handles the numerology HTTP endpoints
type NumerologyHandler struct {
	service service.NumerologyService
}

// NewNumerologyHandler creates a new NumerologyHandler.
// Request-scoped logging comes from the context set by the trace middleware.
func NewNumerologyHandler(svc service.NumerologyService) *NumerologyHandler {
	return &NumerologyHandler{
		service: svc,
	}
}

// RegisterRoutes mounts every numerology endpoint on r.
func (h *NumerologyHandler) RegisterRoutes(r chi.Router) {
	r.Post("/profile", h.Profile)
	r.Post("/compatibility", h.Compatibility)
	r.Route("/forecast", func(r chi.Router) {
		r.Post("/daily", h.DailyForecast)
		r.Post("/monthly", h.MonthlyForecast)
		r.Post("/yearly", h.YearlyForecast)
	})
	r.Post("/lucky-dates", h.LuckyDates)
}

// Profile handles POST /api/profile requests
func (h *NumerologyHandler) Profile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := h.service.Profile(r.Context(), service.ProfileRequest{
		Name:      req.Name,
		BirthDate: req.BirthDate,
		AsOf:      req.AsOf,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to calculate profile")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// Compatibility handles POST /api/compatibility requests
func (h *NumerologyHandler) Compatibility(w http.ResponseWriter, r *http.Request) {
	var req CompatibilityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.Compatibility(r.Context(), req.BirthDateA, req.BirthDateB)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to calculate compatibility")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// DailyForecast handles POST /api/forecast/daily requests
func (h *NumerologyHandler) DailyForecast(w http.ResponseWriter, r *http.Request) {
	var req DailyForecastRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	forecast, err := h.service.DailyForecast(r.Context(), req.BirthDate, req.AsOf)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate forecast")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, forecast)
}

// MonthlyForecast handles POST /api/forecast/monthly requests
func (h *NumerologyHandler) MonthlyForecast(w http.ResponseWriter, r *http.Request) {
	var req PeriodRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	forecast, err := h.service.MonthlyForecast(r.Context(), req.BirthDate, req.Year, req.Month)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate forecast")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, forecast)
}

// YearlyForecast handles POST /api/forecast/yearly requests
func (h *NumerologyHandler) YearlyForecast(w http.ResponseWriter, r *http.Request) {
	var req YearlyForecastRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	forecast, err := h.service.YearlyForecast(r.Context(), req.BirthDate, req.Year)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate forecast")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, forecast)
}

// LuckyDates handles POST /api/lucky-dates requests
func (h *NumerologyHandler) LuckyDates(w http.ResponseWriter, r *http.Request) {
	var req PeriodRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	dates, err := h.service.LuckyDates(r.Context(), req.BirthDate, req.Year, req.Month)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to find lucky dates")
		return
	}
	if dates == nil {
		dates = []numerology.LuckyDate{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, dates)
}
