package availability

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mesa/infras/otel"
	"mesa/internal/domains/availability/service"
	"mesa/shared/constant"
	"mesa/transport/http/response"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/times", handler.GetAvailableTimes)
		routerGroup.Get("/unavailable-dates", handler.GetUnavailableDates)
	})
}

// GetAvailableTimes returns the open booking slots for a date.
// @Summary Get available times for a date
// @Description Compute the bookable time slots for the given date, honoring closed days, special schedules and existing reservations.
// @Tags Availability
// @Accept json
// @Produce json
// @Param date query string true "Date in YYYY-MM-DD format"
// @Success 200 {object} dto.AvailableTimesResponse "Available slots"
// @Failure 500 {object} response.Error
// @Router /v1/availability/times [get]
func (handler *Handler) GetAvailableTimes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableTimes")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	times, err := handler.service.GetAvailableTimes(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available times")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available times computed for " + date)

	response.WithJSON(w, http.StatusOK, times)
}

// GetUnavailableDates returns the dates the booking calendar should block.
// @Summary Get unavailable dates
// @Description List the dates that are closed or run on a special schedule.
// @Tags Availability
// @Accept json
// @Produce json
// @Success 200 {object} dto.UnavailableDatesResponse "Unavailable dates"
// @Failure 500 {object} response.Error
// @Router /v1/availability/unavailable-dates [get]
func (handler *Handler) GetUnavailableDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnavailableDates")
	defer scope.End()

	dates, err := handler.service.GetUnavailableDates(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get unavailable dates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Unavailable dates retrieved successfully")

	response.WithJSON(w, http.StatusOK, dates)
}
