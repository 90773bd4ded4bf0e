package schedule

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"mesa/infras/otel"
	"mesa/internal/domains/schedule/model"
	"mesa/internal/domains/schedule/model/dto"
	"mesa/internal/domains/schedule/service"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	"mesa/shared/validator"
	"mesa/transport/http/middleware"
	"mesa/transport/http/response"
)

type Handler struct {
	service service.Schedule
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Schedule, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/schedules", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.APIKey)

		routerGroup.Route("/closed-days", func(r chi.Router) {
			r.Post("/", handler.CreateClosedDay)
			r.Get("/", handler.GetClosedDays)
			r.Delete("/{id}", handler.DeleteClosedDay)
		})

		routerGroup.Route("/special-schedules", func(r chi.Router) {
			r.Post("/", handler.CreateSpecialSchedule)
			r.Get("/", handler.GetSpecialSchedules)
			r.Delete("/{id}", handler.DeleteSpecialSchedule)
		})
	})
}

// CreateClosedDay marks a date as closed.
// @Summary Mark a date as closed
// @Description Close the venue on a date; existing availability for that date disappears.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body dto.CreateClosedDayRequest true "Create Closed Day Request"
// @Success 201 {object} response.Message "Closed day created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/closed-days [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateClosedDay(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClosedDay")
	defer scope.End()

	req := dto.CreateClosedDayRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateClosedDay(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create closed day")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Closed day created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Closed day created successfully")
}

// GetClosedDays retrieves closed days with pagination.
// @Summary Get closed days
// @Description Retrieve closed days, optionally filtered by date.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} dto.GetClosedDaysResponse "List of closed days"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/closed-days [get]
// @Security ApiKeyAuth
func (handler *Handler) GetClosedDays(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClosedDays")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	closedDays, err := handler.service.GetClosedDays(ctx, queryParams, dateFilter(r, model.ClosedDayTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get closed days")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Closed days retrieved successfully")

	response.WithJSON(w, http.StatusOK, closedDays)
}

// DeleteClosedDay reopens a date.
// @Summary Delete a closed day
// @Description Remove a closed-day marking, restoring the date's regular availability.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Closed Day ID"
// @Success 200 {object} response.Message "Closed day deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/closed-days/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteClosedDay(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteClosedDay")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteClosedDay(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete closed day")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Closed day deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Closed day deleted successfully")
}

// CreateSpecialSchedule sets custom operating hours for a date.
// @Summary Create a special schedule
// @Description Override the default operating hours for one date.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body dto.CreateSpecialScheduleRequest true "Create Special Schedule Request"
// @Success 201 {object} response.Message "Special schedule created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/special-schedules [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateSpecialSchedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSpecialSchedule")
	defer scope.End()

	req := dto.CreateSpecialScheduleRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.CreateSpecialSchedule(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create special schedule")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Special schedule created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Special schedule created successfully")
}

// GetSpecialSchedules retrieves special schedules with pagination.
// @Summary Get special schedules
// @Description Retrieve special schedules, optionally filtered by date.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} dto.GetSpecialSchedulesResponse "List of special schedules"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/special-schedules [get]
// @Security ApiKeyAuth
func (handler *Handler) GetSpecialSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpecialSchedules")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	specialSchedules, err := handler.service.GetSpecialSchedules(ctx, queryParams, dateFilter(r, model.SpecialScheduleTableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get special schedules")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Special schedules retrieved successfully")

	response.WithJSON(w, http.StatusOK, specialSchedules)
}

// DeleteSpecialSchedule removes a special schedule.
// @Summary Delete a special schedule
// @Description Remove a special schedule, restoring the date's default hours.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Special Schedule ID"
// @Success 200 {object} response.Message "Special schedule deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/special-schedules/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteSpecialSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSpecialSchedule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteSpecialSchedule(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete special schedule")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Special schedule deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Special schedule deleted successfully")
}

func dateFilter(r *http.Request, table string) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if date := r.URL.Query().Get(constant.RequestParamDate); date != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorEq,
			Value:    date,
			Table:    table,
		})
	}

	return filterGroup
}
