package schedule

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"meetslot/infras/otel"
	"meetslot/internal/domains/schedule/model/dto"
	"meetslot/internal/domains/schedule/service"
	"meetslot/shared/constant"
	"meetslot/shared/validator"
	"meetslot/transport/http/middleware"
	"meetslot/transport/http/response"
)

type Handler struct {
	service service.Schedule
	auth    middleware.AuthRole
	otel    otel.Otel
}

func New(service service.Schedule, auth middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/check-availability", handler.CheckAvailability)
	router.Get("/available-slots", handler.AvailableSlots)
	router.Get("/booked-slots", handler.BookedSlots)

	router.With(handler.auth.APIKey, handler.auth.Auth, handler.auth.RBAC).
		Delete("/admin/booked-slots", handler.ReleaseSlot)
}

// CheckAvailability reports whether one slot can be booked.
// @Summary Check slot availability
// @Description Applies the weekday, business hour, past and booked rules to one date and time. Time accepts 24 hour (14:00) or 12 hour (2:00 PM) input.
// @Tags Schedule
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Time (HH:MM or H:MM AM/PM)"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/check-availability [get]
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	query := dto.AvailabilityQuery{
		Date: request.URL.Query().Get(constant.RequestParamDate),
		Time: request.URL.Query().Get(constant.RequestParamTime),
	}

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CheckAvailability(ctx, query.Date, query.Time)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// AvailableSlots lists every slot of a day with its availability.
// @Summary List slots for a date
// @Description Returns the 30 minute slots from 9:00 AM to 5:30 PM IST. Weekends return an empty list.
// @Tags Schedule
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.SlotsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/available-slots [get]
func (handler *Handler) AvailableSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AvailableSlots")
	defer scope.End()

	query := dto.DateQuery{Date: request.URL.Query().Get(constant.RequestParamDate)}

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.EnumerateSlots(ctx, query.Date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to enumerate slots")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// BookedSlots lists the booked times of a day.
// @Summary List booked slots
// @Tags Schedule
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.BookedSlotsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/booked-slots [get]
func (handler *Handler) BookedSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookedSlots")
	defer scope.End()

	query := dto.DateQuery{Date: request.URL.Query().Get(constant.RequestParamDate)}

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.BookedSlots(ctx, query.Date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list booked slots")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ReleaseSlot frees a booked slot. It does not cancel the provider meeting.
// @Summary Release a booked slot
// @Tags Admin
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Time (HH:MM or H:MM AM/PM)"
// @Success 200 {object} dto.ReleaseResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/booked-slots [delete]
// @Security BearerAuth
// @Security ApiKeyAuth
func (handler *Handler) ReleaseSlot(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReleaseSlot")
	defer scope.End()

	query := dto.AvailabilityQuery{
		Date: request.URL.Query().Get(constant.RequestParamDate),
		Time: request.URL.Query().Get(constant.RequestParamTime),
	}

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Release(ctx, query.Date, query.Time)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to release slot")

		response.WithError(writer, err)

		return
	}

	subject, _ := ctx.Value(constant.ContextKeySubject).(string)
	scope.AddEvent("slot released by " + subject)

	response.WithJSON(writer, http.StatusOK, res)
}
