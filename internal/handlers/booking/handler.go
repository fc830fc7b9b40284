package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"meetslot/infras/otel"
	"meetslot/internal/domains/booking/model/dto"
	"meetslot/internal/domains/booking/service"
	"meetslot/shared/constant"
	"meetslot/shared/validator"
	"meetslot/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/schedule-discovery-call", handler.ScheduleDiscoveryCall)
}

// ScheduleDiscoveryCall books a discovery call and notifies the participants.
// @Summary Schedule a discovery call
// @Description Validates the slot, creates the online meeting, reserves the slot and emails the requester, guests, organizer and admin. Notification failures are reported per recipient and do not fail the booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.ScheduleRequest true "Schedule Request"
// @Success 200 {object} dto.ScheduleResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/schedule-discovery-call [post]
func (handler *Handler) ScheduleDiscoveryCall(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ScheduleDiscoveryCall")
	defer scope.End()

	req := dto.ScheduleRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Schedule(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", req.SelectedDate).Str("time", req.SelectedTime).Msg("failed to schedule discovery call")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("discovery call scheduled " + res.BookingID)

	response.WithJSON(writer, http.StatusOK, res)
}
