package availability

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"agenda/infras/otel"
	"agenda/internal/domains/availability/model/dto"
	"agenda/internal/domains/availability/service"
	"agenda/shared/constant"
	"agenda/shared/failure"
	"agenda/shared/timezone"
	"agenda/transport/http/response"
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
		routerGroup.Get("/", handler.GetAvailableSlots)
	})
}

// GetAvailableSlots lists the bookable slots for one staff member on one
// date. The listing is advisory; booking re-checks before writing.
func (handler *Handler) GetAvailableSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableSlots")
	defer scope.End()

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	staffID := request.URL.Query().Get(constant.RequestParamStaffID)
	if staffID == "" {
		response.WithError(writer, failure.BadRequestFromString("staff_id is required"))

		return
	}

	date, err := timezone.Parse(constant.DateOnlyFormat, request.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		response.WithError(writer, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD"))

		return
	}

	duration, err := strconv.Atoi(request.URL.Query().Get(constant.RequestParamDuration))
	if err != nil || duration <= 0 {
		response.WithError(writer, failure.BadRequestFromString("duration_minutes must be a positive integer"))

		return
	}

	slots, err := handler.service.GetAvailableSlots(ctx, tenantID, staffID, date, duration)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available slots")

		response.WithError(writer, err)

		return
	}

	res := dto.GetSlotsResponse{
		StaffID: staffID,
		Date:    date.Format(constant.DateOnlyFormat),
		Slots:   make([]dto.SlotResponse, 0, len(slots)),
	}

	for _, slot := range slots {
		res.Slots = append(res.Slots, dto.NewSlotResponse(slot))
	}

	response.WithJSON(writer, http.StatusOK, res)
}
