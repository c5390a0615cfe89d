package workinghours

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"agenda/infras/otel"
	"agenda/internal/domains/workinghours/model/dto"
	"agenda/internal/domains/workinghours/service"
	"agenda/shared/constant"
	"agenda/shared/failure"
	"agenda/shared/validator"
	"agenda/transport/http/response"
)

type Handler struct {
	service service.WorkingHours
	otel    otel.Otel
}

func New(service service.WorkingHours, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/working-hours", func(routerGroup chi.Router) {
		routerGroup.Put("/", handler.Upsert)
		routerGroup.Get("/{staffId}", handler.List)
		routerGroup.Patch("/{staffId}/{weekday}", handler.SetActive)
	})
}

func (handler *Handler) Upsert(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertWorkingHours")
	defer scope.End()

	req := dto.UpsertWorkingHoursRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	if err := handler.service.Upsert(ctx, tenantID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert working hours")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Working hours saved successfully")
}

func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListWorkingHours")
	defer scope.End()

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	res, err := handler.service.List(ctx, tenantID, chi.URLParam(request, "staffId"))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list working hours")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) SetActive(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetWorkingHoursActive")
	defer scope.End()

	weekday, err := strconv.Atoi(chi.URLParam(request, "weekday"))
	if err != nil || weekday < 0 || weekday > 6 {
		response.WithError(writer, failure.BadRequestFromString("weekday must be between 0 and 6"))

		return
	}

	req := dto.SetActiveRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	err = handler.service.SetActive(ctx, tenantID, chi.URLParam(request, "staffId"), weekday, req.Active)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle working hours")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Working hours updated successfully")
}
