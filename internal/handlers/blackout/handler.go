package blackout

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"agenda/infras/otel"
	"agenda/internal/domains/blackout/model/dto"
	"agenda/internal/domains/blackout/service"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/validator"
	"agenda/transport/http/response"
)

type Handler struct {
	service service.Blackout
	otel    otel.Otel
}

func New(service service.Blackout, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/blackouts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Create)
		routerGroup.Get("/", handler.List)
		routerGroup.Delete("/{id}", handler.Delete)
	})
}

func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBlackout")
	defer scope.End()

	req := dto.CreateBlackoutRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	res, err := handler.service.Create(ctx, tenantID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create blackout period")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListBlackouts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	res, err := handler.service.List(ctx, tenantID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list blackout periods")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBlackout")
	defer scope.End()

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	err := handler.service.Delete(ctx, tenantID, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete blackout period")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Blackout period deleted successfully")
}
