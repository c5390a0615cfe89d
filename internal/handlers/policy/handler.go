package policy

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"agenda/infras/otel"
	"agenda/internal/domains/policy/model/dto"
	"agenda/internal/domains/policy/service"
	"agenda/shared/constant"
	"agenda/shared/validator"
	"agenda/transport/http/response"
)

type Handler struct {
	service service.Policy
	otel    otel.Otel
}

func New(service service.Policy, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/policy", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Get)
		routerGroup.Put("/", handler.Update)
	})
}

func (handler *Handler) Get(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPolicy")
	defer scope.End()

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	policy, err := handler.service.Get(ctx, tenantID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cancellation policy")

		response.WithError(writer, err)

		return
	}

	res := dto.PolicyResponse{}
	res.FromModel(policy)

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePolicy")
	defer scope.End()

	req := dto.UpdatePolicyRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	if err := handler.service.Update(ctx, tenantID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update cancellation policy")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Cancellation policy updated successfully")
}
