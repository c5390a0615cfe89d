package trust

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"agenda/infras/otel"
	"agenda/internal/domains/trust/model/dto"
	"agenda/internal/domains/trust/service"
	"agenda/shared/constant"
	"agenda/shared/failure"
	"agenda/transport/http/response"
)

type Handler struct {
	service service.Trust
	otel    otel.Otel
}

func New(service service.Trust, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/trust", func(routerGroup chi.Router) {
		routerGroup.Get("/status", handler.GetStatus)
	})
}

// GetStatus reports a client's trust standing. Clients may only look up
// their own record; admins may look up anyone's via the query parameter.
func (handler *Handler) GetStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrustStatus")
	defer scope.End()

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)
	actorEmail, _ := ctx.Value(constant.ContextKeyActorEmail).(string)
	role, _ := ctx.Value(constant.ContextKeyActorRole).(string)

	clientEmail := request.URL.Query().Get("client_email")
	if clientEmail == "" {
		clientEmail = actorEmail
	}

	if clientEmail != actorEmail && role != constant.RoleAdmin {
		response.WithError(writer, failure.ForbiddenError)

		return
	}

	rec, err := handler.service.CheckAndMaybeUnblock(ctx, tenantID, clientEmail)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trust status")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.NewTrustStatusResponse(rec))
}
