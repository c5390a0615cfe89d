package waitlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"agenda/infras/otel"
	rsModel "agenda/internal/domains/reservation/model"
	"agenda/internal/domains/waitlist/model/dto"
	"agenda/internal/domains/waitlist/service"
	"agenda/shared/constant"
	"agenda/shared/validator"
	"agenda/transport/http/response"
)

type Handler struct {
	service service.Waitlist
	otel    otel.Otel
}

func New(service service.Waitlist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/waitlist", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Join)
		routerGroup.Get("/", handler.ListMine)
		routerGroup.Post("/{id}/cancel", handler.Cancel)
	})
}

// RouterPublic carries the confirmation-link route; the token is the only
// credential a notified client has.
func (handler *Handler) RouterPublic(router chi.Router) {
	router.Post("/waitlist/confirm/{token}", handler.Convert)
}

func (handler *Handler) Join(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".JoinWaitlist")
	defer scope.End()

	req := dto.JoinWaitlistRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	res, err := handler.service.Join(ctx, tenantID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to join waitlist")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

func (handler *Handler) ListMine(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListMyWaitlistEntries")
	defer scope.End()

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)
	email, _ := ctx.Value(constant.ContextKeyActorEmail).(string)

	res, err := handler.service.ListForClient(ctx, tenantID, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list waitlist entries")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) Convert(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConvertWaitlistEntry")
	defer scope.End()

	res, err := handler.service.Convert(ctx, chi.URLParam(request, "token"))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert waitlist entry")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) Cancel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelWaitlistEntry")
	defer scope.End()

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)
	email, _ := ctx.Value(constant.ContextKeyActorEmail).(string)
	role, _ := ctx.Value(constant.ContextKeyActorRole).(string)

	actor := rsModel.Actor{Email: email, Admin: role == constant.RoleAdmin}

	err := handler.service.Cancel(ctx, tenantID, chi.URLParam(request, constant.RequestParamID), actor)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel waitlist entry")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Waitlist entry cancelled successfully")
}
