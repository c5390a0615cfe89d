package reservation

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"agenda/infras/otel"
	"agenda/internal/domains/reservation/model"
	"agenda/internal/domains/reservation/model/dto"
	"agenda/internal/domains/reservation/service"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/validator"
	"agenda/transport/http/response"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router wires the lifecycle routes. RouterPublic carries the token-link
// route that must work without any authentication.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Book)
		routerGroup.Get("/", handler.List)
		routerGroup.Get("/{id}", handler.Get)
		routerGroup.Post("/{id}/cancel", handler.Cancel)
		routerGroup.Patch("/{id}/reschedule", handler.Reschedule)
		routerGroup.Post("/{id}/complete", handler.Complete)
	})
}

func (handler *Handler) RouterPublic(router chi.Router) {
	router.Post("/reservations/cancel/{token}", handler.CancelByToken)
}

func (handler *Handler) Book(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Book")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	res, err := handler.service.Book(ctx, tenantID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

func (handler *Handler) Get(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservation")
	defer scope.End()

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	res, err := handler.service.Get(ctx, tenantID, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filter := dto.ListReservationsFilter{}
	filter.FromRequest(request)

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	res, err := handler.service.List(ctx, tenantID, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list reservations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) Cancel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	req := dto.CancelReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	err := handler.service.Cancel(ctx, tenantID, chi.URLParam(request, constant.RequestParamID), actorFromContext(ctx, req.CancelToken), req.Reason)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel reservation")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Reservation cancelled successfully")
}

// CancelByToken serves the public cancellation link from the confirmation
// email. The token is the only credential.
func (handler *Handler) CancelByToken(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservationByToken")
	defer scope.End()

	err := handler.service.CancelByToken(ctx, chi.URLParam(request, "token"), "")
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel reservation by token")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Reservation cancelled successfully")
}

func (handler *Handler) Reschedule(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RescheduleReservation")
	defer scope.End()

	req := dto.RescheduleReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	res, err := handler.service.Reschedule(ctx, tenantID, chi.URLParam(request, constant.RequestParamID), actorFromContext(ctx, ""), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reschedule reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) Complete(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteReservation")
	defer scope.End()

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	err := handler.service.Complete(ctx, tenantID, chi.URLParam(request, constant.RequestParamID), actorFromContext(ctx, ""))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete reservation")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Reservation completed successfully")
}

func actorFromContext(ctx context.Context, cancelToken string) model.Actor {
	email, _ := ctx.Value(constant.ContextKeyActorEmail).(string)
	role, _ := ctx.Value(constant.ContextKeyActorRole).(string)
	clientID, _ := ctx.Value(constant.ContextKeyActorID).(string)

	return model.Actor{
		Email:       email,
		ClientID:    clientID,
		Admin:       role == constant.RoleAdmin,
		CancelToken: cancelToken,
	}
}
