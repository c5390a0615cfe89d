package response

import (
	"encoding/json"
	"net/http"

	"agenda/shared/constant"
	"agenda/shared/failure"
	"agenda/shared/logger"
)

type envelope struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// WithJSON sends the payload under the data key.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	write(writer, code, envelope{Data: jsonPayload})
}

// WithMessage sends a plain text message response.
func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, envelope{Message: message})
}

// WithError derives the status code from the failure and sends its message.
func WithError(writer http.ResponseWriter, err error) {
	write(writer, failure.GetCode(err), envelope{Error: err.Error()})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload envelope) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
