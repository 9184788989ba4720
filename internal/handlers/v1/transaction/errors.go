package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// toHumaError maps ledger errors onto HTTP problems. The detail message
// carries the error kind and the reason.
func toHumaError(ctx context.Context, msg string, err error) error {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("errorKind", service.ErrorKind(err))
		if cause := errors.Unwrap(err); cause != nil {
			logData.AddData("errorCause", cause.Error())
		}
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		location := "body"
		if validationErr.Field != "" {
			location = "body." + validationErr.Field
		}
		return huma.NewError(http.StatusBadRequest, msg+": "+validationErr.Reason, &huma.ErrorDetail{
			Message:  validationErr.Error(),
			Location: location,
		})
	}

	var storeErr *service.StoreError
	if errors.As(err, &storeErr) {
		return huma.NewError(http.StatusServiceUnavailable, msg, &huma.ErrorDetail{
			Message: storeErr.Error(),
		})
	}

	return huma.NewError(http.StatusInternalServerError, msg)
}

func startTimer(ctx context.Context, name string) func() {
	if logData := logging.GetLogData(ctx); logData != nil {
		return logData.AddTiming(name)
	}
	return func() {}
}

func addLogData(ctx context.Context, key string, value interface{}) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData(key, value)
	}
}
