package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NewHTTPErrorHandler returns a handler rendering HttpError values with their
// status code and message. Unclassified errors become opaque 500 responses
// carrying the request id as the diagnostic detail; the underlying error is
// logged but never echoed back to the client.
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		e := HttpError{}
		if errors.As(err, &e) {
			if e.Code < http.StatusInternalServerError {
				c.Echo().DefaultHTTPErrorHandler(echo.NewHTTPError(e.Code, err.Error()), c)
				return
			}
			writeServerError(logger, err, c)
			return
		}
		var he *echo.HTTPError
		if errors.As(err, &he) {
			c.Echo().DefaultHTTPErrorHandler(err, c)
			return
		}
		writeServerError(logger, err, c)
	}
}

func writeServerError(logger *zap.Logger, err error, c echo.Context) {
	requestId := c.Response().Header().Get(echo.HeaderXRequestID)
	logger.Error("request failed",
		zap.Error(err),
		zap.String("requestId", requestId),
		zap.String("path", c.Path()),
	)

	if c.Response().Committed {
		return
	}
	_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"message": "internal server error",
		"error":   "request " + requestId,
	})
}
