package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/interview-coach-team/interview-analyzer/errors"
	"github.com/interview-coach-team/interview-analyzer/internal/domain/entities"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a standardized success response
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging. Domain sentinel
// errors are lifted to their API error shape before rendering.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	err = liftDomainError(err)
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}

		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}

		body := errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
			Details: appErr.Details,
		}

		return c.JSON(appErr.HTTPCode, body)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	body := errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	}

	return c.JSON(http.StatusInternalServerError, body)
}

// liftDomainError maps domain sentinel errors onto the API error
// taxonomy. AppErrors pass through unchanged.
func liftDomainError(err error) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return err
	}

	switch {
	case stdErrors.Is(err, entities.ErrInterviewNotFound):
		return errors.ErrNotFound("interview")
	case stdErrors.Is(err, entities.ErrReportNotFound):
		return errors.ErrNotFound("session report")
	case stdErrors.Is(err, entities.ErrInsufficientData):
		return errors.ErrInsufficientData()
	case stdErrors.Is(err, entities.ErrEmptyTranscript):
		return errors.ErrEmptyTranscript()
	case stdErrors.Is(err, entities.ErrEmptyResume):
		return errors.ErrEmptyResume()
	case stdErrors.Is(err, entities.ErrNoAudioAttached):
		return errors.ErrInvalidArgument("interview has no audio recording attached")
	case stdErrors.Is(err, entities.ErrNoResumeAttached):
		return errors.ErrInvalidArgument("interview has no resume attached")
	case stdErrors.Is(err, entities.ErrModelNotReady):
		return errors.ErrModelNotReady("transcription")
	case stdErrors.Is(err, entities.ErrEmptyAudio), stdErrors.Is(err, entities.ErrFeatureExtraction):
		return errors.ErrFeatureExtraction(err)
	default:
		return err
	}
}
