package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/uuid"
	"fintrack/internal/validator"
)

// parsePathID reads a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
func parsePathID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if !uuid.IsValid(id) {
		return "", apperrors.Field(apperrors.ErrInvalidInput, "id", "id must be a valid UUID")
	}
	return id, nil
}

// checkBodyID rejects a request body whose id disagrees with the path.
func checkBodyID(pathID, bodyID string) error {
	if bodyID != "" && bodyID != pathID {
		return apperrors.Field(apperrors.ErrInvalidInput, "id", "id in body does not match the path")
	}
	return nil
}

// queryInt parses an optional integer query parameter. A missing parameter
// yields zero.
func queryInt(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Field(apperrors.ErrInvalidInput, name, name+" must be an integer")
	}
	return n, nil
}

// bindingError converts a ShouldBindJSON failure into an AppError, keeping
// per-field messages when the failure came from validation.
func bindingError(err error) error {
	if fields, ok := validator.Messages(err); ok {
		return apperrors.WithFields(apperrors.ErrInvalidInput, "Invalid input", fields)
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, message and field details.
// Otherwise it logs the unexpected error and returns a generic internal
// server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{
			Error: ErrorDetail{
				Code:    appErr.Code,
				Message: appErr.Message,
				Fields:  appErr.Fields,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    apperrors.ErrInternalServer.Code,
			Message: apperrors.ErrInternalServer.Message,
		},
	})
}

// attachment sends data as a file download.
func attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
