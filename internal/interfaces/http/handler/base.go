// Package handler exposes the storefront contracts as JSON endpoints.
// Handlers only call through the contracts and never see provider types.
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fredonbytes/backend/internal/domain/shared"
	"github.com/fredonbytes/backend/internal/infrastructure/logger"
	"github.com/fredonbytes/backend/internal/interfaces/http/dto"
)

const (
	// RequestIDHeader carries the request id in and out
	RequestIDHeader = "X-Request-ID"
	// UserIDHeader names the storefront user on user-scoped routes
	UserIDHeader = "X-User-ID"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(logger.GinRequestIDKey); id != "" {
		return id
	}
	return c.GetHeader(RequestIDHeader)
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, code, message string) {
	h.Error(c, http.StatusBadRequest, code, message)
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError converts err into a response. A DomainError anywhere in the
// chain decides the status through its kind; anything else is a 500 whose
// text is not exposed.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		resp := dto.NewErrorResponseWithRequestID(domainErr.Code, domainErr.Message, getRequestID(c))
		resp.Error.Kind = string(domainErr.Kind)
		c.JSON(dto.StatusForKind(domainErr.Kind), resp)
		return
	}

	logger.GetGinLogger(c).Error("unhandled error", zap.Error(err))
	h.InternalError(c, "An unexpected error occurred")
}

// ValidationError sends a 400 validation error response with details
func (h *BaseHandler) ValidationError(c *gin.Context, details []dto.ValidationDetail) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
		"Request validation failed",
		getRequestID(c),
		details,
	))
}

// BindJSON binds the request body into req. It writes the 400 response and
// returns false when the body is malformed, too large or fails validation.
func (h *BaseHandler) BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.bindError(c, err)
		return false
	}
	return true
}

// BindURI binds path parameters into req
func (h *BaseHandler) BindURI(c *gin.Context, req any) bool {
	if err := c.ShouldBindUri(req); err != nil {
		h.bindError(c, err)
		return false
	}
	return true
}

func (h *BaseHandler) bindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge,
			fmt.Sprintf("Request body exceeds maximum allowed size of %d bytes", tooLarge.Limit))
		return
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]dto.ValidationDetail, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, dto.ValidationDetail{
				Field:   fe.Field(),
				Message: describeFieldError(fe),
			})
		}
		h.ValidationError(c, details)
		return
	}
	h.BadRequest(c, dto.ErrCodeInvalidJSON, "Request body is not valid JSON")
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// requireUserID reads the storefront user from the X-User-ID header and
// stores it on the request context for logging. It writes a 401 and returns
// false when the header is missing.
func (h *BaseHandler) requireUserID(c *gin.Context) (string, bool) {
	userID := c.GetHeader(UserIDHeader)
	if userID == "" {
		h.Unauthorized(c, UserIDHeader+" header is required")
		return "", false
	}
	c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), userID))
	return userID, true
}
