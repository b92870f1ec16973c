// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to HTTP problems and per-result error categories

package handlers

import (
	"context"
	stderrors "errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/MyGet/PackageSourceDiscovery/core/errors"
)

// Error categories reported on failed discovery results
const (
	ErrorTypeValidation = "validation"
	ErrorTypeMalformed  = "malformed_document"
	ErrorTypeMaxDepth   = "max_depth_exceeded"
	ErrorTypeExternal   = "external_api"
	ErrorTypeCanceled   = "canceled"
	ErrorTypeTransport  = "transport"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsMalformedDocument(err) || errors.IsMaxDepthExceeded(err) {
		return huma.Error422UnprocessableEntity(err.Error())
	}

	var apiErr *errors.ExternalAPIError
	if stderrors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable("External service error", err)
		case apiErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by external service")
		case apiErr.StatusCode >= 400:
			return huma.Error400BadRequest("External service request error", err)
		default:
			return huma.Error500InternalServerError("Unexpected external service response", err)
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}

// errorType classifies a failed seed for API clients
func errorType(err error) string {
	switch {
	case errors.IsValidation(err):
		return ErrorTypeValidation
	case errors.IsMalformedDocument(err):
		return ErrorTypeMalformed
	case errors.IsMaxDepthExceeded(err):
		return ErrorTypeMaxDepth
	case errors.IsExternalAPI(err):
		return ErrorTypeExternal
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return ErrorTypeCanceled
	default:
		return ErrorTypeTransport
	}
}
