// Package common holds the response envelope, problem details and request
// binding shared by every webapi handler package.
package common

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// ContentTypeProblemJSON is the media type of every error body.
const ContentTypeProblemJSON = "application/problem+json"

// ErrorResponseJSON writes a ProblemDetails body with the given status.
// A string detail fills Detail; anything else is placed under Errors.
func ErrorResponseJSON(
	c *fiber.Ctx,
	status int,
	title string,
	detail any,
) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	pd.Instance = c.OriginalURL()
	return c.Status(status).JSON(pd, ContentTypeProblemJSON)
}

// ProblemDetailsJSON writes err as ProblemDetails. The status comes from
// ErrorToStatusCode unless an int is passed in opts; a string in opts
// replaces the error text as the detail.
func ProblemDetailsJSON(
	c *fiber.Ctx,
	title string,
	err error,
	opts ...any,
) error {
	status := ErrorToStatusCode(err)
	var detail string
	if err != nil {
		detail = err.Error()
	}
	for _, opt := range opts {
		switch v := opt.(type) {
		case int:
			status = v
		case string:
			detail = v
		}
	}
	if status >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %s: %v", c.Method(), c.OriginalURL(), title, err)
		if len(opts) == 0 {
			detail = "internal server error"
		}
	}
	return ErrorResponseJSON(c, status, title, detail)
}

// SuccessResponseJSON writes data wrapped in the Response envelope.
func SuccessResponseJSON(
	c *fiber.Ctx,
	status int,
	message string,
	data any,
) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ErrorToStatusCode maps an error to its HTTP status through its domain outcome.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	switch domain.Classify(err) {
	case domain.OutcomeOK:
		return fiber.StatusOK
	case domain.OutcomeNotFound:
		return fiber.StatusNotFound
	case domain.OutcomeSameAccount,
		domain.OutcomeInsufficientFunds,
		domain.OutcomeInvalidInput:
		return fiber.StatusBadRequest
	case domain.OutcomeConflict:
		return fiber.StatusConflict
	case domain.OutcomeUnauthorized:
		return fiber.StatusUnauthorized
	case domain.OutcomeForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}
