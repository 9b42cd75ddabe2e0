package response

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/barmaja/barmaja-be/internal/pkg/validate"
)

// Error is the wire shape for every non-2xx response.
type Error struct {
	StatusCode int `json:"-"`
	Detail     any `json:"detail"`
}

func NewError(code int, detail any) *Error {
	return &Error{
		StatusCode: code,
		Detail:     detail,
	}
}

// FromError maps an error returned by a handler or usecase to its wire
// representation. Unknown errors become an opaque 500 and are logged.
func FromError(err error, logger *logrus.Logger) *Error {
	res := &Error{
		StatusCode: fiber.StatusInternalServerError,
		Detail:     "Internal server error",
	}

	if e, ok := err.(*fiber.Error); ok {
		res.StatusCode = e.Code
		if e.Message != "" {
			res.Detail = e.Message
		}
	} else if fields, ok := err.(*validate.FieldsError); ok {
		res.StatusCode = fiber.StatusBadRequest
		res.Detail = fields.Fields
	}

	if logger != nil && res.StatusCode >= fiber.StatusInternalServerError {
		logger.Error(err)
	}

	return res
}

func (e *Error) Send(ctx *fiber.Ctx) error {
	return ctx.Status(e.StatusCode).JSON(e)
}
