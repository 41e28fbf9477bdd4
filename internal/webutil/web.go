package webutil

import (
	"github.com/go-playground/validator/v10"
	"github.com/villafrance/frontend/internal/errors"
	"github.com/villafrance/frontend/internal/logger"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks validate tags on a request DTO before it goes to the
// wire, so obviously-bad form input never leaves this process.
func Validate(body any) error {
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("validating request", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Required fields missing or invalid", StatusCode: 400}
	}
	return nil
}
