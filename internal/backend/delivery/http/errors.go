package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"taskboard/internal/backend"
	"taskboard/internal/model"
	pkgErrors "taskboard/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unmapped is returned as is and rendered as a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, backend.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, backend.ErrInvalidPayload):
		return pkgErrors.NewValidationError("invalid task", model.ValidationErrors{{Field: "name", Rule: "notblank"}})
	case errors.Is(err, backend.ErrEmptyComment):
		return pkgErrors.NewValidationError("invalid comment", model.ValidationErrors{{Field: "comment", Rule: "notblank"}})
	default:
		return err
	}
}

// bindError turns binding and validation failures into a 400.
func (h *handler) bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(model.ValidationErrors, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, model.FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		return pkgErrors.NewValidationError("validation failed", fields)
	}

	var fields model.ValidationErrors
	if errors.As(err, &fields) {
		return pkgErrors.NewValidationError("validation failed", fields)
	}

	return pkgErrors.NewHTTPError(http.StatusBadRequest, "malformed request body")
}
