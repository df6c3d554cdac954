package errs

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Database classifies a storage failure into the API error taxonomy.
//
// Classification is keyed on gorm's translated sentinel errors (the dialector
// maps driver-specific SQLSTATE / constraint failures onto them when
// TranslateError is enabled), never on the human-readable message text.
func Database(operation, entity string, cause error) *ApiErr {
	switch {
	case errors.Is(cause, gorm.ErrRecordNotFound):
		return &ApiErr{
			StatusCode: 404,
			Code:       CodeNotFound,
			err:        fmt.Errorf("%s not found", entity),
			kind:       ErrNotFound,
			Cause:      cause,
		}
	case errors.Is(cause, gorm.ErrDuplicatedKey):
		return &ApiErr{
			StatusCode: 409,
			Code:       CodeConflict,
			err:        fmt.Errorf("%s already exists", entity),
			kind:       ErrConflict,
			Cause:      cause,
		}
	case errors.Is(cause, gorm.ErrForeignKeyViolated):
		return &ApiErr{
			StatusCode: 400,
			Code:       CodeValidation,
			err:        fmt.Errorf("invalid reference in %s", entity),
			kind:       ErrValidation,
			Cause:      cause,
		}
	case errors.Is(cause, gorm.ErrInvalidData), errors.Is(cause, gorm.ErrInvalidValue):
		return &ApiErr{
			StatusCode: 400,
			Code:       CodeValidation,
			err:        fmt.Errorf("invalid data for %s", entity),
			kind:       ErrValidation,
			Cause:      cause,
		}
	}

	// Anything unclassified is a server fault; the raw cause stays
	// server-side and never reaches the client.
	return &ApiErr{
		StatusCode: 500,
		Code:       CodeInternal,
		err:        fmt.Errorf("failed to %s %s", operation, entity),
		kind:       ErrInternal,
		Cause:      cause,
	}
}
