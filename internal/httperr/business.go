package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Business error codes shared between usecases and handlers.
const (
	CodeValidation         = "validation_failed"
	CodeNotFound           = "appointment_not_found"
	CodeDoubleBooking      = "double_booking"
	CodeDoubleBookingRaced = "double_booking_constraint"
	CodeInvalidState       = "invalid_state"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsUniqueConflict reports whether err is a store-level uniqueness
// violation. Both the gorm-translated sentinel and the raw postgres
// error code are checked since TranslateError does not cover every path.
func IsUniqueConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
