package get_booking_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidQuota возвращается при неизвестной квоте
	ErrInvalidQuota = errors.New("invalid quota")
)
