package get_booking_status

import (
	"fmt"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Отсутствие даты поездки отсекается здесь, калькулятор его не обрабатывает.
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.JourneyDate.IsZero() {
		return fmt.Errorf("%w: journey date is required", ErrInvalidInput)
	}

	switch req.Quota {
	case domain.QuotaGeneral, domain.QuotaTatkal:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidQuota, req.Quota)
	}
}
