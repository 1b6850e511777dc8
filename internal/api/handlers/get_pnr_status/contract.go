package get_pnr_status

import (
	"context"

	"github.com/m04kA/SMC-BookingWindow/internal/service/pnr/models"
)

type PNRService interface {
	GetStatus(ctx context.Context, userID int64, pnr string) (*models.PNRStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
