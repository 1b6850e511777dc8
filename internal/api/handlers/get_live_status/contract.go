package get_live_status

import (
	"context"

	"github.com/m04kA/SMC-BookingWindow/internal/service/trains/models"
)

type TrainsService interface {
	LiveStatus(ctx context.Context, trainNumber string) (*models.LiveStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
