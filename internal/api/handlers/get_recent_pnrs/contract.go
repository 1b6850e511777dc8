package get_recent_pnrs

import (
	"context"

	"github.com/m04kA/SMC-BookingWindow/internal/service/pnr/models"
)

type PNRService interface {
	ListRecent(ctx context.Context, userID int64) (*models.RecentPNRListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
