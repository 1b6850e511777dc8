package search_trains

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingWindow/internal/service/trains/models"
)

type TrainsService interface {
	Search(ctx context.Context, from, to string, date time.Time) (*models.SearchResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
