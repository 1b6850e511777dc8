package trains

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
)

// RailwayClient интерфейс клиента провайдера ж/д данных
type RailwayClient interface {
	SearchTrains(ctx context.Context, from, to string, date time.Time) ([]domain.Train, error)
	GetLiveTrainStatus(ctx context.Context, trainNumber string) (*domain.LiveTrainStatus, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
