package pnr

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
)

// RailwayClient интерфейс клиента провайдера ж/д данных
type RailwayClient interface {
	GetPNRStatus(ctx context.Context, pnr string) (*domain.PNRStatus, error)
}

// Cache интерфейс кэша статусов PNR
type Cache interface {
	Get(ctx context.Context, pnr string) (*domain.PNRStatus, error)
	Set(ctx context.Context, status *domain.PNRStatus) error
}

// RecentRepository интерфейс репозитория недавних PNR
type RecentRepository interface {
	Add(ctx context.Context, userID int64, pnr string, viewedAt time.Time) error
	List(ctx context.Context, userID int64) ([]domain.RecentPNR, error)
	Clear(ctx context.Context, userID int64) error
}

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Metrics интерфейс для учета обращений к кэшу
type Metrics interface {
	ObserveCacheLookup(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
