package clear_recent_pnrs

import "context"

type PNRService interface {
	ClearRecent(ctx context.Context, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
