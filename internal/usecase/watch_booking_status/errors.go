package watch_booking_status

import "errors"

var (
	// ErrAlreadyStarted возвращается при повторном запуске подписки
	ErrAlreadyStarted = errors.New("watcher: already started")

	// ErrStopped возвращается при запуске уже остановленной подписки
	ErrStopped = errors.New("watcher: stopped")
)
