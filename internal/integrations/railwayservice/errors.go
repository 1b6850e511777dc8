package railwayservice

import "errors"

var (
	// ErrNotFound возвращается, когда провайдер не нашел запись (PNR, поезд)
	ErrNotFound = errors.New("railwayservice client: not found")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут)
	ErrInternal = errors.New("railwayservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("railwayservice client: invalid response")
)
