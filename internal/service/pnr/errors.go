package pnr

import "errors"

var (
	// ErrInvalidPNR возвращается, если PNR не состоит ровно из 10 цифр
	ErrInvalidPNR = errors.New("invalid PNR number")

	// ErrPNRNotFound возвращается, когда провайдер не знает такой PNR
	ErrPNRNotFound = errors.New("PNR not found")

	// ErrProviderUnavailable возвращается, когда провайдер ж/д данных не отвечает
	ErrProviderUnavailable = errors.New("railway provider unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
