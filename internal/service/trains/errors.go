package trains

import "errors"

var (
	// ErrInvalidStation возвращается при некорректном коде станции
	ErrInvalidStation = errors.New("invalid station code")

	// ErrSameStation возвращается, когда станции отправления и назначения совпадают
	ErrSameStation = errors.New("origin and destination are the same")

	// ErrInvalidDate возвращается, когда дата поездки не указана
	ErrInvalidDate = errors.New("invalid journey date")

	// ErrInvalidTrainNumber возвращается, если номер поезда не состоит из 5 цифр
	ErrInvalidTrainNumber = errors.New("invalid train number")

	// ErrNotFound возвращается, когда провайдер не нашел данных
	ErrNotFound = errors.New("trains not found")

	// ErrProviderUnavailable возвращается, когда провайдер ж/д данных не отвечает
	ErrProviderUnavailable = errors.New("railway provider unavailable")
)
