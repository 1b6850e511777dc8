package pnrcache

import "errors"

var (
	// ErrCacheMiss возвращается, когда PNR нет в кэше или срок хранения истек
	ErrCacheMiss = errors.New("pnrcache: cache miss")

	// ErrCache возвращается при ошибках Redis или сериализации
	ErrCache = errors.New("pnrcache: cache error")
)
