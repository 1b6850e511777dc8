package recentpnr

import "errors"

var (
	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("recentpnr.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("recentpnr.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("recentpnr.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("recentpnr.repository: failed to scan row")
)
