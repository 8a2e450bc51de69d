package city

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("city.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("city.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("city.repository: failed to scan row")

	// ErrEmptyCatalog возвращается, когда в таблице нет ни одного города
	ErrEmptyCatalog = errors.New("city.repository: catalog is empty")
)
