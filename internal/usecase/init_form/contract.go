package init_form

// CityCatalog интерфейс каталога городов
type CityCatalog interface {
	Contains(value string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
