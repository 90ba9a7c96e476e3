package miragic

import (
	"fmt"
)

// NotFoundError — входной файл не найден локально. Сетевой запрос при этом не выполняется.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

// ValidationError — параметр операции вне документированного диапазона.
// Проверка выполняется до любого файлового и сетевого I/O.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RequestError — сервер ответил не-2xx. Сохраняем HTTP-статус и сообщение сервера.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("api error: status=%d, message=%s", e.StatusCode, e.Message)
}

// TimeoutError — раунд-трип не уложился в настроенный дедлайн.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out: %v", e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// TransportError — сбой уровня соединения (DNS/TLS/сокет) до получения HTTP-статуса.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
