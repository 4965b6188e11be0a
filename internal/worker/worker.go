package worker

import (
	"context"
)

// Worker - фоновая задача сервиса с собственным жизненным циклом
type Worker interface {
	// Start запускает воркер и блокируется до остановки
	Start(ctx context.Context) error

	// Stop останавливает воркер
	Stop() error

	// Name возвращает имя воркера
	Name() string
}
