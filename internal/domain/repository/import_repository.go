package repository

import "context"

// ImportRepository интерфейс для работы с выгрузками
type ImportRepository interface {
	// Create регистрирует новую выгрузку и возвращает её идентификатор
	Create(ctx context.Context) (int64, error)

	// Exists проверяет, что выгрузка зарегистрирована
	Exists(ctx context.Context, importID int64) (bool, error)

	// ListRecent возвращает идентификаторы последних выгрузок,
	// от новых к старым
	ListRecent(ctx context.Context, limit int) ([]int64, error)
}
