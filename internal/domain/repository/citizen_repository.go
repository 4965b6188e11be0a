package repository

import (
	"context"

	"github.com/census-microservice/internal/domain"
)

// CitizenRepository интерфейс для работы с жителями выгрузки
type CitizenRepository interface {
	// Get возвращает жителя со скалярными полями и текущим множеством
	// родственников. Отсутствие жителя - ErrCitizenNotFound.
	Get(ctx context.Context, importID, citizenID int64) (*domain.Citizen, error)

	// ListByImport возвращает всех жителей выгрузки с их родственниками
	ListByImport(ctx context.Context, importID int64) ([]domain.Citizen, error)

	// Update применяет частичное обновление скалярных полей.
	// Пустое обновление - no-op без обращения к БД.
	Update(ctx context.Context, importID, citizenID int64, upd domain.CitizenUpdate) error

	// InsertBatch вставляет жителей выгрузки одним запросом
	InsertBatch(ctx context.Context, importID int64, citizens []domain.Citizen) error
}

// RelativeRepository интерфейс для работы с рёбрами графа родственников.
// Ребро всегда хранится парой направленных строк (a->b и b->a), обе строки
// создаются и удаляются вместе.
type RelativeRepository interface {
	// Add добавляет симметричные рёбра между citizenID и каждым из relatives.
	// Несуществующий relative в той же выгрузке - ErrUnknownRelative.
	Add(ctx context.Context, importID, citizenID int64, relatives []int64) error

	// Remove удаляет симметричные рёбра между citizenID и каждым из relatives
	Remove(ctx context.Context, importID, citizenID int64, relatives []int64) error

	// InsertBatch вставляет направленные строки при создании выгрузки.
	// pairs перечисляет направленные упоминания (unit -> relative).
	InsertBatch(ctx context.Context, importID int64, pairs []domain.RelativePair) error
}
