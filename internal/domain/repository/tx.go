package repository

import "context"

// Stores - репозитории, привязанные к одной открытой транзакции.
// Все операции через Stores видят и дополняют одну единицу работы.
type Stores interface {
	Citizens() CitizenRepository
	Relatives() RelativeRepository
	Imports() ImportRepository
}

// TxManager открывает транзакционную границу для составных операций.
// Реализация оборачивает транзакцию БД: fn выполняется внутри неё,
// commit при nil-ошибке, rollback при любой ошибке или отмене контекста.
type TxManager interface {
	// WithinImport выполняет fn в транзакции, предварительно взяв
	// эксклюзивную кооперативную секцию по ключу выгрузки
	// (pg_advisory_xact_lock). Секция отпускается автоматически при
	// завершении транзакции и сериализует конкурентные изменения графа
	// родственников внутри одной выгрузки; разные выгрузки не конкурируют.
	WithinImport(ctx context.Context, importID int64, fn func(s Stores) error) error

	// RunInTx выполняет fn в транзакции без эксклюзивной секции
	RunInTx(ctx context.Context, fn func(s Stores) error) error
}
