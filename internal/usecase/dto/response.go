package dto

// CreateImportResponse - идентификатор созданной выгрузки
type CreateImportResponse struct {
	ImportID int64 `json:"import_id"`
}
