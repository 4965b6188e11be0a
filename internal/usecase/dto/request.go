package dto

import (
	"github.com/census-microservice/internal/domain"
)

// PatchCitizenRequest - частичное обновление жителя. Отсутствующее поле
// не трогается; пустое тело запроса - корректный no-op. Поле relatives
// задает полное новое множество родственников, дубликаты схлопываются.
type PatchCitizenRequest struct {
	Name      *string      `json:"name" validate:"omitempty,min=1,max=256"`
	Date      *domain.Date `json:"date"`
	Type      *string      `json:"type" validate:"omitempty,oneof=offer category"`
	Town      *string      `json:"town" validate:"omitempty,min=1,max=256"`
	Street    *string      `json:"street" validate:"omitempty,min=1,max=256"`
	Building  *string      `json:"building" validate:"omitempty,min=1,max=256"`
	Apartment *int64       `json:"apartment" validate:"omitempty,gte=0"`
	Relatives *[]int64     `json:"relatives" validate:"omitempty,dive,gte=0"`
}

// ToUpdate конвертирует запрос в частичное обновление скалярных полей
// (relatives согласовывается отдельным шагом)
func (r *PatchCitizenRequest) ToUpdate() domain.CitizenUpdate {
	upd := domain.CitizenUpdate{
		Name:      r.Name,
		Date:      r.Date,
		Town:      r.Town,
		Street:    r.Street,
		Building:  r.Building,
		Apartment: r.Apartment,
	}
	if r.Type != nil {
		t := domain.UnitType(*r.Type)
		upd.Type = &t
	}
	return upd
}

// ImportCitizen - житель в запросе на создание выгрузки, все поля обязательны
type ImportCitizen struct {
	UnitID    int64       `json:"unit_id" validate:"gte=0"`
	Name      string      `json:"name" validate:"required,min=1,max=256"`
	Date      domain.Date `json:"date" validate:"required"`
	Type      string      `json:"type" validate:"required,oneof=offer category"`
	Town      string      `json:"town" validate:"required,min=1,max=256"`
	Street    string      `json:"street" validate:"required,min=1,max=256"`
	Building  string      `json:"building" validate:"required,min=1,max=256"`
	Apartment int64       `json:"apartment" validate:"gte=0"`
	Relatives []int64     `json:"relatives" validate:"dive,gte=0"`
}

// ToDomain конвертирует жителя запроса в доменную модель
func (c ImportCitizen) ToDomain() domain.Citizen {
	return domain.Citizen{
		UnitID:    c.UnitID,
		Name:      c.Name,
		Date:      c.Date,
		Type:      domain.UnitType(c.Type),
		Town:      c.Town,
		Street:    c.Street,
		Building:  c.Building,
		Apartment: c.Apartment,
		Relatives: c.Relatives,
	}
}

// CreateImportRequest - запрос на массовую загрузку выгрузки
type CreateImportRequest struct {
	Citizens []ImportCitizen `json:"citizens" validate:"required,max=10000,dive"`
}
