package domain

import "sort"

// UnitType - тип жителя в выгрузке
type UnitType string

const (
	UnitTypeOffer    UnitType = "offer"
	UnitTypeCategory UnitType = "category"
)

// Valid проверяет, что значение входит в перечисление
func (t UnitType) Valid() bool {
	return t == UnitTypeOffer || t == UnitTypeCategory
}

// Citizen - житель выгрузки. Уникален в пределах выгрузки по unit_id.
// Relatives хранится отдельно (таблица relations) и собирается при чтении,
// порядок идентификаторов не несёт смысла.
type Citizen struct {
	UnitID    int64    `json:"unit_id" db:"unit_id"`
	Name      string   `json:"name" db:"name"`
	Date      Date     `json:"date" db:"date"`
	Type      UnitType `json:"type" db:"type"`
	Town      string   `json:"town" db:"town"`
	Street    string   `json:"street" db:"street"`
	Building  string   `json:"building" db:"building"`
	Apartment int64    `json:"apartment" db:"apartment"`
	Relatives []int64  `json:"relatives" db:"-"`
}

// CitizenUpdate - частичное обновление скалярных полей жителя.
// nil-поле означает "не трогать". Список родственников сюда не входит,
// он согласовывается отдельным шагом.
type CitizenUpdate struct {
	Name      *string
	Date      *Date
	Type      *UnitType
	Town      *string
	Street    *string
	Building  *string
	Apartment *int64
}

// IsEmpty сообщает, что обновлять нечего и запрос к БД не нужен
func (u CitizenUpdate) IsEmpty() bool {
	return u.Name == nil && u.Date == nil && u.Type == nil &&
		u.Town == nil && u.Street == nil && u.Building == nil && u.Apartment == nil
}

// RelativePair - направленное упоминание родственника (unit -> relative),
// используется при массовой загрузке выгрузки
type RelativePair struct {
	UnitID     int64
	RelativeID int64
}

// RelativeDelta вычисляет разницу между текущим и запрошенным множествами
// родственников: toAdd = requested \ current, toRemove = current \ requested.
// Дубликаты схлопываются, результат отсортирован для детерминизма.
func RelativeDelta(current, requested []int64) (toAdd, toRemove []int64) {
	cur := make(map[int64]struct{}, len(current))
	for _, id := range current {
		cur[id] = struct{}{}
	}
	req := make(map[int64]struct{}, len(requested))
	for _, id := range requested {
		req[id] = struct{}{}
	}

	for id := range req {
		if _, ok := cur[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	for id := range cur {
		if _, ok := req[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}

	sort.Slice(toAdd, func(i, j int) bool { return toAdd[i] < toAdd[j] })
	sort.Slice(toRemove, func(i, j int) bool { return toRemove[i] < toRemove[j] })
	return toAdd, toRemove
}
