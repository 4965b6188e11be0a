package domain

// TownAgeStat - перцентили возраста жителей по одному городу выгрузки.
// Возраст считается в полных годах от даты регистрации до текущего момента
// (UTC), перцентили интерполируются percentile_cont и округляются до двух
// знаков после запятой.
type TownAgeStat struct {
	Town string  `json:"town" db:"town"`
	P50  float64 `json:"p50" db:"p50"`
	P75  float64 `json:"p75" db:"p75"`
	P99  float64 `json:"p99" db:"p99"`
}
