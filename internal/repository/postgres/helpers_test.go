package postgres_test

import (
	"time"

	"github.com/census-microservice/internal/domain"
)

func mustDate(s string) time.Time {
	t, err := time.ParseInLocation(domain.DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}
