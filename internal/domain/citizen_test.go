package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/census-microservice/internal/domain"
)

func TestRelativeDelta(t *testing.T) {
	tests := []struct {
		name       string
		current    []int64
		requested  []int64
		wantAdd    []int64
		wantRemove []int64
	}{
		{
			name:       "replace single relative",
			current:    []int64{2},
			requested:  []int64{3},
			wantAdd:    []int64{3},
			wantRemove: []int64{2},
		},
		{
			name:       "identical sets produce empty delta",
			current:    []int64{2, 3},
			requested:  []int64{3, 2},
			wantAdd:    nil,
			wantRemove: nil,
		},
		{
			name:       "clear all relatives",
			current:    []int64{2, 3, 4},
			requested:  nil,
			wantAdd:    nil,
			wantRemove: []int64{2, 3, 4},
		},
		{
			name:       "from empty set",
			current:    nil,
			requested:  []int64{5, 7},
			wantAdd:    []int64{5, 7},
			wantRemove: nil,
		},
		{
			name:       "duplicates in request are collapsed",
			current:    []int64{2},
			requested:  []int64{3, 3, 3},
			wantAdd:    []int64{3},
			wantRemove: []int64{2},
		},
		{
			name:       "partial overlap",
			current:    []int64{1, 2, 3},
			requested:  []int64{2, 3, 4},
			wantAdd:    []int64{4},
			wantRemove: []int64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toAdd, toRemove := domain.RelativeDelta(tt.current, tt.requested)
			assert.Equal(t, tt.wantAdd, toAdd)
			assert.Equal(t, tt.wantRemove, toRemove)
		})
	}
}

func TestCitizenUpdate_IsEmpty(t *testing.T) {
	assert.True(t, domain.CitizenUpdate{}.IsEmpty())

	name := "Ivan"
	assert.False(t, domain.CitizenUpdate{Name: &name}.IsEmpty())

	apartment := int64(0)
	assert.False(t, domain.CitizenUpdate{Apartment: &apartment}.IsEmpty())
}

func TestUnitType_Valid(t *testing.T) {
	assert.True(t, domain.UnitTypeOffer.Valid())
	assert.True(t, domain.UnitTypeCategory.Valid())
	assert.False(t, domain.UnitType("person").Valid())
	assert.False(t, domain.UnitType("").Valid())
}
