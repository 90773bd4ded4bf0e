package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mesa/shared"
	"mesa/shared/dto"
)

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "date", SortDir: "asc"}
	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "date", Value: "2025-06-01", Operator: dto.FilterOperatorEq, Table: "reservations"},
			dto.Filter{Field: "status", Value: "active", Operator: dto.FilterOperatorEq, Table: "reservations"},
		},
	}

	key := shared.BuildCacheKeyWithQuery("reservation:gets", params, filter)

	assert.Contains(t, key, "date=2025-06-01")
	assert.Contains(t, key, "status=active")

	for range 32 {
		assert.Equal(t, key, shared.BuildCacheKeyWithQuery("reservation:gets", params, filter))
	}
}

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(10, 0))
	assert.Equal(t, 2, shared.CalculateTotalPage(11, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(10, 10))
}
