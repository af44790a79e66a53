package shared_test

import (
	"courtbook/shared"
	"courtbook/shared/constant"
	"courtbook/shared/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "upper TRUE", input: "TRUE", expected: boolPtr(true)},
		{name: "numeric 0", input: "0", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "nope", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "single item", total: 1, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
	assert.Equal(t, "limiter:curl", shared.BuildCacheKey("limiter", "", "curl"))
	assert.Equal(t, "", shared.BuildCacheKey())
}

func TestTransformFields(t *testing.T) {
	type ledgerUpdate struct {
		Status   string `db:"status"`
		Payload  []byte `db:"provider_payload"`
		Untagged string
	}

	tests := []struct {
		name     string
		data     interface{}
		expected map[string]any
	}{
		{
			name:     "status only",
			data:     ledgerUpdate{Status: "success", Untagged: "ignored"},
			expected: map[string]any{"status": "success"},
		},
		{
			name:     "all zero values",
			data:     ledgerUpdate{},
			expected: map[string]any{},
		},
		{
			name:     "status and payload",
			data:     ledgerUpdate{Status: "failed", Payload: []byte(`{"code":"01"}`)},
			expected: map[string]any{"status": "failed", "provider_payload": []byte(`{"code":"01"}`)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, "reconciler")

			assert.Equal(t, "reconciler", result[constant.FieldModifiedBy])
			assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])

			delete(result, constant.FieldModifiedBy)
			delete(result, constant.FieldModifiedAt)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("123456", "payment_ref", "payment_transactions")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "payment_ref",
				Value:    "123456",
				Operator: dto.FilterOperatorEq,
				Table:    "payment_transactions",
			},
		},
	}

	assert.Equal(t, expected, result)

	where, args := result.GetWhereClause()
	assert.Equal(t, "(payment_transactions.payment_ref = :payment_ref)", where)
	assert.Equal(t, map[string]any{"payment_ref": "123456"}, args)
}

func boolPtr(b bool) *bool {
	return &b
}
