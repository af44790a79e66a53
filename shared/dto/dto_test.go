package dto_test

import (
	"courtbook/shared/constant"
	"courtbook/shared/dto"
	"courtbook/shared/model"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "checkout",
		ModifiedBy: "reconciler",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), mustReparse(t, metadata.CreatedAt))
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), mustReparse(t, metadata.ModifiedAt))
	assert.Equal(t, "checkout", metadata.CreatedBy)
	assert.Equal(t, "reconciler", metadata.ModifiedBy)
}

// mustReparse normalises a formatted timestamp to UTC so the assertion is independent of the app timezone.
func mustReparse(t *testing.T, value string) string {
	t.Helper()

	parsed, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		t.Fatalf("failed to parse %s: %v", value, err)
	}

	return parsed.UTC().Format(constant.DateFormat)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:        "with all valid parameters",
			queryParams: map[string]string{"page": "2", "limit": "20", "sort_by": "rating", "sort_dir": "asc"},
			expected:    dto.QueryParams{Page: 2, Limit: 20, SortBy: "rating", SortDir: "ASC"},
		},
		{
			name:           "defaults when nothing is given",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "no defaults when disabled",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name:           "invalid page falls back",
			queryParams:    map[string]string{"page": "invalid"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "negative limit falls back",
			queryParams:    map[string]string{"limit": "-10"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "limit is capped",
			queryParams:    map[string]string{"limit": "1000"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: dto.MaxLimit},
		},
		{
			name:        "unknown sort direction is ignored",
			queryParams: map[string]string{"sort_dir": "sideways"},
			expected:    dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := url.Values{}
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}

			req := httptest.NewRequest("GET", "/v1/venues?"+query.Encode(), nil)

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, *queryParams)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		group         dto.FilterGroup
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name:          "empty group",
			group:         dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
		{
			name: "and of eq filters",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "booking_id", Value: "b-1", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
				},
			},
			expectedWhere: "(booking_id = :booking_id AND status = :status)",
			expectedArgs:  map[string]any{"booking_id": "b-1", "status": "pending"},
		},
		{
			name: "in filter expands slice",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "status", Value: []string{"success", "failed"}, Operator: dto.FilterOperatorIn},
				},
			},
			expectedWhere: "(status IN (:status_0, :status_1))",
			expectedArgs:  map[string]any{"status_0": "success", "status_1": "failed"},
		},
		{
			name: "nested group with table",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.FilterGroup{
						Operator: dto.FilterGroupOperatorOr,
						Filters: []any{
							dto.Filter{Field: "amount", Value: 100, Operator: dto.FilterOperatorGreaterEq, Table: "p"},
						},
					},
					dto.Filter{Field: "deleted_at", Operator: dto.FilterIsNull},
				},
			},
			expectedWhere: "((p.amount >= :amount) AND deleted_at IS NULL)",
			expectedArgs:  map[string]any{"amount": 100},
		},
		{
			name: "arg name keeps repeated columns apart",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "amount", ArgName: "min_amount", Value: 1000, Operator: dto.FilterOperatorGreaterEq},
					dto.Filter{Field: "amount", ArgName: "max_amount", Value: 5000, Operator: dto.FilterOperatorLessEq},
					dto.Filter{Field: "status", Value: "failed", Operator: dto.FilterOperatorNotEq},
				},
			},
			expectedWhere: "(amount >= :min_amount AND amount <= :max_amount AND status != :status)",
			expectedArgs:  map[string]any{"min_amount": 1000, "max_amount": 5000, "status": "failed"},
		},
		{
			name: "unknown operator is skipped",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "status", Value: "x", Operator: "regex"},
					dto.Filter{Field: "booking_id", Value: "b-1", Operator: dto.FilterOperatorEq},
				},
			},
			expectedWhere: "(booking_id = :booking_id)",
			expectedArgs:  map[string]any{"booking_id": "b-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.expectedWhere, where)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}
