package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"agenda/shared/constant"
	"agenda/shared/dto"
	"agenda/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	meta := model.Metadata{
		CreatedAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		ModifiedAt: time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC),
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	res := dto.Metadata{}
	res.FromModel(meta)

	assert.Equal(t, meta.CreatedAt.Format(constant.DateFormat), res.CreatedAt)
	assert.Equal(t, meta.ModifiedAt.Format(constant.DateFormat), res.ModifiedAt)
	assert.Equal(t, "creator", res.CreatedBy)
	assert.Equal(t, "modifier", res.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		applyDefaults bool
		expected      dto.QueryParams
	}{
		{
			name:     "all parameters set",
			query:    "page=2&limit=20&sort_by=name&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: "ASC"},
		},
		{
			name:          "defaults fill missing page and limit",
			query:         "",
			applyDefaults: true,
			expected:      dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults leaves zero values",
			query:    "",
			expected: dto.QueryParams{},
		},
		{
			name:          "garbage numbers are ignored",
			query:         "page=abc&limit=-5",
			applyDefaults: true,
			expected:      dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "unknown sort direction is dropped",
			query:    "page=3&sort_dir=sideways",
			expected: dto.QueryParams{Page: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/reservations?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.applyDefaults)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name   string
		filter dto.Filter
		where  string
		args   map[string]any
	}{
		{
			name:   "equality",
			filter: dto.Filter{Field: "tenant_id", Value: "t1", Operator: dto.FilterOperatorEq, Table: "reservations"},
			where:  "reservations.tenant_id = :tenant_id",
			args:   map[string]any{"tenant_id": "t1"},
		},
		{
			name:   "inequality with arg name override",
			filter: dto.Filter{ArgName: "not_state", Field: "state", Value: "CANCELLED", Operator: dto.FilterOperatorNotEq},
			where:  "state != :not_state",
			args:   map[string]any{"not_state": "CANCELLED"},
		},
		{
			name:   "range bound",
			filter: dto.Filter{Field: "date", Value: "2025-03-12", Operator: dto.FilterOperatorLessEq},
			where:  "date <= :date",
			args:   map[string]any{"date": "2025-03-12"},
		},
		{
			name:   "like is case insensitive",
			filter: dto.Filter{Field: "client_email", Value: "alice", Operator: dto.FilterOperatorLike},
			where:  "LOWER(client_email) LIKE LOWER(:client_email)",
			args:   map[string]any{"client_email": "%alice%"},
		},
		{
			name:   "in expands the slice",
			filter: dto.Filter{Field: "state", Value: []string{"BOOKED", "COMPLETED"}, Operator: dto.FilterOperatorIn},
			where:  "state IN (:state_0, :state_1)",
			args:   map[string]any{"state_0": "BOOKED", "state_1": "COMPLETED"},
		},
		{
			name:   "null check takes no args",
			filter: dto.Filter{Field: "processed_at", Operator: dto.FilterIsNull},
			where:  "processed_at IS NULL",
			args:   map[string]any{},
		},
		{
			name:   "unknown operator renders nothing",
			filter: dto.Filter{Field: "state", Operator: "between"},
			where:  "",
			args:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("combines members with the group operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "tenant_id", Value: "t1", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "staff_id", Value: "s1", Operator: dto.FilterOperatorEq},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(tenant_id = :tenant_id AND staff_id = :staff_id)", where)
		assert.Equal(t, map[string]any{"tenant_id": "t1", "staff_id": "s1"}, args)
	})

	t.Run("nested groups keep their own operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "tenant_id", Value: "t1", Operator: dto.FilterOperatorEq},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "state", Value: "BOOKED", Operator: dto.FilterOperatorEq},
						dto.Filter{ArgName: "state_alt", Field: "state", Value: "COMPLETED", Operator: dto.FilterOperatorEq},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(tenant_id = :tenant_id AND (state = :state OR state = :state_alt))", where)
		assert.Len(t, args, 3)
	})

	t.Run("empty group renders nothing", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})
}
