package utils

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetQueryParam(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		tests := []struct {
			name, query, key, want string
		}{
			{"present", "action=REVOKE", "action", "REVOKE"},
			{"absent", "", "action", "TRANSFER"},
			{"empty", "action=", "action", "TRANSFER"},
			{"escaped", "name=quarterly%20report", "name", "quarterly report"},
			{"among others", "owner=bob&action=REVOKE", "action", "REVOKE"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := httptest.NewRequest("GET", "/api/v1/history/?"+tt.query, nil)

				assert.Equal(t, tt.want, GetQueryParam(req, tt.key, "TRANSFER"))
			})
		}
	})

	t.Run("int", func(t *testing.T) {
		tests := []struct {
			name  string
			query string
			want  int
		}{
			{"present", "limit=50", 50},
			{"absent", "", 10},
			{"zero is kept", "limit=0", 0},
			{"negative falls back", "limit=-5", 10},
			{"not a number falls back", "limit=fifty", 10},
			{"empty falls back", "limit=", 10},
			{"among others", "offset=3&limit=7", 7},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := httptest.NewRequest("GET", "/api/v1/files/?"+tt.query, nil)

				assert.Equal(t, tt.want, GetQueryParam(req, "limit", 10))
			})
		}
	})
}

func TestPageParams(t *testing.T) {
	const (
		defaultLimit = 20
		maxLimit     = 100
	)

	tests := []struct {
		name       string
		query      string
		wantLimit  int32
		wantOffset int32
	}{
		{"first page by default", "", defaultLimit, 0},
		{"explicit page", "limit=5&offset=10", 5, 10},
		{"zero limit means default", "limit=0", defaultLimit, 0},
		{"limit at the cap", "limit=100", maxLimit, 0},
		{"limit over the cap", "limit=101", maxLimit, 0},
		{"negative limit", "limit=-3", defaultLimit, 0},
		{"negative offset", "offset=-1", defaultLimit, 0},
		{"garbage", "limit=ten&offset=x", defaultLimit, 0},
		{"offset at int32 bound", "offset=2147483647", defaultLimit, math.MaxInt32},
		{"offset past int32 bound", "offset=99999999999", defaultLimit, math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/admin/transfers?"+tt.query, nil)

			limit, offset := PageParams(req, defaultLimit, maxLimit)

			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
