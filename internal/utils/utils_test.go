package utils

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		size       int
		start, end int
	}{
		{"FirstPage", 12, 1, 5, 0, 5},
		{"MiddlePage", 12, 2, 5, 5, 10},
		{"LastPartialPage", 12, 3, 5, 10, 12},
		{"PagePastEnd", 12, 4, 5, 12, 12},
		{"ExactFit", 10, 2, 5, 5, 10},
		{"ZeroTotal", 0, 1, 5, 0, 0},
		{"ZeroPage", 12, 0, 5, 0, 0},
		{"ZeroSize", 12, 1, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PageBounds(tt.total, tt.page, tt.size)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestUserContext(t *testing.T) {
	ctx := SetUserContext(context.Background(), 7, "admin@candyshop.vn", "admin")

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(7), id)
	assert.Equal(t, "admin@candyshop.vn", GetUserEmailFromContext(ctx))
	assert.Equal(t, "admin", GetUserRoleFromContext(ctx))

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, GetUserRoleFromContext(context.Background()))
}

func TestWriteJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSONError(rec, "voucher not found", 404)

	assert.Equal(t, 404, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"voucher not found"}`, rec.Body.String())
}

func TestToUint(t *testing.T) {
	n, err := ToUint("42")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), n)

	_, err = ToUint("abc")
	assert.Error(t, err)
}
