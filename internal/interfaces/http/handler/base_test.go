package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelops/backend/internal/domain/shared"
	"github.com/hostelops/backend/internal/interfaces/http/dto"
	"github.com/hostelops/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", target, nil)
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBindFilter(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		expected shared.Filter
	}{
		{
			name:     "defaults when absent",
			target:   "/items",
			expected: shared.Filter{Page: 1, PageSize: 20, OrderBy: "created_at", OrderDir: "desc"},
		},
		{
			name:     "parses paging and search",
			target:   "/items?page=3&page_size=50&search=rent&order_by=amount&order_dir=asc",
			expected: shared.Filter{Page: 3, PageSize: 50, OrderBy: "amount", OrderDir: "asc", Search: "rent"},
		},
		{
			name:     "unparseable values fall back",
			target:   "/items?page=abc&page_size=-5",
			expected: shared.Filter{Page: 1, PageSize: 20, OrderBy: "created_at", OrderDir: "desc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testContext(tt.target)
			assert.Equal(t, tt.expected, bindFilter(c))
		})
	}
}

func TestHostelScope(t *testing.T) {
	hostelID := uuid.New()

	t.Run("nil without claim or query", func(t *testing.T) {
		c, _ := testContext("/items")
		assert.Nil(t, hostelScope(c))
	})

	t.Run("reads hostel_id query", func(t *testing.T) {
		c, _ := testContext("/items?hostel_id=" + hostelID.String())
		got := hostelScope(c)
		require.NotNil(t, got)
		assert.Equal(t, hostelID, *got)
	})

	t.Run("ignores malformed hostel_id", func(t *testing.T) {
		c, _ := testContext("/items?hostel_id=not-a-uuid")
		assert.Nil(t, hostelScope(c))
	})

	t.Run("token claim overrides query", func(t *testing.T) {
		claimed := uuid.New()
		c, _ := testContext("/items?hostel_id=" + hostelID.String())
		c.Set(middleware.JWTHostelIDKey, claimed.String())
		got := hostelScope(c)
		require.NotNil(t, got)
		assert.Equal(t, claimed, *got)
	})
}

func TestParseIDParam(t *testing.T) {
	id := uuid.New()

	c, _ := testContext("/items/" + id.String())
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	got, ok := parseIDParam(c)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	c, _ = testContext("/items/garbage")
	c.Params = gin.Params{{Key: "id", Value: "garbage"}}
	_, ok = parseIDParam(c)
	assert.False(t, ok)
}

func TestHandleError(t *testing.T) {
	h := &BaseHandler{}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        shared.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "validation error",
			err:        shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_AMOUNT",
		},
		{
			name:       "state conflict",
			err:        shared.NewDomainError("INVALID_STATE", "Booking is already cancelled"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_STATE",
		},
		{
			name:       "unexpected error is masked",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext("/items")
			h.HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestPaginated(t *testing.T) {
	h := &BaseHandler{}
	c, w := testContext("/items")

	result := shared.NewPaginated([]string{"a", "b"}, 12, 2, 5)
	Paginated(h, c, &result)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(12), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 5, resp.Meta.PageSize)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
