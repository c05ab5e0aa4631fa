package bulkselect_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/bulkselect"
	bulkerrors "github.com/vinodkumarpeddi/RequestHub-Backend/internal/bulkselect/errors"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/request"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSelector struct {
	selectFn func(ctx context.Context, kind request.Kind, daysAhead int) ([]string, error)
}

func (f *fakeSelector) SelectForDecision(ctx context.Context, kind request.Kind, daysAhead int) ([]string, error) {
	if f.selectFn != nil {
		return f.selectFn(ctx, kind, daysAhead)
	}
	return nil, nil
}

func doSelect(t *testing.T, svc bulkselect.Service, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/bulk-select", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	bulkselect.NewHandler(svc).Select(c)
	return w
}

func TestBulkHandler_Select(t *testing.T) {
	t.Run("returns the matched ids with a count", func(t *testing.T) {
		svc := &fakeSelector{
			selectFn: func(ctx context.Context, kind request.Kind, daysAhead int) ([]string, error) {
				assert.Equal(t, request.KindLeave, kind)
				assert.Equal(t, 5, daysAhead)
				return []string{"a", "b"}, nil
			},
		}

		w := doSelect(t, svc, `{"type":"leave","days_ahead":5}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var env struct {
			Ok   bool                      `json:"ok"`
			Data bulkselect.SelectResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, 2, env.Data.Count)
		assert.Equal(t, []string{"a", "b"}, env.Data.IDs)
	})

	t.Run("unknown type maps to 400 before the service", func(t *testing.T) {
		called := false
		svc := &fakeSelector{
			selectFn: func(ctx context.Context, kind request.Kind, daysAhead int) ([]string, error) {
				called = true
				return nil, nil
			},
		}

		w := doSelect(t, svc, `{"type":"certificate","days_ahead":5}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})

	t.Run("missing fields fail binding", func(t *testing.T) {
		w := doSelect(t, &fakeSelector{}, `{"type":"leave"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service validation errors pass through", func(t *testing.T) {
		svc := &fakeSelector{
			selectFn: func(ctx context.Context, kind request.Kind, daysAhead int) ([]string, error) {
				return nil, bulkerrors.ErrInvalidDaysAhead
			},
		}

		w := doSelect(t, svc, `{"type":"leave","days_ahead":-2}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
