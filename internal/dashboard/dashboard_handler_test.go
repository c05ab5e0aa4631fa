package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	overviewFn    func(ctx context.Context) (dashboard.OverviewResponse, error)
	allRequestsFn func(ctx context.Context) ([]dashboard.TaggedRequest, error)
	userCountsFn  func(ctx context.Context, email string) (dashboard.UserCountsResponse, error)
}

func (f *fakeService) Overview(ctx context.Context) (dashboard.OverviewResponse, error) {
	if f.overviewFn != nil {
		return f.overviewFn(ctx)
	}
	return dashboard.OverviewResponse{}, nil
}

func (f *fakeService) AllRequests(ctx context.Context) ([]dashboard.TaggedRequest, error) {
	if f.allRequestsFn != nil {
		return f.allRequestsFn(ctx)
	}
	return nil, nil
}

func (f *fakeService) UserCounts(ctx context.Context, email string) (dashboard.UserCountsResponse, error) {
	if f.userCountsFn != nil {
		return f.userCountsFn(ctx, email)
	}
	return dashboard.UserCountsResponse{}, nil
}

type overviewEnvelope struct {
	Ok   bool                       `json:"ok"`
	Data dashboard.OverviewResponse `json:"data"`
}

func newTestContext(t *testing.T, method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, w
}

func TestDashboardHandler_Overview(t *testing.T) {
	sample := dashboard.OverviewResponse{
		InternshipCount: 4,
		IDCount:         2,
		LeaveCount:      3,
		HackathonCount:  1,
		ApprovedCount:   4,
		RejectedCount:   2,
		PendingCount:    4,
	}
	payload, err := json.Marshal(sample)
	assert.NoError(t, err)

	t.Run("cache miss computes and writes back", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("dashboard:overview:v1").RedisNil()
		mock.ExpectSet("dashboard:overview:v1", payload, 30*time.Second).SetVal("OK")

		svc := &fakeService{
			overviewFn: func(ctx context.Context) (dashboard.OverviewResponse, error) {
				return sample, nil
			},
		}
		h := dashboard.NewHandlerWithRedis(svc, rdb)

		c, w := newTestContext(t, http.MethodGet, "/api/v1/dashboard/overview")
		h.Overview(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var env overviewEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, sample, env.Data)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache hit never touches the service", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("dashboard:overview:v1").SetVal(string(payload))

		svc := &fakeService{
			overviewFn: func(ctx context.Context) (dashboard.OverviewResponse, error) {
				t.Fatal("service should not be called on a cache hit")
				return dashboard.OverviewResponse{}, nil
			},
		}
		h := dashboard.NewHandlerWithRedis(svc, rdb)

		c, w := newTestContext(t, http.MethodGet, "/api/v1/dashboard/overview")
		h.Overview(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var env overviewEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, sample, env.Data)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache write failure still serves the overview", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("dashboard:overview:v1").RedisNil()
		mock.ExpectSet("dashboard:overview:v1", payload, 30*time.Second).SetErr(errors.New("redis down"))

		svc := &fakeService{
			overviewFn: func(ctx context.Context) (dashboard.OverviewResponse, error) {
				return sample, nil
			},
		}
		h := dashboard.NewHandlerWithRedis(svc, rdb)

		c, w := newTestContext(t, http.MethodGet, "/api/v1/dashboard/overview")
		h.Overview(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without redis the service is hit directly", func(t *testing.T) {
		svc := &fakeService{
			overviewFn: func(ctx context.Context) (dashboard.OverviewResponse, error) {
				return sample, nil
			},
		}
		h := dashboard.NewHandler(svc)

		c, w := newTestContext(t, http.MethodGet, "/api/v1/dashboard/overview")
		h.Overview(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("service failure maps to 500", func(t *testing.T) {
		svc := &fakeService{
			overviewFn: func(ctx context.Context) (dashboard.OverviewResponse, error) {
				return dashboard.OverviewResponse{}, errors.New("boom")
			},
		}
		h := dashboard.NewHandler(svc)

		c, w := newTestContext(t, http.MethodGet, "/api/v1/dashboard/overview")
		h.Overview(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDashboardHandler_UserCounts(t *testing.T) {
	t.Run("email comes from the authenticated context", func(t *testing.T) {
		svc := &fakeService{
			userCountsFn: func(ctx context.Context, email string) (dashboard.UserCountsResponse, error) {
				assert.Equal(t, "asha@example.com", email)
				return dashboard.UserCountsResponse{Pending: 1, Total: 1}, nil
			},
		}
		h := dashboard.NewHandler(svc)

		c, w := newTestContext(t, http.MethodGet, "/api/v1/user/request-counts")
		c.Set("email", "asha@example.com")
		h.UserCounts(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var env struct {
			Ok   bool                         `json:"ok"`
			Data dashboard.UserCountsResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, int64(1), env.Data.Total)
	})
}
