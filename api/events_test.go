package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEvents(t *testing.T) {
	t.Run("lists the catalog in start order", func(t *testing.T) {
		h := newTestHandler(t, newTestDeps())

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events", nil))

		require.Equal(t, http.StatusOK, w.Code)
		got := decodeResponse[[]Event](t, w)
		require.Len(t, got, 3)
		for i := 1; i < len(got); i++ {
			assert.False(t, got[i].StartTime.Before(got[i-1].StartTime))
		}
	})
}

func TestGetEventsId(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h := newTestHandler(t, newTestDeps())

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/ceo", nil))

		require.Equal(t, http.StatusOK, w.Code)
		got := decodeResponse[Event](t, w)
		assert.Equal(t, "ceo", got.Id)
		assert.Equal(t, "CEO Roundtable: Lead the Business, Scale to Legacy", got.Title)
		assert.Equal(t, "September 9, 2025", got.Date)
		assert.Equal(t, "9:00 AM - 3:00 PM", got.Time)
		assert.Equal(t, 2500.0, got.Price)
		assert.Equal(t, "GHS", got.Currency)
		assert.Equal(t, "Accra City Hotel", got.Location.Name)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		a := newTestAPI(t, newTestDeps())

		resp, err := a.GetEventsId(context.Background(), GetEventsIdRequestObject{Id: "gala"})

		require.NoError(t, err)
		require.IsType(t, GetEventsId404JSONResponse{}, resp)
		assert.Equal(t, NotFound, resp.(GetEventsId404JSONResponse).Code)
	})

	t.Run("not found", func(t *testing.T) {
		h := newTestHandler(t, newTestDeps())

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/gala", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, NotFound, decodeResponse[Error](t, w).Code)
	})
}

func TestGetHealthz(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		h := newTestHandler(t, newTestDeps())

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("store unreachable", func(t *testing.T) {
		deps := newTestDeps()
		deps.db.PingFunc = func(ctx context.Context) error {
			return errors.New("table is CREATING")
		}
		h := newTestHandler(t, deps)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
