package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"insight-srv/internal/appstate"
	"insight-srv/internal/middleware"
	"insight-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/m-mizutani/gt"
)

func newTestRouter(store appstate.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(log.NewNop(), store).RegisterRoutes(&r.RouterGroup, middleware.New(log.NewNop()))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStateRoutes(t *testing.T) {
	store := appstate.New(appstate.Config{})
	r := newTestRouter(store)

	t.Run("get", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/state", "")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.S(t, w.Body.String()).Contains(`"selectedBrand":"TechStart Inc"`)
	})

	t.Run("select brand", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/state/brand", `{"brand":"Acme Corporation"}`)
		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, store.Snapshot().SelectedBrand, "Acme Corporation")

		w = do(r, http.MethodPost, "/api/v1/state/brand", `{}`)
		gt.Equal(t, w.Code, http.StatusBadRequest)
	})

	t.Run("alert count", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/state/alert-count", `{"count":0}`)
		gt.Equal(t, w.Code, http.StatusOK)
		gt.Equal(t, store.Snapshot().AlertCount, 0)

		w = do(r, http.MethodPost, "/api/v1/state/alert-count", `{"count":-2}`)
		gt.Equal(t, w.Code, http.StatusBadRequest)
	})

	t.Run("toggles", func(t *testing.T) {
		gt.Equal(t, do(r, http.MethodPost, "/api/v1/state/sidebar/toggle", "").Code, http.StatusOK)
		gt.Equal(t, do(r, http.MethodPost, "/api/v1/state/realtime/toggle", "").Code, http.StatusOK)
		gt.Equal(t, do(r, http.MethodPost, "/api/v1/state/tour/seen", "").Code, http.StatusOK)

		st := store.Snapshot()
		gt.True(t, st.SidebarCollapsed)
		gt.False(t, st.RealTimeEnabled)
		gt.True(t, st.HasSeenTour)
	})

	t.Run("comparison", func(t *testing.T) {
		for _, id := range []string{"a", "b", "c"} {
			w := do(r, http.MethodPost, "/api/v1/state/comparison", `{"influencer":{"id":"`+id+`"}}`)
			gt.Equal(t, w.Code, http.StatusOK)
		}

		w := do(r, http.MethodPost, "/api/v1/state/comparison", `{"influencer":{"id":"d"}}`)
		gt.Equal(t, w.Code, http.StatusConflict)
		gt.S(t, w.Body.String()).Contains("You can only compare up to 3 influencers at a time")

		gt.Equal(t, do(r, http.MethodDelete, "/api/v1/state/comparison/b", "").Code, http.StatusOK)
		gt.Equal(t, do(r, http.MethodDelete, "/api/v1/state/comparison/b", "").Code, http.StatusNotFound)
		gt.Equal(t, do(r, http.MethodPost, "/api/v1/state/comparison/clear", "").Code, http.StatusOK)
		gt.Equal(t, len(store.Snapshot().Comparison), 0)
	})
}
