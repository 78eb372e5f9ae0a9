package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamCoSaIn/trilo-be-sub001/internal/planner"
	"github.com/teamCoSaIn/trilo-be-sub001/internal/repository"
)

var secret = []byte("routes-test")

type client struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newClient(t *testing.T, userID uint) *client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	p, err := planner.New(repository.NewMemoryStore(), planner.Config{MaxTripSchedules: 20})
	require.NoError(t, err)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": userID}).SignedString(secret)
	require.NoError(t, err)
	return &client{t: t, router: SetupRouter(p, secret), token: tok}
}

func (c *client) do(method, path string, body any) (int, map[string]any) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func id(v any) uint {
	return uint(v.(float64))
}

func TestHealthAndMetrics(t *testing.T) {
	c := newClient(t, 1)
	c.token = ""

	code, body := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTrips_RequireToken(t *testing.T) {
	c := newClient(t, 1)
	c.token = ""
	code, _ := c.do(http.MethodGet, "/trips", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestPlannerFlow(t *testing.T) {
	c := newClient(t, 9)

	code, body := c.do(http.MethodPost, "/trips", map[string]any{"title": "Tokyo"})
	require.Equal(t, http.StatusCreated, code)
	tripID := id(body["trip"].(map[string]any)["id"])

	code, body = c.do(http.MethodPut, fmt.Sprintf("/trips/%d/period", tripID), map[string]any{
		"start_date": "2024-03-01", "end_date": "2024-03-02",
	})
	require.Equal(t, http.StatusOK, code)
	trip := body["trip"].(map[string]any)
	assert.Equal(t, "DECIDED", trip["status"])
	days := trip["days"].([]any)
	require.Len(t, days, 2)
	dayID := id(days[0].(map[string]any)["id"])

	var scheduleIDs []uint
	for _, title := range []string{"a", "b", "c"} {
		code, body = c.do(http.MethodPost, fmt.Sprintf("/trips/%d/schedules", tripID), map[string]any{
			"title":  title,
			"day_id": dayID,
			"place":  map[string]any{"id": "p", "name": "Shibuya", "latitude": 35.6595, "longitude": 139.7005},
		})
		require.Equal(t, http.StatusCreated, code, body)
		s := body["schedule"].(map[string]any)
		assert.Contains(t, s["geometry"], "Point")
		scheduleIDs = append(scheduleIDs, id(s["id"]))
	}

	code, body = c.do(http.MethodPut, fmt.Sprintf("/schedules/%d/position", scheduleIDs[2]), map[string]any{
		"target_day_id": dayID, "target_order": 0,
	})
	require.Equal(t, http.StatusOK, code, body)
	move := body["move"].(map[string]any)
	assert.Equal(t, "head", move["transition"])
	assert.Equal(t, true, move["position_changed"])

	code, body = c.do(http.MethodPut, fmt.Sprintf("/schedules/%d/position", scheduleIDs[0]), map[string]any{
		"target_day_id": dayID, "target_order": 9,
	})
	assert.Equal(t, http.StatusBadRequest, code, body)

	code, body = c.do(http.MethodPut, fmt.Sprintf("/schedules/%d/position", scheduleIDs[0]), map[string]any{
		"target_order": 0,
	})
	require.Equal(t, http.StatusOK, code, body)
	assert.Nil(t, body["move"].(map[string]any)["to_day_id"])

	code, body = c.do(http.MethodGet, fmt.Sprintf("/trips/%d", tripID), nil)
	require.Equal(t, http.StatusOK, code)
	trip = body["trip"].(map[string]any)
	first := trip["days"].([]any)[0].(map[string]any)["schedules"].([]any)
	require.Len(t, first, 2)
	assert.Equal(t, "c", first[0].(map[string]any)["title"])
	assert.Equal(t, "b", first[1].(map[string]any)["title"])
	require.Len(t, trip["temporary_storage"].([]any), 1)

	code, _ = c.do(http.MethodPut, fmt.Sprintf("/trips/%d/period", tripID), map[string]any{})
	assert.Equal(t, http.StatusConflict, code)

	code, _ = c.do(http.MethodDelete, fmt.Sprintf("/trips/%d", tripID), nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = c.do(http.MethodGet, fmt.Sprintf("/trips/%d", tripID), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestMove_RequiresTargetOrder(t *testing.T) {
	c := newClient(t, 9)
	code, _ := c.do(http.MethodPut, "/schedules/1/position", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, code)
}
