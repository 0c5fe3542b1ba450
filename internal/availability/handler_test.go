package availability

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitconnect/internal/auth"
	"fitconnect/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewHandler(NewService(NewRepository(storage.NewMemoryStore())))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		auth.SetIdentity(c, "t1", auth.RoleTrainer)
		c.Next()
	})
	router.GET("/availability", h.GetMine)
	router.POST("/availability/slots", h.AddSlot)
	router.DELETE("/availability/slots/:day/:index", h.RemoveSlot)
	router.GET("/trainers/:id/availability", h.GetForTrainer)
	return router
}

func postSlot(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/availability/slots", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_AddSlot(t *testing.T) {
	router := setupRouter(t)

	w := postSlot(router, `{"day_of_week":"monday","start_time":"09:00","end_time":"10:00"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postSlot(router, `{"day_of_week":"MONDAY","start_time":"09:30","end_time":"10:30"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "overlaps with an existing slot")

	w = postSlot(router, `{"day_of_week":"MONDAY","start_time":"10:00","end_time":"11:00"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postSlot(router, `{"day_of_week":"MONDAY","start_time":"12:00","end_time":"11:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "end time must be after start time")

	w = postSlot(router, `{"day_of_week":"FUNDAY","start_time":"09:00","end_time":"10:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postSlot(router, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
}

func TestHandler_WeekAndRemove(t *testing.T) {
	router := setupRouter(t)

	require.Equal(t, http.StatusCreated, postSlot(router, `{"day_of_week":"TUESDAY","start_time":"09:00","end_time":"10:00"}`).Code)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/trainers/t1/availability", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var week []DaySchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &week))
	require.Len(t, week, 7)
	assert.Len(t, week[1].TimeSlots, 1)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodDelete, "/availability/slots/tuesday/5", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodDelete, "/availability/slots/tuesday/abc", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodDelete, "/availability/slots/tuesday/0", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/availability", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &week))
	assert.Empty(t, week[1].TimeSlots)
}
