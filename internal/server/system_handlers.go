package server

import (
	"net/http"

	"fitconnect/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type LandingResponse struct {
	Name      string   `json:"name" example:"FitConnect"`
	Message   string   `json:"message" example:"Connect with personal trainers and book sessions"`
	Endpoints []string `json:"endpoints"`
}

// @Summary      Landing page
// @Tags         system
// @Produce      json
// @Success      200 {object} LandingResponse
// @Router       / [get]
func Landing(c *gin.Context) {
	c.JSON(http.StatusOK, LandingResponse{
		Name:    "FitConnect",
		Message: "Connect with personal trainers and book sessions",
		Endpoints: []string{
			"/auth/register",
			"/auth/login",
			"/trainers",
			"/directory/members",
			"/health",
		},
	})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Router       /health [get]
func Health(storage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, api.HealthResponse{Status: "ok", Storage: storage})
	}
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

func redirectHome(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}
