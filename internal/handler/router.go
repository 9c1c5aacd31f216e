package handler

import (
	"io/fs"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mindtree/internal/middleware"
	"mindtree/internal/service"
)

// NewRouter wires the API and page routes onto a gin engine.
func NewRouter(svc *service.CheckinService, site fs.FS) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	h := NewCheckinHandler(svc)
	r.POST("/checkin", h.Checkin)
	r.GET("/tree-health", h.TreeHealth)
	r.GET("/history", h.History)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := RegisterStatic(r, site); err != nil {
		return nil, err
	}
	return r, nil
}
