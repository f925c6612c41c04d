package api

import (
	"net/http" // HTTP status codes

	"uni3_backend/internal/middleware"
	"uni3_backend/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// RouterConfig holds what the router needs besides the service
type RouterConfig struct {
	UploadDir       string // Directory served as static files
	UploadURLPrefix string // Public prefix for UploadDir
}

// NewRouter wires every endpoint onto a fresh gin engine
func NewRouter(svc *service.Service, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery(), middleware.CORS())

	r.Static(cfg.UploadURLPrefix, cfg.UploadDir) // Uploaded photos

	r.GET("/healthz", HealthHandler(svc))

	// Auth routes
	r.POST("/login/", LoginHandler(svc))

	// Attendance routes
	r.POST("/attendance/", AttendanceHandler(svc))
	r.POST("/attendance/history/", AttendanceHistoryHandler(svc))
	r.POST("/attendance/history/export/", ExportAttendanceHistoryHandler(svc))

	// Gallery routes
	r.POST("/fotos/", UploadPhotoHandler(svc))
	r.GET("/fotos/", ListPhotosHandler(svc))

	// Delivery routes
	r.GET("/packages/assigned/:user_id", AssignedPackagesHandler(svc))
	r.POST("/deliveries/record/", RecordDeliveryHandler(svc))

	return r
}

// HealthHandler reports whether the database answers
func HealthHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
