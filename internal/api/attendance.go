package api

import (
	"fmt"      // Download file name
	"net/http" // HTTP status codes
	"time"     // Timestamp in the export name

	"uni3_backend/internal/report"
	"uni3_backend/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// AttendanceRequest is one check-in
type AttendanceRequest struct {
	UserID    *uint    `json:"user_id" binding:"required"`                    // Pointer so 0 reaches the foreign key check
	Latitude  *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`    // Pointer so 0 is accepted
	Longitude *float64 `json:"longitude" binding:"required,gte=-180,lte=180"` // Pointer so 0 is accepted
}

// UserIDRequest identifies the caller of an admin report
type UserIDRequest struct {
	UserID *uint `json:"user_id" binding:"required"` // Pointer so 0 is refused as a non-admin
}

// AttendanceHandler records a check-in and resolves its address
func AttendanceHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AttendanceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			invalidRequest(c, err)
			return
		}
		record, err := svc.RecordAttendance(c.Request.Context(), *req.UserID, *req.Latitude, *req.Longitude)
		if err != nil {
			respondError(c, "attendance", err, "Error interno en Asistencia")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"msg":           "Registro de asistencia guardado",
			"attendance_id": record.ID,
			"address":       record.Address,
			"latitude":      record.Latitude,
			"longitude":     record.Longitude,
		})
	}
}

// AttendanceHistoryHandler returns every check-in, newest first, to admins
func AttendanceHistoryHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UserIDRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			invalidRequest(c, err)
			return
		}
		history, err := svc.AttendanceHistory(c.Request.Context(), *req.UserID)
		if err != nil {
			respondError(c, "attendance_history", err, "Internal server error")
			return
		}
		c.JSON(http.StatusOK, history)
	}
}

// ExportAttendanceHistoryHandler streams the attendance history as an xlsx download
func ExportAttendanceHistoryHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UserIDRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			invalidRequest(c, err)
			return
		}
		data, err := svc.ExportAttendanceHistory(c.Request.Context(), *req.UserID)
		if err != nil {
			respondError(c, "attendance_export", err, "Internal server error")
			return
		}
		name := fmt.Sprintf("asistencia_%s.xlsx", time.Now().Format("20060102_150405"))
		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
		c.Data(http.StatusOK, report.XLSXContentType, data)
	}
}
