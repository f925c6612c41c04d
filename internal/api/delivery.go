package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing

	"uni3_backend/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// DeliveryForm is the multipart form of a delivery report; the proof photo comes in "file"
type DeliveryForm struct {
	PackageID         *uint    `form:"package_id" binding:"required"` // Pointers so 0 is looked up, not refused
	DeliveredByUserID *uint    `form:"delivered_by_user_id" binding:"required"`
	DeliveryLatitude  *float64 `form:"delivery_latitude" binding:"required,gte=-90,lte=90"`
	DeliveryLongitude *float64 `form:"delivery_longitude" binding:"required,gte=-180,lte=180"`
}

// AssignedPackagesHandler lists the pending packages of the user in the path
func AssignedPackagesHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
		if err != nil {
			invalidRequest(c, err)
			return
		}
		pkgs, err := svc.AssignedPackages(c.Request.Context(), uint(userID))
		if err != nil {
			respondError(c, "assigned_packages", err, "Internal server error")
			return
		}
		c.JSON(http.StatusOK, pkgs)
	}
}

// RecordDeliveryHandler records a delivery with its proof photo
func RecordDeliveryHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form DeliveryForm
		if err := c.ShouldBind(&form); err != nil {
			invalidRequest(c, err)
			return
		}
		fh, err := c.FormFile("file")
		if err != nil {
			invalidRequest(c, err)
			return
		}
		src, err := fh.Open()
		if err != nil {
			respondError(c, "record_delivery", err, "Error al guardar la foto de entrega")
			return
		}
		defer src.Close()

		delivery, err := svc.RecordDelivery(c.Request.Context(), service.DeliveryInput{
			PackageID:         *form.PackageID,
			DeliveredByUserID: *form.DeliveredByUserID,
			Latitude:          *form.DeliveryLatitude,
			Longitude:         *form.DeliveryLongitude,
			Filename:          fh.Filename,
			Photo:             src,
		})
		if err != nil {
			detail := "Internal Server Error"
			var pe *service.PhotoSaveError
			if errors.As(err, &pe) {
				detail = "Error al guardar la foto de entrega"
			}
			respondError(c, "record_delivery", err, detail)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"msg":         "Entrega registrada con éxito.",
			"delivery_id": delivery.ID,
			"address":     delivery.DeliveryAddress,
			"photo_route": delivery.PhotoRoute,
		})
	}
}
