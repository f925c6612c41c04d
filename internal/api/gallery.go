package api

import (
	"net/http" // HTTP status codes

	"uni3_backend/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// UploadPhotoForm is the multipart form of a gallery upload
type UploadPhotoForm struct {
	Descripcion string `form:"descripcion" binding:"required"`
	UserID      *uint  `form:"user_id" binding:"required"`
}

// UploadPhotoHandler stores an uploaded picture and adds it to the gallery
func UploadPhotoHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form UploadPhotoForm
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
			respondError(c, "upload_photo", err, "Error interno en Subida de Foto")
			return
		}
		defer src.Close()

		foto, err := svc.UploadPhoto(c.Request.Context(), form.Descripcion, *form.UserID, fh.Filename, src)
		if err != nil {
			respondError(c, "upload_photo", err, "Error interno en Subida de Foto")
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Foto subida correctamente", "foto": foto})
	}
}

// ListPhotosHandler returns the whole gallery
func ListPhotosHandler(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		fotos, err := svc.ListPhotos(c.Request.Context())
		if err != nil {
			respondError(c, "list_photos", err, "Internal server error")
			return
		}
		c.JSON(http.StatusOK, fotos)
	}
}
