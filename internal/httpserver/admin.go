package httpserver

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JustAsh123/shopalot/internal/media"
	categorysvc "github.com/JustAsh123/shopalot/internal/service/category"
	productsvc "github.com/JustAsh123/shopalot/internal/service/product"
)

func upsertCategoryHandler(svc *categorysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categorysvc.UpsertInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		category, err := svc.Upsert(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func upsertProductHandler(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.UpsertInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		product, err := svc.Upsert(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

const maxUploadBytes = 10 << 20

func uploadHandler(uploader media.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uploader == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media uploads not configured"})
			return
		}

		header, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
			return
		}
		if header.Size > maxUploadBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
			return
		}

		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read image"})
			return
		}
		defer file.Close()

		name := strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))
		publicID := name + "-" + uuid.NewString()
		url, err := uploader.UploadImage(c.Request.Context(), file, publicID)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "upload failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"imageUrl": url})
	}
}
