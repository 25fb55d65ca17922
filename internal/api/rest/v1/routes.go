package v1

import (
	"github.com/ingver/rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyGenerationService keys.KeyGenerationService,
	keyDownloadService keys.KeyDownloadService,
	keyMetadataService keys.KeyMetadataService,
	transformService keys.TransformService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Keys Routes
	keyHandler := NewKeyHandler(keyGenerationService, keyDownloadService, keyMetadataService)
	v1.POST("/keys", keyHandler.GenerateKeys)
	v1.POST("/keys/batch", keyHandler.GenerateBatch)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.GET("/keys/:id/public", keyHandler.DownloadPublicByID)
	v1.GET("/keys/:id/private", keyHandler.DownloadPrivateByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)

	// Transform Routes
	transformHandler := NewTransformHandler(transformService)
	v1.POST("/keys/:id/encrypt", transformHandler.Encrypt)
	v1.POST("/keys/:id/decrypt", transformHandler.Decrypt)
}
