//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)

	generation := new(MockKeyGenerationService)
	download := new(MockKeyDownloadService)
	metadata := new(MockKeyMetadataService)
	transform := new(MockTransformService)

	metadata.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	metadata.On("GetByID", mock.Anything, mock.Anything).Return(testKeyRecord(), nil)
	metadata.On("DeleteByID", mock.Anything, mock.Anything).Return(nil)
	download.On("DownloadByID", mock.Anything, mock.Anything, mock.Anything).Return([]byte("1\n2\n"), nil)

	r := gin.New()
	SetupRoutes(r, generation, download, metadata, transform)

	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/rsa/keys"},
		{"POST", "/api/v1/rsa/keys/batch"},
		{"GET", "/api/v1/rsa/keys"},
		{"GET", "/api/v1/rsa/keys/some-id"},
		{"GET", "/api/v1/rsa/keys/some-id/public"},
		{"GET", "/api/v1/rsa/keys/some-id/private"},
		{"DELETE", "/api/v1/rsa/keys/some-id"},
		{"POST", "/api/v1/rsa/keys/some-id/encrypt"},
		{"POST", "/api/v1/rsa/keys/some-id/decrypt"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// a registered route answers with anything but 404
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}

func TestSetupRoutes_UnknownRoute(t *testing.T) {
	r := gin.New()
	SetupRoutes(r, new(MockKeyGenerationService), new(MockKeyDownloadService), new(MockKeyMetadataService), new(MockTransformService))

	req, _ := http.NewRequest("GET", "/api/v1/rsa/blobs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
