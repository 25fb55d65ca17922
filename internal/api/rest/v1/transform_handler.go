package v1

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
	"github.com/ingver/rsa/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// TransformHandler defines the interface for encrypting and decrypting payloads
type TransformHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type transformHandler struct {
	transformService keys.TransformService
}

// NewTransformHandler creates a new TransformHandler
func NewTransformHandler(transformService keys.TransformService) TransformHandler {
	return &transformHandler{transformService: transformService}
}

// Encrypt handles the POST request to encrypt a payload with a stored public key
// @Summary Encrypt a payload
// @Tags Transform
// @Accept json
// @Produce json
// @Param id path string true "Key ID"
// @Param requestBody body TransformRequest true "Payload and encoding"
// @Success 200 {object} TransformResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /keys/{id}/encrypt [post]
func (handler *transformHandler) Encrypt(ctx *gin.Context) {
	handler.transform(ctx, handler.transformService.Encrypt)
}

// Decrypt handles the POST request to decrypt a payload with a stored private key
// @Summary Decrypt a payload
// @Tags Transform
// @Accept json
// @Produce json
// @Param id path string true "Key ID"
// @Param requestBody body TransformRequest true "Payload and encoding"
// @Success 200 {object} TransformResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /keys/{id}/decrypt [post]
func (handler *transformHandler) Decrypt(ctx *gin.Context) {
	handler.transform(ctx, handler.transformService.Decrypt)
}

type transformFunc func(ctx context.Context, keyID string, payload []byte, kind cryptoalg.EncodingKind) ([]byte, error)

func (handler *transformHandler) transform(ctx *gin.Context, fn transformFunc) {
	keyID := ctx.Param("id")

	var request TransformRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid transform data: %v", err)})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	kind := cryptoalg.EncodingRaw
	if request.Encoding != "" {
		kind = cryptoalg.EncodingKind(request.Encoding)
	}

	payload, err := decodePayload(request.Payload, kind)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid payload: %v", err)})
		return
	}

	out, err := fn(ctx, keyID, payload, kind)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Message: fmt.Sprintf("transform with key %s failed: %v", keyID, err)})
		return
	}

	ctx.JSON(http.StatusOK, TransformResponse{
		Payload:  encodePayload(out, kind),
		Encoding: string(kind),
	})
}

// raw payloads travel as base64 inside JSON; hex payloads are already text
func decodePayload(payload string, kind cryptoalg.EncodingKind) ([]byte, error) {
	if kind == cryptoalg.EncodingHex {
		return []byte(payload), nil
	}
	return base64.StdEncoding.DecodeString(payload)
}

func encodePayload(payload []byte, kind cryptoalg.EncodingKind) string {
	if kind == cryptoalg.EncodingHex {
		return string(payload)
	}
	return base64.StdEncoding.EncodeToString(payload)
}
