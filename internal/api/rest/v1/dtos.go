package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/ingver/rsa/internal/domain/keys"
	"github.com/ingver/rsa/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// GenerateKeyRequest is the body of POST /keys
type GenerateKeyRequest struct {
	KeySize int `json:"key_size" validate:"required,rsaKeySize"`
}

// Validate for validating GenerateKeyRequest struct
func (r *GenerateKeyRequest) Validate() error {
	return validateRequest(r)
}

// GenerateBatchRequest is the body of POST /keys/batch
type GenerateBatchRequest struct {
	KeySize int `json:"key_size" validate:"required,rsaKeySize"`
	Count   int `json:"count" validate:"required,min=1,max=64"`
}

// Validate for validating GenerateBatchRequest struct
func (r *GenerateBatchRequest) Validate() error {
	return validateRequest(r)
}

// TransformRequest is the body of POST /keys/:id/encrypt and /decrypt.
// Raw payloads are base64 encoded, hex payloads are sent as hex text.
type TransformRequest struct {
	Payload  string `json:"payload"`
	Encoding string `json:"encoding" validate:"omitempty,oneof=raw hex"`
}

// Validate for validating TransformRequest struct
func (r *TransformRequest) Validate() error {
	return validateRequest(r)
}

// TransformResponse carries the transformed payload in the request's encoding
type TransformResponse struct {
	Payload  string `json:"payload"`
	Encoding string `json:"encoding"`
}

// KeyPairResponse describes a stored key pair without its private exponent
type KeyPairResponse struct {
	ID              string    `json:"id"`
	KeySize         int       `json:"key_size"`
	PublicExponent  string    `json:"public_exponent"`
	Modulus         string    `json:"modulus"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

func newKeyPairResponse(record *keys.KeyRecord) KeyPairResponse {
	return KeyPairResponse{
		ID:              record.ID,
		KeySize:         record.KeySize,
		PublicExponent:  record.KeyPair.PublicExponent.String(),
		Modulus:         record.KeyPair.Modulus.String(),
		DateTimeCreated: record.DateTimeCreated,
	}
}

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message
type InfoResponse struct {
	Message string `json:"message"`
}

func validateRequest(request interface{}) error {
	validate := validator.New()

	if err := validate.RegisterValidation("rsaKeySize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(request)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
