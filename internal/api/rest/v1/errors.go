package v1

import (
	"errors"
	"net/http"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
	"github.com/ingver/rsa/internal/domain/keys"
)

// statusFor maps a service error to the HTTP status reported to the client.
func statusFor(err error) int {
	switch {
	case errors.Is(err, keys.ErrKeyNotFound):
		return http.StatusNotFound
	case errors.Is(err, cryptoalg.ErrInvalidBitLength),
		errors.Is(err, cryptoalg.ErrUnsupportedEncoding):
		return http.StatusBadRequest
	case errors.Is(err, cryptoalg.ErrInputOutOfRange),
		errors.Is(err, cryptoalg.ErrMalformedPayload):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
