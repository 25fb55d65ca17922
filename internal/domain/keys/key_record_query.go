package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// KeyRecordQuery represents filter, pagination and sort options for listing key records.
type KeyRecordQuery struct {
	KeySize         int       `validate:"omitempty,gt=0"`
	DateTimeCreated time.Time `validate:"omitempty"`

	Limit     int    `validate:"omitempty,gt=0"`
	Offset    int    `validate:"omitempty,gte=0"`
	SortBy    string `validate:"omitempty,oneof=id key_size date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewKeyRecordQuery creates a KeyRecordQuery with default values.
func NewKeyRecordQuery() *KeyRecordQuery {
	return &KeyRecordQuery{}
}

// Validate for validating KeyRecordQuery struct
func (q *KeyRecordQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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
