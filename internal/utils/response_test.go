package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

func TestStatusForError(t *testing.T) {
	validate := validator.New()
	validationErr := validate.Struct(struct {
		Name string `validate:"required"`
	}{})
	if validationErr == nil {
		t.Fatal("Expected a validation error for the empty struct")
	}

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"record not found", gorm.ErrRecordNotFound, 404},
		{"wrapped not found", fmt.Errorf("load property: %w", gorm.ErrRecordNotFound), 404},
		{"foreign key violation", gorm.ErrForeignKeyViolated, 400},
		{"wrapped foreign key violation", fmt.Errorf("referenced owner 9 does not exist: %w", gorm.ErrForeignKeyViolated), 400},
		{"duplicated key", gorm.ErrDuplicatedKey, 400},
		{"invalid data", gorm.ErrInvalidData, 400},
		{"validation errors", validationErr, 400},
		{"anything else", errors.New("disk on fire"), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusForError(tc.err); got != tc.want {
				t.Errorf("StatusForError(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
