package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clockStruct struct {
	Date  string `validate:"omitempty,date"`
	Clock string `validate:"omitempty,clock"`
	Month string `validate:"omitempty,monthkey"`
	Food  string `validate:"food"`
}

func TestValidator_Layouts(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		input   clockStruct
		wantErr bool
	}{
		// Best case
		{"valid date", clockStruct{Date: "2025-06-20"}, false},
		{"valid clock", clockStruct{Clock: "23:59"}, false},
		{"valid month", clockStruct{Month: "2025-12"}, false},

		// Boundary
		{"midnight", clockStruct{Clock: "00:00"}, false},
		{"leap day", clockStruct{Date: "2024-02-29"}, false},
		{"non leap day", clockStruct{Date: "2025-02-29"}, true},
		{"hour 24", clockStruct{Clock: "24:00"}, true},

		// Invalid
		{"single digit hour", clockStruct{Clock: "9:00"}, true},
		{"slashes", clockStruct{Date: "2025/06/20"}, true},
		{"month 13", clockStruct{Month: "2025-13"}, true},
		{"trailing text", clockStruct{Date: "2025-06-20x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Food(t *testing.T) {
	InitValidator()
	v := GetValidator()

	for food, wantErr := range map[string]bool{
		"basic": false, "GOOD": false, "premium": false, "special": false,
		"": false, "gold": true, "basic ": true,
	} {
		err := v.ValidateStruct(clockStruct{Food: food})
		assert.Equal(t, wantErr, err != nil, "food %q", food)
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()

	err := GetValidator().ValidateStruct(clockStruct{Date: "x", Food: "gold"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Must be a date in YYYY-MM-DD format", fields["date"])
	assert.Contains(t, fields["food"], "basic")

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, "Invalid request format", FormatValidationError(assert.AnError)["error"])
}
