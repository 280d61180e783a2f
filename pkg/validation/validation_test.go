package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spaceshare-landing/pkg/models"
	"spaceshare-landing/pkg/validation"
)

func validValues() models.FormValues {
	return models.FormValues{
		Email:       "jordan@example.com",
		Phone:       "(555) 123-4567",
		Description: models.DescribesOwner,
	}
}

func TestFormValidator_Validate_AcceptsCompleteValues(t *testing.T) {
	fv := validation.New()

	res := fv.Validate(validValues())

	assert.True(t, res.Valid())
	assert.Empty(t, res.Fields)
}

func TestFormValidator_Validate_Email(t *testing.T) {
	fv := validation.New()

	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"plain address", "a@b.co", true},
		{"empty", "", false},
		{"missing at sign", "not-an-email", false},
		{"missing domain", "user@", false},
		{"spaces inside", "user name@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validValues()
			values.Email = tt.email

			res := fv.Validate(values)

			if tt.valid {
				assert.True(t, res.Valid())
				return
			}
			require.Contains(t, res.Fields, "email")
			assert.Equal(t, validation.MsgEmailInvalid, res.Fields["email"])
		})
	}
}

func TestFormValidator_Validate_Phone(t *testing.T) {
	fv := validation.New()

	tests := []struct {
		name    string
		phone   string
		message string
	}{
		{"bare ten digits", "5551234567", ""},
		{"separators stripped before counting", "(555) 123-4567", ""},
		{"dots stripped", "555.123.4567", ""},
		{"leading plus counts toward length", "+445551234567", ""},
		{"fifteen characters", "+12345678901234", ""},
		{"empty reports too short", "", validation.MsgPhoneTooShort},
		{"nine digits too short", "555123456", validation.MsgPhoneTooShort},
		{"sixteen characters too long", "+123456789012345", validation.MsgPhoneTooLong},
		{"letters are malformed", "555-CALL-NOW", validation.MsgPhoneMalformed},
		{"plus in the middle is malformed", "555+1234567", validation.MsgPhoneMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validValues()
			values.Phone = tt.phone

			res := fv.Validate(values)

			if tt.message == "" {
				assert.True(t, res.Valid(), "fields: %v", res.Fields)
				return
			}
			require.Contains(t, res.Fields, "phone")
			assert.Equal(t, tt.message, res.Fields["phone"])
		})
	}
}

func TestFormValidator_Validate_MalformedPhoneReportsSingleMessage(t *testing.T) {
	fv := validation.New()
	values := validValues()
	values.Phone = "abc"

	res := fv.Validate(values)

	require.Contains(t, res.Fields, "phone")
	assert.Equal(t, validation.MsgPhoneMalformed, res.Fields["phone"])
}

func TestFormValidator_Validate_Description(t *testing.T) {
	fv := validation.New()

	for _, option := range models.DescribesOptions {
		t.Run(option, func(t *testing.T) {
			values := validValues()
			values.Description = option

			res := fv.Validate(values)

			assert.True(t, res.Valid())
		})
	}

	for _, invalid := range []string{"", "Neither", strings.ToLower(models.DescribesBoth)} {
		t.Run("rejects "+invalid, func(t *testing.T) {
			values := validValues()
			values.Description = invalid

			res := fv.Validate(values)

			require.Contains(t, res.Fields, "description")
			assert.Equal(t, validation.MsgDescribesMissing, res.Fields["description"])
		})
	}
}

func TestFormValidator_Validate_ReportsEveryFailingField(t *testing.T) {
	fv := validation.New()

	res := fv.Validate(models.FormValues{})

	assert.False(t, res.Valid())
	assert.Equal(t, validation.MsgEmailInvalid, res.Fields["email"])
	assert.Equal(t, validation.MsgPhoneTooShort, res.Fields["phone"])
	assert.Equal(t, validation.MsgDescribesMissing, res.Fields["description"])
}
