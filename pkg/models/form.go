package models

import "strings"

// Labels for the "what describes you best" selection. The landing form
// renders exactly these options; anything else is an invalid selection.
const (
	DescribesOwner  = "I own a space to share"
	DescribesSeeker = "I'm looking for a space"
	DescribesBoth   = "Both"
)

// DescribesOptions lists the selectable labels in display order.
var DescribesOptions = []string{DescribesOwner, DescribesSeeker, DescribesBoth}

// FormValues represents the data submitted from the landing page form.
// Description is empty while the placeholder option is selected.
type FormValues struct {
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"phone_format,phone_min,phone_max"`
	Description string `json:"description" validate:"describes_option"`
}

// phoneSeparators are the free-form characters accepted while typing a
// phone number. They are stripped before validation and storage.
var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// NormalizePhone strips separator characters from a phone number, leaving
// the optional leading "+" and the digits.
func NormalizePhone(phone string) string {
	return phoneSeparators.Replace(strings.TrimSpace(phone))
}

// IsDescribesOption reports whether label is one of the selectable options.
func IsDescribesOption(label string) bool {
	for _, opt := range DescribesOptions {
		if label == opt {
			return true
		}
	}
	return false
}

// ContactInfo builds the record sent to the mailing list. The email is
// always present; phone and description are included only when set. The
// phone is stored in its normalized form.
func (v FormValues) ContactInfo() map[string]string {
	info := map[string]string{
		"Contact Email": v.Email,
	}
	if phone := NormalizePhone(v.Phone); phone != "" {
		info["Phone"] = phone
	}
	if v.Description != "" {
		info["Description"] = v.Description
	}
	return info
}
