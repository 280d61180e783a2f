package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"spaceshare-landing/pkg/models"
)

// User-facing messages for each validation rule. These appear verbatim in
// the API response and next to the form fields.
const (
	MsgEmailInvalid     = "Please enter a valid email address."
	MsgPhoneMalformed   = "Please enter a valid phone number."
	MsgPhoneTooShort    = "Phone number must be at least 10 digits."
	MsgPhoneTooLong     = "Phone number must be at most 15 digits."
	MsgDescribesMissing = "Please select what best describes you."
)

// Normalized phone length bounds. The normalized form keeps the optional
// leading "+" and counts toward the length.
const (
	phoneMinLen = 10
	phoneMaxLen = 15
)

// A normalized phone is an optional leading "+" followed by digits only.
// The empty string matches so the length rule reports it instead.
var normalizedPhoneRegex = regexp.MustCompile(`^\+?[0-9]*$`)

// fieldNames maps struct fields to the JSON names reported to clients.
var fieldNames = map[string]string{
	"Email":       "email",
	"Phone":       "phone",
	"Description": "description",
}

// Result is the outcome of validating a set of form values. An empty
// Fields map means the values are valid.
type Result struct {
	// Fields maps a field name to the message displayed for it.
	Fields map[string]string
}

// Valid reports whether every field passed its rules.
func (r Result) Valid() bool {
	return len(r.Fields) == 0
}

// FormValidator checks landing form values against the field rules and
// turns failures into user-facing messages. It is safe for concurrent use.
type FormValidator struct {
	validate *validator.Validate
}

// New creates a FormValidator with the form rules registered.
func New() *FormValidator {
	v := validator.New()
	registerFormRules(v)
	return &FormValidator{validate: v}
}

// Validate checks the values and returns a message per failing field.
// It is synchronous and has no side effects; callers re-run it on every
// submit attempt.
func (fv *FormValidator) Validate(values models.FormValues) Result {
	err := fv.validate.Struct(values)
	if err == nil {
		return Result{}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Struct-level failures cannot come from user input.
		return Result{Fields: map[string]string{"form": "Invalid form data."}}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fieldName(fe.StructField())
		if _, seen := fields[name]; seen {
			continue
		}
		fields[name] = messageFor(fe)
	}
	return Result{Fields: fields}
}

// registerFormRules registers the custom validators used by the form
// field tags. Tag order on the phone field matters: the format rule runs
// before the length rules so malformed input reports a single message.
func registerFormRules(v *validator.Validate) {
	_ = v.RegisterValidation("phone_format", phoneFormat)
	_ = v.RegisterValidation("phone_min", phoneMinDigits)
	_ = v.RegisterValidation("phone_max", phoneMaxDigits)
	_ = v.RegisterValidation("describes_option", describesOption)
}

func phoneFormat(fl validator.FieldLevel) bool {
	return normalizedPhoneRegex.MatchString(models.NormalizePhone(fl.Field().String()))
}

func phoneMinDigits(fl validator.FieldLevel) bool {
	return len(models.NormalizePhone(fl.Field().String())) >= phoneMinLen
}

func phoneMaxDigits(fl validator.FieldLevel) bool {
	return len(models.NormalizePhone(fl.Field().String())) <= phoneMaxLen
}

func describesOption(fl validator.FieldLevel) bool {
	return models.IsDescribesOption(fl.Field().String())
}

// messageFor maps a failed rule to its user-facing message.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "email":
		return MsgEmailInvalid
	case "phone_format":
		return MsgPhoneMalformed
	case "phone_min":
		return MsgPhoneTooShort
	case "phone_max":
		return MsgPhoneTooLong
	case "describes_option":
		return MsgDescribesMissing
	default:
		return "Invalid value."
	}
}

func fieldName(structField string) string {
	if name, ok := fieldNames[structField]; ok {
		return name
	}
	return strings.ToLower(structField)
}
