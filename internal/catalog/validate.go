package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("isbn", validateISBN)
}

// validateISBN accepts 10- or 13-digit ISBNs with hyphens/spaces stripped.
// No check-digit verification: the external catalog tolerates sloppy ISBNs.
func validateISBN(fl validator.FieldLevel) bool {
	isbn := fl.Field().String()
	isbn = strings.ReplaceAll(isbn, "-", "")
	isbn = strings.ReplaceAll(isbn, " ", "")

	if len(isbn) == 10 {
		matched, _ := regexp.MatchString(`^\d{9}[\dX]$`, isbn)
		return matched
	}
	if len(isbn) == 13 {
		matched, _ := regexp.MatchString(`^\d{13}$`, isbn)
		return matched
	}
	return false
}

func validateStruct(s interface{}) *ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verr := &ValidationError{}
	for _, fe := range err.(validator.ValidationErrors) {
		field := fe.Field()
		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "isbn":
			message = fmt.Sprintf("%s must be a valid ISBN (10 or 13 digits)", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}
		fieldName := strings.ToLower(field[:1]) + field[1:]
		verr.Fields = append(verr.Fields, FieldError{Field: fieldName, Message: message})
	}
	return verr
}

const dateLayout = "2006-01-02"

func parseDate(field, value string) (time.Time, *ValidationError) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, newValidationError(field, fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field))
	}
	return t, nil
}
