package validator

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// Single token with no whitespace; underscores encode spaces in stored
	// neighborhood names ("hyde_park").
	identifierRegex = regexp.MustCompile(`^\S+$`)
	stateCodeRegex  = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Registration failure is a startup bug, not a runtime condition.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("identifier", validateIdentifier)
	mustRegister("statecode", validateStateCode)
}

func validateIdentifier(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // leave empties to 'required'
	}
	return identifierRegex.MatchString(value)
}

func validateStateCode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return stateCodeRegex.MatchString(value)
}
