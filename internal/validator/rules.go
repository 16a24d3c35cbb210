package validator

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ommivivekanandsai/EduFolio/internal/datauri"
)

// registerCustomRules installs the portfolio-specific validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'skills_list': comma-separated skills, every item non-empty
	mustRegister("skills_list", validateSkillsList)

	// 'filedata': inline data URI or resolved URL
	mustRegister("filedata", validateFileData)
}

func validateSkillsList(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if strings.TrimSpace(value) == "" {
		return false
	}
	for _, item := range strings.Split(value, ",") {
		if strings.TrimSpace(item) == "" {
			return false
		}
	}
	return true
}

func validateFileData(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	if datauri.IsDataURI(value) {
		return true
	}
	return strings.HasPrefix(value, "http://") ||
		strings.HasPrefix(value, "https://") ||
		strings.HasPrefix(value, "/")
}
