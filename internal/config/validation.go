package config

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/gobwas/glob"
)

// validColor checks if the field contains a valid hex color code.
func validColor(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	re := regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
	return re.MatchString(value)
}

// validRegexp checks that the exclude pattern compiles.
func validRegexp(fl validator.FieldLevel) bool {
	_, err := regexp.Compile(fl.Field().String())
	return err == nil
}

// validGlob checks that the exclude glob compiles.
func validGlob(fl validator.FieldLevel) bool {
	_, err := glob.Compile(fl.Field().String())
	return err == nil
}
