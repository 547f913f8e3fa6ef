package utils

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	ifscRe = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	upiRe  = regexp.MustCompile(`^[A-Za-z0-9.\-_]{2,256}@[A-Za-z]{2,64}$`)
)

// RegisterValidators installs the custom format validators used by vendor and
// guest payloads on gin's binding engine. Call once at startup.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("ifsc", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || ifscRe.MatchString(s)
	})

	_ = v.RegisterValidation("upi", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || upiRe.MatchString(s)
	})

	// Accepts anything NormalizePhone can bring to canonical form.
	_ = v.RegisterValidation("phoneshape", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || IsNormalizedPhone(NormalizePhone(s))
	})
}

// IsValidIFSC / IsValidUPI are used outside binding (service-side checks).
func IsValidIFSC(s string) bool { return ifscRe.MatchString(s) }
func IsValidUPI(s string) bool  { return upiRe.MatchString(s) }
