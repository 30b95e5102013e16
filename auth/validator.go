package auth

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the struct tags of a decoded identity.
func Validate(identity Identity) error {
	return validate.Struct(identity)
}
