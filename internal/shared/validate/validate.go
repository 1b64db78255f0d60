package validate

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	v    *validator.Validate
	once sync.Once
)

// Get returns the shared validator instance. Request bodies are checked once
// at the HTTP boundary before the application layer is invoked.
func Get() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
	})
	return v
}

// Struct validates s with the shared instance.
func Struct(s any) error {
	return Get().Struct(s)
}
