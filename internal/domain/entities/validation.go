package entities

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate is shared by every entity Validate method; validator caches struct metadata so a
// single instance is kept for the process.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// gt/gte tags on money fields compare the decimal value.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

func init() {
	// Money goes over the wire as JSON numbers, like the rest of the payloads.
	decimal.MarshalJSONWithoutQuotes = true
}
