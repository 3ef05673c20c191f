package games

import (
	"errors"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// MsgInputRequired is reported when no payload was supplied at all.
const MsgInputRequired = "game data is required"

type fieldMessages map[string]map[string]string

func lengthMessages(required, length string) map[string]string {
	return map[string]string{"notblank": required, "min": length, "max": length}
}

var inputMessages = fieldMessages{
	"Name":        lengthMessages("name is required", "name must be between 2 and 100 characters"),
	"Description": lengthMessages("description is required", "description must be between 10 and 500 characters"),
	"Genre":       lengthMessages("genre is required", "genre must be between 2 and 50 characters"),
	"ReleaseDate": {"required": "release date is required"},
	"Publisher":   lengthMessages("publisher is required", "publisher must be between 2 and 100 characters"),
	"Developer":   lengthMessages("developer is required", "developer must be between 2 and 100 characters"),
	"Price": {
		"nonnegative": "price must not be negative",
		"maxscale":    "price must have at most 2 decimal places",
		"maxdigits":   "price must be less than 10000000000",
	},
}

// Validator checks game input against the catalog field constraints.
type Validator struct {
	validate *validator.Validate
}

// NewValidator constructs a Validator with the custom rules registered.
func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("nonnegative", decimalRule(func(d decimal.Decimal, _ int) bool {
		return d.Sign() >= 0
	}))
	_ = v.RegisterValidation("maxscale", decimalRule(func(d decimal.Decimal, places int) bool {
		return d.Equal(d.Truncate(int32(places)))
	}))
	_ = v.RegisterValidation("maxdigits", decimalRule(func(d decimal.Decimal, digits int) bool {
		return d.Abs().LessThan(decimal.New(1, int32(digits)))
	}))
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	return &Validator{validate: v}
}

// Validate returns violations in field order, at most one per field. An empty slice means valid.
func (v *Validator) Validate(in *Input) []string {
	if in == nil {
		return []string{MsgInputRequired}
	}
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"invalid game data"}
	}
	messages := make([]string, 0, len(verrs))
	for _, verr := range verrs {
		messages = append(messages, messageFor(verr))
	}
	return messages
}

func messageFor(verr validator.FieldError) string {
	if fieldMsgs, ok := inputMessages[verr.StructField()]; ok {
		if msg, ok := fieldMsgs[verr.Tag()]; ok {
			return msg
		}
	}
	return verr.Field() + " is invalid"
}

// decimalValue hands decimals to the validator in their exact string form.
func decimalValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	return d.String()
}

// decimalRule adapts a check on the exact decimal value and the integer tag param.
func decimalRule(check func(d decimal.Decimal, param int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		param := 0
		if p := fl.Param(); p != "" {
			if param, err = strconv.Atoi(p); err != nil {
				return false
			}
		}
		return check(d, param)
	}
}
