package utils

import (
	"github.com/asaskevich/govalidator"
)

// Struct tags "rut" and "mail" used by the domain entities resolve to the validators below.
func init() {
	govalidator.TagMap["rut"] = govalidator.Validator(IsValidRut)
	govalidator.TagMap["mail"] = govalidator.Validator(IsValidEmail)
}

// ValidateStruct runs the govalidator struct tags and flattens the messages in field
// declaration order.
func ValidateStruct(v interface{}) []string {
	_, err := govalidator.ValidateStruct(v)
	if err == nil {
		return nil
	}
	return flattenErrors(err, nil)
}

func flattenErrors(err error, out []string) []string {
	switch e := err.(type) {
	case govalidator.Errors:
		for _, item := range e.Errors() {
			out = flattenErrors(item, out)
		}
	case govalidator.Error:
		out = append(out, e.Err.Error())
	default:
		out = append(out, err.Error())
	}
	return out
}
