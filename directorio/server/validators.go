package server

import (
	"reflect"
	"strings"

	"github.com/CPU-commits/Intranet_BDirectorio/forms"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func InitValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Report posted field names instead of struct names
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		forms.RegisterValidations(v)
	}
}
