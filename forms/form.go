package forms

import (
	"errors"
	"fmt"
	"sync"

	"github.com/CPU-commits/Intranet_BDirectorio/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Key used for errors that do not belong to a single field
const FORM_KEY = "form"

type fieldMessages struct {
	name     string
	required string
	invalid  string
}

var usuarioFields = map[string]fieldMessages{
	"Nombre": {
		name:     "nombre",
		required: "El nombre es obligatorio.",
	},
	"ApellidoPaterno": {
		name:     "apellido_paterno",
		required: "El apellido paterno es obligatorio.",
	},
	"ApellidoMaterno": {
		name:     "apellido_materno",
		required: "El apellido materno es obligatorio.",
	},
	"Correo": {
		name:     "correo",
		required: "El correo es obligatorio.",
		invalid:  "El correo no es válido.",
	},
	"CorreoSecretaria": {
		name:    "correo_secretaria",
		invalid: "El correo de secretaría no es válido.",
	},
	"Cargo": {
		name:     "cargo",
		required: "El cargo es obligatorio.",
	},
	"Institucion": {
		name:     "institucion",
		required: "La institución es obligatoria.",
	},
	"Telefono": {
		name:     "telefono",
		required: "El teléfono es obligatorio.",
	},
}

const MSG_CORREO_DUPLICADO = "El correo ya está registrado."

var NotSentinel validator.Func = func(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value != models.SENTINEL_INSTITUCION && value != models.SENTINEL_CARGO
}

var registerOnce sync.Once

func RegisterValidations(v *validator.Validate) {
	v.RegisterValidation("notSentinel", NotSentinel)
}

func registerDefault() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			RegisterValidations(v)
		}
	})
}

// Validate runs the binding tags of obj through gin's validator and returns
// the messages keyed by form field name, or nil when obj is valid.
func Validate(obj interface{}) map[string]string {
	registerDefault()
	return FieldMessages(binding.Validator.ValidateStruct(obj))
}

// FieldMessages keeps the first message for every failing field.
func FieldMessages(err error) map[string]string {
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{FORM_KEY: err.Error()}
	}

	messages := make(map[string]string)
	for _, fe := range validationErrors {
		field, ok := usuarioFields[fe.StructField()]
		if !ok {
			field = fieldMessages{name: fe.Field()}
		}
		if _, exists := messages[field.name]; exists {
			continue
		}
		messages[field.name] = message(field, fe)
	}
	return messages
}

func message(field fieldMessages, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if field.required != "" {
			return field.required
		}
		return "Este campo es obligatorio."
	case "email":
		if field.invalid != "" {
			return field.invalid
		}
		return "El correo no es válido."
	case "max":
		return fmt.Sprintf("Máximo %s caracteres.", fe.Param())
	case "notSentinel":
		return fmt.Sprintf("\"%v\" está reservado para los filtros.", fe.Value())
	}
	return "Valor no válido."
}
