package forms

import (
	"strings"
	"testing"

	"github.com/CPU-commits/Intranet_BDirectorio/models"
	"github.com/stretchr/testify/assert"
)

func validForm() UsuarioForm {
	return UsuarioForm{
		Nombre:          "Mariela",
		ApellidoPaterno: "Puebla",
		ApellidoMaterno: "Soto",
		Correo:          "mariela.puebla@uvm.cl",
		Cargo:           "Directora",
		Institucion:     "UVM",
		Telefono:        "322462000",
	}
}

func TestValidateAcceptsValidForm(t *testing.T) {
	form := validForm()
	assert.Nil(t, Validate(&form))

	form.CorreoSecretaria = "secretaria@uvm.cl"
	assert.Nil(t, Validate(&form))
}

func TestValidateRequiredFields(t *testing.T) {
	form := UsuarioForm{Nombre: "   ", Correo: "\t"}
	form.Sanitize()

	messages := Validate(&form)
	assert.Equal(t, map[string]string{
		"nombre":           "El nombre es obligatorio.",
		"apellido_paterno": "El apellido paterno es obligatorio.",
		"apellido_materno": "El apellido materno es obligatorio.",
		"correo":           "El correo es obligatorio.",
		"cargo":            "El cargo es obligatorio.",
		"institucion":      "La institución es obligatoria.",
		"telefono":         "El teléfono es obligatorio.",
	}, messages)
}

func TestValidateEmails(t *testing.T) {
	form := validForm()
	form.Correo = "no-es-correo"
	form.CorreoSecretaria = "tampoco"

	messages := Validate(&form)
	assert.Equal(t, "El correo no es válido.", messages["correo"])
	assert.Equal(t, "El correo de secretaría no es válido.", messages["correo_secretaria"])
	assert.Len(t, messages, 2)
}

func TestValidateLengthAndSentinel(t *testing.T) {
	form := validForm()
	form.Telefono = strings.Repeat("9", 21)
	form.Institucion = models.SENTINEL_INSTITUCION
	form.Cargo = models.SENTINEL_CARGO

	messages := Validate(&form)
	assert.Equal(t, "Máximo 20 caracteres.", messages["telefono"])
	assert.Contains(t, messages["institucion"], "reservado")
	assert.Contains(t, messages["cargo"], "reservado")
}

func TestApplyOverwritesAndClearsSecretaria(t *testing.T) {
	secretaria := "old@uvm.cl"
	usuario := &models.Usuario{ID: 7, Nombre: "Old", CorreoSecretaria: &secretaria}

	form := validForm()
	form.Apply(usuario)

	assert.Equal(t, int64(7), usuario.ID)
	assert.Equal(t, "Mariela", usuario.Nombre)
	assert.Equal(t, "UVM", usuario.Institucion)
	assert.Nil(t, usuario.CorreoSecretaria)

	back := NewUsuarioFormFrom(usuario)
	assert.Equal(t, form, *back)
}
