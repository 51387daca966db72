package forms

import (
	"strings"

	"github.com/CPU-commits/Intranet_BDirectorio/models"
)

type UsuarioForm struct {
	Nombre           string `form:"nombre" binding:"required,max=50"`
	ApellidoPaterno  string `form:"apellido_paterno" binding:"required,max=50"`
	ApellidoMaterno  string `form:"apellido_materno" binding:"required,max=50"`
	Correo           string `form:"correo" binding:"required,email,max=100"`
	CorreoSecretaria string `form:"correo_secretaria" binding:"omitempty,email,max=100"`
	Cargo            string `form:"cargo" binding:"required,max=50,notSentinel"`
	Institucion      string `form:"institucion" binding:"required,max=100,notSentinel"`
	Telefono         string `form:"telefono" binding:"required,max=20"`
}

// Sanitize trims every field so whitespace-only input counts as missing.
func (f *UsuarioForm) Sanitize() {
	f.Nombre = strings.TrimSpace(f.Nombre)
	f.ApellidoPaterno = strings.TrimSpace(f.ApellidoPaterno)
	f.ApellidoMaterno = strings.TrimSpace(f.ApellidoMaterno)
	f.Correo = strings.TrimSpace(f.Correo)
	f.CorreoSecretaria = strings.TrimSpace(f.CorreoSecretaria)
	f.Cargo = strings.TrimSpace(f.Cargo)
	f.Institucion = strings.TrimSpace(f.Institucion)
	f.Telefono = strings.TrimSpace(f.Telefono)
}

// Apply overwrites every field of usuario, clearing the assistant email
// when the form leaves it blank.
func (f *UsuarioForm) Apply(usuario *models.Usuario) {
	usuario.Nombre = f.Nombre
	usuario.ApellidoPaterno = f.ApellidoPaterno
	usuario.ApellidoMaterno = f.ApellidoMaterno
	usuario.Correo = f.Correo
	usuario.Cargo = f.Cargo
	usuario.Institucion = f.Institucion
	usuario.Telefono = f.Telefono
	usuario.CorreoSecretaria = nil
	if f.CorreoSecretaria != "" {
		secretaria := f.CorreoSecretaria
		usuario.CorreoSecretaria = &secretaria
	}
}

func NewUsuarioFormFrom(usuario *models.Usuario) *UsuarioForm {
	return &UsuarioForm{
		Nombre:           usuario.Nombre,
		ApellidoPaterno:  usuario.ApellidoPaterno,
		ApellidoMaterno:  usuario.ApellidoMaterno,
		Correo:           usuario.Correo,
		CorreoSecretaria: usuario.SecretariaOrEmpty(),
		Cargo:            usuario.Cargo,
		Institucion:      usuario.Institucion,
		Telefono:         usuario.Telefono,
	}
}
