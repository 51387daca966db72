package models

const USUARIOS_TABLE = "usuarios"

// Usuario is one person in the directory.
type Usuario struct {
	ID               int64   `json:"id" db:"id" bson:"_id"`
	Nombre           string  `json:"nombre" db:"nombre" bson:"nombre"`
	ApellidoPaterno  string  `json:"apellido_paterno" db:"apellido_paterno" bson:"apellido_paterno"`
	ApellidoMaterno  string  `json:"apellido_materno" db:"apellido_materno" bson:"apellido_materno"`
	Correo           string  `json:"correo" db:"correo" bson:"correo"`
	Cargo            string  `json:"cargo" db:"cargo" bson:"cargo"`
	Institucion      string  `json:"institucion" db:"institucion" bson:"institucion"`
	Telefono         string  `json:"telefono" db:"telefono" bson:"telefono"`
	CorreoSecretaria *string `json:"correo_secretaria,omitempty" db:"correo_secretaria" bson:"correo_secretaria,omitempty"`
}

// SecretariaOrEmpty returns the assistant email, or "" when absent.
func (u *Usuario) SecretariaOrEmpty() string {
	if u.CorreoSecretaria == nil {
		return ""
	}
	return *u.CorreoSecretaria
}

// Filter sentinels meaning "no restriction" on a dimension.
const (
	SENTINEL_INSTITUCION = "Todas"
	SENTINEL_CARGO       = "Todos"
)
