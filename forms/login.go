package forms

// LoginForm is read from the raw request fields; it carries no validation
// tags so a malformed email fails the same way a wrong password does.
type LoginForm struct {
	Correo     string `form:"correo"`
	Contrasena string `form:"contrasena"`
}
