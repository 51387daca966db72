package models

// Admin is a staff account allowed to log in. Credentials come from
// configuration, never from the usuarios table.
type Admin struct {
	Correo       string `json:"correo"`
	PasswordHash string `json:"-"`
}
