package smaps

import (
	"github.com/CPU-commits/Intranet_BDirectorio/forms"
	"github.com/CPU-commits/Intranet_BDirectorio/services"
)

// Template data, one struct per page.

type IndexMap struct {
	Usuario   string
	CSRFToken string
	*services.ListResult
	SentinelInstitucion string
	SentinelCargo       string
	ExportURL           string
	ExportPDFURL        string
}

type UsuarioFormMap struct {
	Usuario   string
	CSRFToken string
	Title     string
	Action    string
	Form      *forms.UsuarioForm
	Errors    map[string]string
}

type LoginMap struct {
	CSRFToken string
	Correo    string
	Error     string
}

type ErrorMap struct {
	Status  int
	Title   string
	Message string
}
