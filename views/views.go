package views

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/CPU-commits/Intranet_BDirectorio/funct"
	"github.com/CPU-commits/Intranet_BDirectorio/smaps"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templates embed.FS

var errorPages = map[int]smaps.ErrorMap{
	http.StatusBadRequest: {
		Title:   "400 - Solicitud inválida",
		Message: "No fue posible leer los datos enviados.",
	},
	http.StatusNotFound: {
		Title:   "404 - Página no encontrada",
		Message: "El recurso solicitado no existe.",
	},
	http.StatusForbidden: {
		Title:   "403 - Acceso denegado",
		Message: "No tienes permiso para realizar esta acción.",
	},
	http.StatusTooManyRequests: {
		Title:   "429 - Demasiadas solicitudes",
		Message: "Intenta nuevamente en unos minutos.",
	},
	http.StatusServiceUnavailable: {
		Title:   "503 - Servicio no disponible",
		Message: "No fue posible acceder a los datos. Intenta nuevamente.",
	},
}

// Field is one labelled input of the usuario form.
type Field struct {
	Name  string
	Label string
	Type  string
	Value string
	Error string
}

func field(name, label, inputType, value string, errors map[string]string) Field {
	return Field{
		Name:  name,
		Label: label,
		Type:  inputType,
		Value: value,
		Error: errors[name],
	}
}

func contains(values []string, value string) bool {
	return funct.Some(values, func(v string) bool {
		return v == value
	})
}

// Templates parses every embedded page.
func Templates() *template.Template {
	return template.Must(
		template.New("").
			Funcs(template.FuncMap{
				"contains": contains,
				"field":    field,
			}).
			ParseFS(templates, "templates/*.html"),
	)
}

// RenderError writes the error page for status and aborts the chain.
func RenderError(ctx *gin.Context, status int) {
	page, ok := errorPages[status]
	if !ok {
		page = smaps.ErrorMap{
			Title:   "500 - Error interno del servidor",
			Message: "Ocurrió un error inesperado.",
		}
	}
	page.Status = status
	ctx.HTML(status, "error.html", page)
	ctx.Abort()
}
