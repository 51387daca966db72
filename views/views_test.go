package views

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CPU-commits/Intranet_BDirectorio/forms"
	"github.com/CPU-commits/Intranet_BDirectorio/models"
	"github.com/CPU-commits/Intranet_BDirectorio/services"
	"github.com/CPU-commits/Intranet_BDirectorio/smaps"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexTemplate(t *testing.T) {
	secretaria := "sec@uvm.cl"
	selection := services.ListSelection{Instituciones: []string{"UVM"}}
	institucionChips, cargoChips := selection.Chips()
	data := &smaps.IndexMap{
		Usuario:   "admin@uvm.cl",
		CSRFToken: "token",
		ListResult: &services.ListResult{
			Usuarios: []models.Usuario{{
				ID:               7,
				Nombre:           "Ana",
				Correo:           "ana@uvm.cl",
				Institucion:      "UVM",
				CorreoSecretaria: &secretaria,
			}},
			Facets: services.Facets{
				Instituciones: []string{"PUCV", "UVM"},
				Cargos:        []string{"Director"},
			},
			Selection:        selection,
			InstitucionChips: institucionChips,
			CargoChips:       cargoChips,
		},
		SentinelInstitucion: models.SENTINEL_INSTITUCION,
		SentinelCargo:       models.SENTINEL_CARGO,
		ExportURL:           "/exportar?institucion=UVM",
		ExportPDFURL:        "/exportar/pdf?institucion=UVM",
	}

	var out bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&out, "index.html", data))
	body := out.String()
	assert.Contains(t, body, `<option value="UVM" selected>UVM</option>`)
	assert.Contains(t, body, `<option value="PUCV">PUCV</option>`)
	assert.Contains(t, body, `<option value="Todas">Todas</option>`)
	assert.Contains(t, body, `href="/eliminar/7?csrf_token=token"`)
	assert.Contains(t, body, `href="/editar/7"`)
	assert.Contains(t, body, "sec@uvm.cl")
	assert.Contains(t, body, `href="/"`)
}

func TestUsuarioFormTemplates(t *testing.T) {
	for _, page := range []string{"agregar.html", "editar.html"} {
		var out bytes.Buffer
		err := Templates().ExecuteTemplate(&out, page, &smaps.UsuarioFormMap{
			Usuario:   "admin@uvm.cl",
			CSRFToken: "token",
			Title:     "Agregar usuario",
			Action:    "/agregar",
			Form:      &forms.UsuarioForm{Nombre: "Ana"},
			Errors:    map[string]string{"correo": "El correo es obligatorio."},
		})
		require.NoError(t, err, page)
		body := out.String()
		assert.Contains(t, body, `name="csrf_token" value="token"`, page)
		assert.Contains(t, body, `name="nombre" type="text" value="Ana"`, page)
		assert.Contains(t, body, "El correo es obligatorio.", page)
	}
}

func TestRenderError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := map[int]string{
		http.StatusNotFound:            "404 - Página no encontrada",
		http.StatusForbidden:           "403 - Acceso denegado",
		http.StatusServiceUnavailable:  "503 - Servicio no disponible",
		http.StatusInternalServerError: "500 - Error interno del servidor",
	}
	for status, title := range cases {
		w := httptest.NewRecorder()
		ctx, engine := gin.CreateTestContext(w)
		engine.SetHTMLTemplate(Templates())

		RenderError(ctx, status)

		assert.Equal(t, status, w.Code)
		assert.Contains(t, w.Body.String(), title)
		assert.True(t, ctx.IsAborted())
	}
}
