package controllers

import (
	"net/http"

	"github.com/CPU-commits/Intranet_BDirectorio/forms"
	"github.com/CPU-commits/Intranet_BDirectorio/middlewares"
	"github.com/CPU-commits/Intranet_BDirectorio/models"
	"github.com/CPU-commits/Intranet_BDirectorio/services"
	"github.com/CPU-commits/Intranet_BDirectorio/smaps"
	"github.com/CPU-commits/Intranet_BDirectorio/views"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type UsuariosController struct {
	usuarios *services.UsuariosService
}

func NewUsuariosController(usuarios *services.UsuariosService) *UsuariosController {
	return &UsuariosController{
		usuarios: usuarios,
	}
}

// bindUsuarioForm maps the posted fields without validating them; the
// service validates after trimming.
func bindUsuarioForm(c *gin.Context) (*forms.UsuarioForm, error) {
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	form := &forms.UsuarioForm{}
	if err := binding.MapFormWithTag(form, c.Request.PostForm, "form"); err != nil {
		return nil, err
	}
	return form, nil
}

func (u *UsuariosController) renderForm(
	c *gin.Context,
	status int,
	page string,
	title string,
	action string,
	form *forms.UsuarioForm,
	errors map[string]string,
) {
	c.HTML(status, page, &smaps.UsuarioFormMap{
		Usuario:   c.GetString(middlewares.USUARIO_KEY),
		CSRFToken: c.GetString(middlewares.CSRF_KEY),
		Title:     title,
		Action:    action,
		Form:      form,
		Errors:    errors,
	})
}

func (u *UsuariosController) Index(c *gin.Context) {
	selection := services.ListSelection{
		Instituciones: c.QueryArray("institucion"),
		Cargos:        c.QueryArray("cargo"),
	}
	result, err := u.usuarios.List(c.Request.Context(), selection)
	if err != nil {
		views.RenderError(c, err.StatusCode)
		return
	}
	exportFilter := selection.ExportFilter()

	c.HTML(http.StatusOK, "index.html", &smaps.IndexMap{
		Usuario:             c.GetString(middlewares.USUARIO_KEY),
		CSRFToken:           c.GetString(middlewares.CSRF_KEY),
		ListResult:          result,
		SentinelInstitucion: models.SENTINEL_INSTITUCION,
		SentinelCargo:       models.SENTINEL_CARGO,
		ExportURL:           exportFilter.URL(EXPORT_PATH),
		ExportPDFURL:        exportFilter.URL(EXPORT_PDF_PATH),
	})
}

func (u *UsuariosController) NewForm(c *gin.Context) {
	u.renderForm(c, http.StatusOK, "agregar.html", "Agregar usuario", "/agregar", &forms.UsuarioForm{}, nil)
}

func (u *UsuariosController) Create(c *gin.Context) {
	form, bindErr := bindUsuarioForm(c)
	if bindErr != nil {
		views.RenderError(c, http.StatusBadRequest)
		return
	}
	if _, err := u.usuarios.Create(c.Request.Context(), form); err != nil {
		if err.Fields != nil {
			u.renderForm(c, err.StatusCode, "agregar.html", "Agregar usuario", "/agregar", form, err.Fields)
			return
		}
		views.RenderError(c, err.StatusCode)
		return
	}
	c.Redirect(http.StatusFound, services.LIST_PATH)
}

func (u *UsuariosController) EditForm(c *gin.Context) {
	id, err := services.ParseID(c.Param("id"))
	if err != nil {
		views.RenderError(c, err.StatusCode)
		return
	}
	usuario, err := u.usuarios.Get(c.Request.Context(), id)
	if err != nil {
		views.RenderError(c, err.StatusCode)
		return
	}
	u.renderForm(
		c,
		http.StatusOK,
		"editar.html",
		"Editar usuario",
		c.Request.URL.Path,
		forms.NewUsuarioFormFrom(usuario),
		nil,
	)
}

func (u *UsuariosController) Update(c *gin.Context) {
	id, err := services.ParseID(c.Param("id"))
	if err != nil {
		views.RenderError(c, err.StatusCode)
		return
	}
	form, bindErr := bindUsuarioForm(c)
	if bindErr != nil {
		views.RenderError(c, http.StatusBadRequest)
		return
	}
	if _, err := u.usuarios.Update(c.Request.Context(), id, form); err != nil {
		if err.Fields != nil {
			u.renderForm(c, err.StatusCode, "editar.html", "Editar usuario", c.Request.URL.Path, form, err.Fields)
			return
		}
		views.RenderError(c, err.StatusCode)
		return
	}
	c.Redirect(http.StatusFound, services.LIST_PATH)
}

func (u *UsuariosController) Delete(c *gin.Context) {
	id, err := services.ParseID(c.Param("id"))
	if err != nil {
		views.RenderError(c, err.StatusCode)
		return
	}
	if err := u.usuarios.Delete(c.Request.Context(), id); err != nil {
		views.RenderError(c, err.StatusCode)
		return
	}
	c.Redirect(http.StatusFound, services.LIST_PATH)
}
