package controllers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/CPU-commits/Intranet_BDirectorio/models"
	"github.com/CPU-commits/Intranet_BDirectorio/services"
	"github.com/CPU-commits/Intranet_BDirectorio/views"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	EXPORT_PATH     = "/exportar"
	EXPORT_PDF_PATH = "/exportar/pdf"
)

type ExportController struct {
	usuarios *services.UsuariosService
	logger   *zap.Logger
}

func NewExportController(usuarios *services.UsuariosService, logger *zap.Logger) *ExportController {
	return &ExportController{
		usuarios: usuarios,
		logger:   logger,
	}
}

func (e *ExportController) export(
	c *gin.Context,
	contentType string,
	extension string,
	write func(usuarios []models.Usuario, w io.Writer) error,
) {
	filter := services.ExportFilter{
		Institucion: c.Query("institucion"),
		Cargo:       c.Query("cargo"),
	}
	usuarios, err := e.usuarios.Export(c.Request.Context(), filter)
	if err != nil {
		views.RenderError(c, err.StatusCode)
		return
	}

	c.Writer.Header().Set("Content-type", contentType)
	c.Writer.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%s.%s", services.EXPORT_FILENAME, extension),
	)
	c.Status(http.StatusOK)
	if err := write(usuarios, c.Writer); err != nil {
		// Headers are gone by now, the client gets a truncated file
		e.logger.Error("export failed", zap.String("format", extension), zap.Error(err))
	}
}

func (e *ExportController) Excel(c *gin.Context) {
	e.export(c, services.XLSX_CONTENT, "xlsx", services.ExportExcel)
}

func (e *ExportController) PDF(c *gin.Context) {
	e.export(c, services.PDF_CONTENT, "pdf", services.ExportPDF)
}
