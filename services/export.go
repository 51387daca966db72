package services

import (
	"fmt"
	"io"
	"time"

	"github.com/CPU-commits/Intranet_BDirectorio/funct"
	"github.com/CPU-commits/Intranet_BDirectorio/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	EXPORT_SHEET     = "Usuarios"
	EXPORT_FILENAME  = "usuarios"
	XLSX_CONTENT     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	PDF_CONTENT      = "application/pdf"
	PDF_COLUMN_WIDTH = 34.0
	PDF_ROW_HEIGHT   = 6.0
)

// Column order and labels are part of the download contract.
var ExportHeaders = []string{
	"Nombre",
	"Apellido Paterno",
	"Apellido Materno",
	"Cargo",
	"Institución",
	"Correo",
	"Correo Secretaría",
	"Teléfono",
}

func exportRow(usuario models.Usuario) ([]interface{}, error) {
	return []interface{}{
		usuario.Nombre,
		usuario.ApellidoPaterno,
		usuario.ApellidoMaterno,
		usuario.Cargo,
		usuario.Institucion,
		usuario.Correo,
		usuario.SecretariaOrEmpty(),
		usuario.Telefono,
	}, nil
}

func headerRow() []interface{} {
	headers := make([]interface{}, len(ExportHeaders))
	for i, header := range ExportHeaders {
		headers[i] = header
	}
	return headers
}

func ExportExcel(usuarios []models.Usuario, w io.Writer) error {
	rows, err := funct.Map(usuarios, exportRow)
	if err != nil {
		return err
	}
	// Init file
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", EXPORT_SHEET); err != nil {
		return err
	}
	// Set columns
	headers := headerRow()
	if err := file.SetSheetRow(EXPORT_SHEET, "A1", &headers); err != nil {
		return err
	}
	// Set values
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := row
		if err := file.SetSheetRow(EXPORT_SHEET, cell, &row); err != nil {
			return err
		}
	}
	return file.Write(w)
}

func ExportPDF(usuarios []models.Usuario, w io.Writer) error {
	rows, err := funct.Map(usuarios, exportRow)
	if err != nil {
		return err
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 12)
	pdf.AddPage()
	pdf.Text(5, 10, tr("Directorio de usuarios"))
	pdf.SetFont("Arial", "", 8)
	pdf.Text(5, 15, tr(fmt.Sprintf("Emitido el %s", time.Now().Format("2006-01-02"))))

	_, height := pdf.GetPageSize()
	y := 20.0
	writeRow := func(values []interface{}, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 7)
		for i, value := range values {
			pdf.SetXY(5+float64(i)*PDF_COLUMN_WIDTH, y)
			pdf.CellFormat(
				PDF_COLUMN_WIDTH,
				PDF_ROW_HEIGHT,
				tr(fmt.Sprint(value)),
				"1",
				0,
				"",
				false,
				0,
				"",
			)
		}
		y += PDF_ROW_HEIGHT
	}

	headers := headerRow()
	writeRow(headers, true)
	for _, row := range rows {
		if y+PDF_ROW_HEIGHT > height-10 {
			pdf.AddPage()
			y = 10
			writeRow(headers, true)
		}
		writeRow(row, false)
	}
	return pdf.Output(w)
}
