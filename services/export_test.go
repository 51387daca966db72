package services

import (
	"bytes"
	"testing"

	"github.com/CPU-commits/Intranet_BDirectorio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportFixture() []models.Usuario {
	secretaria := "sec@uvm.cl"
	return []models.Usuario{
		{
			ID:               1,
			Nombre:           "Boris",
			ApellidoPaterno:  "Herrera",
			ApellidoMaterno:  "Díaz",
			Correo:           "boris.herrera@uvm.cl",
			Cargo:            "Director",
			Institucion:      "UVM",
			Telefono:         "322462000",
			CorreoSecretaria: &secretaria,
		},
		{
			ID:              2,
			Nombre:          "Ana",
			ApellidoPaterno: "Soto",
			ApellidoMaterno: "Rojas",
			Correo:          "ana@pucv.cl",
			Cargo:           "Decana",
			Institucion:     "PUCV",
			Telefono:        "322273000",
		},
	}
}

func TestExportExcel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportExcel(exportFixture(), &buf))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{EXPORT_SHEET}, file.GetSheetList())
	rows, err := file.GetRows(EXPORT_SHEET)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{
		"Nombre",
		"Apellido Paterno",
		"Apellido Materno",
		"Cargo",
		"Institución",
		"Correo",
		"Correo Secretaría",
		"Teléfono",
	}, rows[0])
	assert.Equal(t, []string{
		"Boris", "Herrera", "Díaz", "Director", "UVM",
		"boris.herrera@uvm.cl", "sec@uvm.cl", "322462000",
	}, rows[1])
	// GetRows keeps inner empty cells
	assert.Equal(t, "", rows[2][6])
	assert.Equal(t, "322273000", rows[2][7])
}

func TestExportExcelEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportExcel(nil, &buf))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(EXPORT_SHEET)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExportPDF(t *testing.T) {
	var buf bytes.Buffer
	usuarios := exportFixture()
	// Enough rows to force a second page
	for i := 0; i < 40; i++ {
		usuarios = append(usuarios, usuarios[1])
	}
	require.NoError(t, ExportPDF(usuarios, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
