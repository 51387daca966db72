package services

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/CPU-commits/Intranet_BDirectorio/db"
	"github.com/CPU-commits/Intranet_BDirectorio/forms"
	"github.com/CPU-commits/Intranet_BDirectorio/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsuariosService(t *testing.T) (*UsuariosService, repositories.UsuarioRepository) {
	t.Helper()
	conn, err := db.NewConnectionSqlite(filepath.Join(t.TempDir(), "usuarios.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	repo := repositories.NewSqliteUsuarioRepository(conn)
	return NewUsuariosService(repo, zap.NewNop()), repo
}

func newForm(correo, institucion, cargo string) *forms.UsuarioForm {
	return &forms.UsuarioForm{
		Nombre:          "Pamela",
		ApellidoPaterno: "Briceño",
		ApellidoMaterno: "Soto",
		Correo:          correo,
		Cargo:           cargo,
		Institucion:     institucion,
		Telefono:        "322462000",
	}
}

func TestCreateGrowsByOne(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestUsuariosService(t)

	form := newForm(" pamela@uvm.cl ", "UVM", "Directora")
	form.CorreoSecretaria = "sec@uvm.cl"
	usuario, errRes := service.Create(ctx, form)
	require.Nil(t, errRes)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	stored, errRes := service.Get(ctx, usuario.ID)
	require.Nil(t, errRes)
	assert.Equal(t, "pamela@uvm.cl", stored.Correo)
	assert.Equal(t, "Briceño", stored.ApellidoPaterno)
	assert.Equal(t, "sec@uvm.cl", stored.SecretariaOrEmpty())
}

func TestCreateRejectsInvalidForm(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestUsuariosService(t)

	form := newForm("no-es-correo", "UVM", "")
	_, errRes := service.Create(ctx, form)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusUnprocessableEntity, errRes.StatusCode)
	assert.Equal(t, "El correo no es válido.", errRes.Fields["correo"])
	assert.Equal(t, "El cargo es obligatorio.", errRes.Fields["cargo"])

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateRejectsDuplicateCorreo(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestUsuariosService(t)

	_, errRes := service.Create(ctx, newForm("pamela@uvm.cl", "UVM", "Directora"))
	require.Nil(t, errRes)

	_, errRes = service.Create(ctx, newForm("pamela@uvm.cl", "PUCV", "Decana"))
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusUnprocessableEntity, errRes.StatusCode)
	assert.Equal(t, forms.MSG_CORREO_DUPLICADO, errRes.Fields["correo"])

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUpdateOverwritesAllFields(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestUsuariosService(t)

	form := newForm("pamela@uvm.cl", "UVM", "Directora")
	form.CorreoSecretaria = "sec@uvm.cl"
	created, errRes := service.Create(ctx, form)
	require.Nil(t, errRes)

	// Same correo on the same record is not a duplicate
	edit := newForm("pamela@uvm.cl", "PUCV", "Decana")
	edit.Nombre = "Pamela Andrea"
	updated, errRes := service.Update(ctx, created.ID, edit)
	require.Nil(t, errRes)
	assert.Equal(t, created.ID, updated.ID)

	stored, errRes := service.Get(ctx, created.ID)
	require.Nil(t, errRes)
	assert.Equal(t, "Pamela Andrea", stored.Nombre)
	assert.Equal(t, "PUCV", stored.Institucion)
	assert.Equal(t, "Decana", stored.Cargo)
	assert.Nil(t, stored.CorreoSecretaria)
}

func TestUpdateAndDeleteNotFound(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestUsuariosService(t)

	_, errRes := service.Update(ctx, 42, newForm("x@uvm.cl", "UVM", "Director"))
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)

	errRes = service.Delete(ctx, 42)
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)

	_, errRes = ParseID("abc")
	require.NotNil(t, errRes)
	assert.Equal(t, http.StatusNotFound, errRes.StatusCode)
	id, errRes := ParseID("15")
	require.Nil(t, errRes)
	assert.Equal(t, int64(15), id)
}

func TestUpdateRejectsCorreoOfAnotherRecord(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestUsuariosService(t)

	_, errRes := service.Create(ctx, newForm("a@uvm.cl", "UVM", "Director"))
	require.Nil(t, errRes)
	b, errRes := service.Create(ctx, newForm("b@uvm.cl", "UVM", "Director"))
	require.Nil(t, errRes)

	_, errRes = service.Update(ctx, b.ID, newForm("a@uvm.cl", "UVM", "Director"))
	require.NotNil(t, errRes)
	assert.Equal(t, forms.MSG_CORREO_DUPLICADO, errRes.Fields["correo"])
}

func TestListAppliesSelection(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestUsuariosService(t)

	for _, f := range []*forms.UsuarioForm{
		newForm("a@uvm.cl", "UVM", "Director"),
		newForm("b@uvm.cl", "UVM", "Rector"),
		newForm("c@pucv.cl", "PUCV", "Director"),
		newForm("d@uch.cl", "UCH", "Decano"),
	} {
		_, errRes := service.Create(ctx, f)
		require.Nil(t, errRes)
	}

	result, errRes := service.List(ctx, ListSelection{})
	require.Nil(t, errRes)
	assert.Len(t, result.Usuarios, 4)
	assert.Equal(t, []string{"PUCV", "UCH", "UVM"}, result.Facets.Instituciones)
	assert.Equal(t, []string{"Decano", "Director", "Rector"}, result.Facets.Cargos)

	selection := ListSelection{
		Instituciones: []string{"UVM", "PUCV"},
		Cargos:        []string{"Director"},
	}
	result, errRes = service.List(ctx, selection)
	require.Nil(t, errRes)
	require.Len(t, result.Usuarios, 2)
	for _, usuario := range result.Usuarios {
		assert.Contains(t, selection.Instituciones, usuario.Institucion)
		assert.Equal(t, "Director", usuario.Cargo)
	}
	assert.Len(t, result.InstitucionChips, 2)
	assert.Len(t, result.CargoChips, 1)

	result, errRes = service.List(ctx, ListSelection{Instituciones: []string{"Todas", "UVM"}})
	require.Nil(t, errRes)
	assert.Len(t, result.Usuarios, 4)
}

func TestExportUsesExactMatch(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestUsuariosService(t)

	_, errRes := service.Create(ctx, newForm("a@uvm.cl", "UVM", "Director"))
	require.Nil(t, errRes)
	_, errRes = service.Create(ctx, newForm("b@pucv.cl", "PUCV", "Director"))
	require.Nil(t, errRes)

	usuarios, errRes := service.Export(ctx, ExportFilter{})
	require.Nil(t, errRes)
	assert.Len(t, usuarios, 2)

	usuarios, errRes = service.Export(ctx, ExportFilter{Institucion: "PUCV"})
	require.Nil(t, errRes)
	require.Len(t, usuarios, 1)
	assert.Equal(t, "b@pucv.cl", usuarios[0].Correo)

	usuarios, errRes = service.Export(ctx, ExportFilter{Institucion: "Todas"})
	require.Nil(t, errRes)
	assert.Empty(t, usuarios)
}
