package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/CPU-commits/Intranet_BDirectorio/forms"
	"github.com/CPU-commits/Intranet_BDirectorio/models"
	"github.com/CPU-commits/Intranet_BDirectorio/repositories"
	"github.com/CPU-commits/Intranet_BDirectorio/res"
	"github.com/CPU-commits/Intranet_BDirectorio/utils"
	"go.uber.org/zap"
)

// Listing, institucion facet and cargo facet
const LIST_QUERIES = 3

type UsuariosService struct {
	repo   repositories.UsuarioRepository
	logger *zap.Logger
}

func NewUsuariosService(repo repositories.UsuarioRepository, logger *zap.Logger) *UsuariosService {
	return &UsuariosService{
		repo:   repo,
		logger: logger,
	}
}

func (u *UsuariosService) storeError(err error) *res.ErrorRes {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusNotFound,
		}
	case errors.Is(err, repositories.ErrDuplicateCorreo):
		return &res.ErrorRes{
			Err:        err,
			StatusCode: http.StatusUnprocessableEntity,
			Fields:     map[string]string{"correo": forms.MSG_CORREO_DUPLICADO},
		}
	}
	u.logger.Error("usuarios store failure", zap.Error(err))
	return &res.ErrorRes{
		Err:        err,
		StatusCode: http.StatusServiceUnavailable,
	}
}

// ParseID rejects anything that is not a positive integer as not found.
func ParseID(raw string) (int64, *res.ErrorRes) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &res.ErrorRes{
			Err:        fmt.Errorf("invalid usuario id %q", raw),
			StatusCode: http.StatusNotFound,
		}
	}
	return id, nil
}

// List runs the filtered query and both facet queries concurrently.
func (u *UsuariosService) List(ctx context.Context, selection ListSelection) (*ListResult, *res.ErrorRes) {
	var usuarios []models.Usuario
	var instituciones, cargos []string

	errRes := utils.Concurrency(ctx, LIST_QUERIES, LIST_QUERIES, func(
		ctx context.Context,
		index int,
		setError func(errRes *res.ErrorRes),
	) {
		var err error
		switch index {
		case 0:
			usuarios, err = u.repo.List(ctx, selection.Filter())
		case 1:
			instituciones, err = u.repo.Distinct(ctx, repositories.FIELD_INSTITUCION)
		case 2:
			cargos, err = u.repo.Distinct(ctx, repositories.FIELD_CARGO)
		}
		if err != nil {
			setError(u.storeError(err))
		}
	})
	if errRes != nil {
		return nil, errRes
	}
	institucionChips, cargoChips := selection.Chips()

	return &ListResult{
		Usuarios: usuarios,
		Facets: Facets{
			Instituciones: instituciones,
			Cargos:        cargos,
		},
		Selection:        selection,
		InstitucionChips: institucionChips,
		CargoChips:       cargoChips,
	}, nil
}

func (u *UsuariosService) Get(ctx context.Context, id int64) (*models.Usuario, *res.ErrorRes) {
	usuario, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, u.storeError(err)
	}
	return usuario, nil
}

// validate sanitizes the form, runs the field rules and then checks correo
// uniqueness against every record except excludeID.
func (u *UsuariosService) validate(
	ctx context.Context,
	form *forms.UsuarioForm,
	excludeID int64,
) *res.ErrorRes {
	form.Sanitize()
	if fields := forms.Validate(form); fields != nil {
		return &res.ErrorRes{
			Err:        errors.New("invalid usuario form"),
			StatusCode: http.StatusUnprocessableEntity,
			Fields:     fields,
		}
	}
	exists, err := u.repo.CorreoExists(ctx, form.Correo, excludeID)
	if err != nil {
		return u.storeError(err)
	}
	if exists {
		return u.storeError(repositories.ErrDuplicateCorreo)
	}
	return nil
}

func (u *UsuariosService) Create(ctx context.Context, form *forms.UsuarioForm) (*models.Usuario, *res.ErrorRes) {
	if errRes := u.validate(ctx, form, 0); errRes != nil {
		return nil, errRes
	}
	usuario := &models.Usuario{}
	form.Apply(usuario)
	if err := u.repo.Create(ctx, usuario); err != nil {
		return nil, u.storeError(err)
	}
	u.logger.Info("usuario created", zap.Int64("id", usuario.ID))
	return usuario, nil
}

func (u *UsuariosService) Update(
	ctx context.Context,
	id int64,
	form *forms.UsuarioForm,
) (*models.Usuario, *res.ErrorRes) {
	usuario, errRes := u.Get(ctx, id)
	if errRes != nil {
		return nil, errRes
	}
	if errRes := u.validate(ctx, form, id); errRes != nil {
		return nil, errRes
	}
	form.Apply(usuario)
	if err := u.repo.Update(ctx, usuario); err != nil {
		return nil, u.storeError(err)
	}
	u.logger.Info("usuario updated", zap.Int64("id", usuario.ID))
	return usuario, nil
}

func (u *UsuariosService) Delete(ctx context.Context, id int64) *res.ErrorRes {
	if err := u.repo.Delete(ctx, id); err != nil {
		return u.storeError(err)
	}
	u.logger.Info("usuario deleted", zap.Int64("id", id))
	return nil
}

func (u *UsuariosService) Export(ctx context.Context, filter ExportFilter) ([]models.Usuario, *res.ErrorRes) {
	usuarios, err := u.repo.List(ctx, filter.Filter())
	if err != nil {
		return nil, u.storeError(err)
	}
	return usuarios, nil
}
