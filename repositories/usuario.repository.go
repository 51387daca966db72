package repositories

import (
	"context"
	"errors"

	"github.com/CPU-commits/Intranet_BDirectorio/models"
)

var (
	ErrNotFound        = errors.New("usuario not found")
	ErrDuplicateCorreo = errors.New("correo already registered")
	ErrUnknownField    = errors.New("unknown facet field")
)

// Facet fields
const (
	FIELD_INSTITUCION = "institucion"
	FIELD_CARGO       = "cargo"
)

// UsuarioFilter restricts a listing by membership. An empty slice leaves
// that dimension unrestricted; both dimensions are combined with AND.
type UsuarioFilter struct {
	Instituciones []string
	Cargos        []string
}

type UsuarioRepository interface {
	// List returns matching records ordered by id.
	List(ctx context.Context, filter UsuarioFilter) ([]models.Usuario, error)
	// Distinct returns the non-empty values of a facet field, sorted.
	Distinct(ctx context.Context, field string) ([]string, error)
	GetByID(ctx context.Context, id int64) (*models.Usuario, error)
	// CorreoExists reports whether another record (id != excludeID) uses correo.
	CorreoExists(ctx context.Context, correo string, excludeID int64) (bool, error)
	Create(ctx context.Context, usuario *models.Usuario) error
	Update(ctx context.Context, usuario *models.Usuario) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

func checkField(field string) error {
	if field != FIELD_INSTITUCION && field != FIELD_CARGO {
		return ErrUnknownField
	}
	return nil
}

var (
	_ UsuarioRepository = (*SqliteUsuarioRepository)(nil)
	_ UsuarioRepository = (*MongoUsuarioRepository)(nil)
)
