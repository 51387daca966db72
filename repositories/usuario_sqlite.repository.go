package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/CPU-commits/Intranet_BDirectorio/models"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

type SqliteUsuarioRepository struct {
	DB *sqlx.DB
}

func NewSqliteUsuarioRepository(db *sqlx.DB) *SqliteUsuarioRepository {
	return &SqliteUsuarioRepository{DB: db}
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

func (r *SqliteUsuarioRepository) List(ctx context.Context, filter UsuarioFilter) ([]models.Usuario, error) {
	query, args, err := filter.sqlQuery()
	if err != nil {
		return nil, err
	}
	usuarios := []models.Usuario{}
	if err := r.DB.SelectContext(ctx, &usuarios, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *SqliteUsuarioRepository) Distinct(ctx context.Context, field string) ([]string, error) {
	if err := checkField(field); err != nil {
		return nil, err
	}
	values := []string{}
	query := fmt.Sprintf(
		"SELECT DISTINCT %[1]s FROM usuarios WHERE %[1]s <> '' ORDER BY %[1]s",
		field,
	)
	if err := r.DB.SelectContext(ctx, &values, query); err != nil {
		return nil, err
	}
	return values, nil
}

func (r *SqliteUsuarioRepository) GetByID(ctx context.Context, id int64) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.DB.GetContext(ctx, &usuario, selectUsuarios+" WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *SqliteUsuarioRepository) CorreoExists(ctx context.Context, correo string, excludeID int64) (bool, error) {
	var count int
	err := r.DB.GetContext(
		ctx,
		&count,
		"SELECT COUNT(*) FROM usuarios WHERE correo = ? AND id <> ?",
		correo,
		excludeID,
	)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SqliteUsuarioRepository) Create(ctx context.Context, usuario *models.Usuario) error {
	result, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO usuarios (nombre, apellido_paterno, apellido_materno, correo,
			cargo, institucion, telefono, correo_secretaria)
		VALUES (:nombre, :apellido_paterno, :apellido_materno, :correo,
			:cargo, :institucion, :telefono, :correo_secretaria)
	`, usuario)
	if isUniqueViolation(err) {
		return ErrDuplicateCorreo
	}
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	usuario.ID = id
	return nil
}

func (r *SqliteUsuarioRepository) Update(ctx context.Context, usuario *models.Usuario) error {
	result, err := r.DB.NamedExecContext(ctx, `
		UPDATE usuarios SET nombre = :nombre, apellido_paterno = :apellido_paterno,
			apellido_materno = :apellido_materno, correo = :correo, cargo = :cargo,
			institucion = :institucion, telefono = :telefono,
			correo_secretaria = :correo_secretaria
		WHERE id = :id
	`, usuario)
	if isUniqueViolation(err) {
		return ErrDuplicateCorreo
	}
	if err != nil {
		return err
	}
	return expectAffected(result)
}

func (r *SqliteUsuarioRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM usuarios WHERE id = ?", id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

func (r *SqliteUsuarioRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM usuarios"); err != nil {
		return 0, err
	}
	return count, nil
}

func expectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
