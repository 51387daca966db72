package repositories

import (
	"strings"

	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/bson"
)

const selectUsuarios = `SELECT id, nombre, apellido_paterno, apellido_materno, correo,
	cargo, institucion, telefono, correo_secretaria FROM usuarios`

// sqlQuery expands the filter into a SELECT with IN clauses. The returned
// query still uses '?' bindvars.
func (f UsuarioFilter) sqlQuery() (string, []interface{}, error) {
	var conditions []string
	var args []interface{}

	if len(f.Instituciones) > 0 {
		conditions = append(conditions, "institucion IN (?)")
		args = append(args, f.Instituciones)
	}
	if len(f.Cargos) > 0 {
		conditions = append(conditions, "cargo IN (?)")
		args = append(args, f.Cargos)
	}

	query := selectUsuarios
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"
	if len(args) == 0 {
		return query, nil, nil
	}
	return sqlx.In(query, args...)
}

func (f UsuarioFilter) bsonFilter() bson.D {
	filter := bson.D{}
	if len(f.Instituciones) > 0 {
		filter = append(filter, bson.E{
			Key:   "institucion",
			Value: bson.M{"$in": f.Instituciones},
		})
	}
	if len(f.Cargos) > 0 {
		filter = append(filter, bson.E{
			Key:   "cargo",
			Value: bson.M{"$in": f.Cargos},
		})
	}
	return filter
}
