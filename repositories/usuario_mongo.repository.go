package repositories

import (
	"context"
	"errors"
	"sort"

	"github.com/CPU-commits/Intranet_BDirectorio/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const COUNTERS_COLLECTION = "counters"

type MongoUsuarioRepository struct {
	usuarios *mongo.Collection
	counters *mongo.Collection
}

// NewMongoUsuarioRepository also makes sure the unique correo index exists.
func NewMongoUsuarioRepository(ctx context.Context, database *mongo.Database) (*MongoUsuarioRepository, error) {
	r := &MongoUsuarioRepository{
		usuarios: database.Collection(models.USUARIOS_TABLE),
		counters: database.Collection(COUNTERS_COLLECTION),
	}
	_, err := r.usuarios.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "correo", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "institucion", Value: 1}}},
		{Keys: bson.D{{Key: "cargo", Value: 1}}},
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *MongoUsuarioRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.D{{Key: "_id", Value: models.USUARIOS_TABLE}},
		bson.D{{Key: "$inc", Value: bson.M{"seq": 1}}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func (r *MongoUsuarioRepository) List(ctx context.Context, filter UsuarioFilter) ([]models.Usuario, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.usuarios.Find(ctx, filter.bsonFilter(), opts)
	if err != nil {
		return nil, err
	}
	usuarios := []models.Usuario{}
	if err := cursor.All(ctx, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *MongoUsuarioRepository) Distinct(ctx context.Context, field string) ([]string, error) {
	if err := checkField(field); err != nil {
		return nil, err
	}
	raw, err := r.usuarios.Distinct(ctx, field, bson.D{{
		Key:   field,
		Value: bson.M{"$ne": ""},
	}})
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(raw))
	for _, value := range raw {
		if s, ok := value.(string); ok {
			values = append(values, s)
		}
	}
	sort.Strings(values)
	return values, nil
}

func (r *MongoUsuarioRepository) GetByID(ctx context.Context, id int64) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.usuarios.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&usuario)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *MongoUsuarioRepository) CorreoExists(ctx context.Context, correo string, excludeID int64) (bool, error) {
	count, err := r.usuarios.CountDocuments(ctx, bson.D{
		{Key: "correo", Value: correo},
		{Key: "_id", Value: bson.M{"$ne": excludeID}},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoUsuarioRepository) Create(ctx context.Context, usuario *models.Usuario) error {
	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	usuario.ID = id
	if _, err := r.usuarios.InsertOne(ctx, usuario); err != nil {
		usuario.ID = 0
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateCorreo
		}
		return err
	}
	return nil
}

func (r *MongoUsuarioRepository) Update(ctx context.Context, usuario *models.Usuario) error {
	result, err := r.usuarios.ReplaceOne(ctx, bson.D{{Key: "_id", Value: usuario.ID}}, usuario)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateCorreo
	}
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoUsuarioRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.usuarios.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoUsuarioRepository) Count(ctx context.Context) (int64, error) {
	return r.usuarios.CountDocuments(ctx, bson.D{})
}
