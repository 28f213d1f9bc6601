package cacherepositories

import (
	"context"
	"errors"

	dbconnections "github.com/thebartekbanach/imglide/pkg/connections"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const invalidationsCollection = "invalidations"

type invalidationRepository struct {
	conn dbconnections.InvalidationsDBConnection
}

var _ InvalidationsRepository = (*invalidationRepository)(nil)

func NewInvalidationsRepository(conn dbconnections.InvalidationsDBConnection) InvalidationsRepository {
	return &invalidationRepository{conn}
}

func (r *invalidationRepository) CreateInvalidation(ctx context.Context, invalidation InvalidationModel) error {
	if len(invalidation.RequestedInvalidations) == 0 {
		return ErrNothingToInvalidate
	}

	coll := r.conn.Collection(invalidationsCollection)
	_, err := coll.InsertOne(ctx, invalidation)
	return err
}

func (r *invalidationRepository) GetLatestInvalidation(ctx context.Context, disk string) (InvalidationModel, error) {
	coll := r.conn.Collection(invalidationsCollection)
	opts := options.FindOne().SetSort(bson.D{{Key: "invalidationDate", Value: -1}})
	result := coll.FindOne(ctx, bson.D{{Key: "disk", Value: disk}}, opts)

	if result.Err() != nil {
		if result.Err() == mongo.ErrNoDocuments {
			return InvalidationModel{}, ErrInvalidationNotFound
		}

		return InvalidationModel{}, result.Err()
	}

	var invalidation InvalidationModel
	err := result.Decode(&invalidation)
	return invalidation, err
}

var (
	ErrNothingToInvalidate  = errors.New("no images requested for invalidation")
	ErrInvalidationNotFound = errors.New("invalidation not found")
)
