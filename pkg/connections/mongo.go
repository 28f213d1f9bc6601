package dbconnections

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InvalidationsDBConfig struct {
	ConnectionString string
	Database         string
}

type InvalidationsDBProductionConnection struct {
	config InvalidationsDBConfig
	client *mongo.Client
}

var _ InvalidationsDBConnection = (*InvalidationsDBProductionConnection)(nil)

func NewInvalidationsDBProductionConnection(ctx context.Context, config InvalidationsDBConfig) (*InvalidationsDBProductionConnection, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.ConnectionString))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}

	if config.Database == "" {
		config.Database = "imglide"
	}

	return &InvalidationsDBProductionConnection{
		config: config,
		client: client,
	}, nil
}

func (c *InvalidationsDBProductionConnection) Collection(collectionName string) *mongo.Collection {
	return c.client.Database(c.config.Database).Collection(collectionName)
}

func (c *InvalidationsDBProductionConnection) Disconnect(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
