package dbconnections

import (
	"context"
	"os"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const testingMongoTimeout = 10 * time.Second

// InvalidationsDBTestingConnection points at a throwaway database that is
// dropped when the test ends.
type InvalidationsDBTestingConnection struct {
	database string
	client   *mongo.Client
}

var _ InvalidationsDBConnection = (*InvalidationsDBTestingConnection)(nil)

// NewInvalidationsDBTestingConnection connects to IMGLIDE_TEST_MONGO_URI and
// skips the test when it is not set.
func NewInvalidationsDBTestingConnection(t *testing.T) *InvalidationsDBTestingConnection {
	t.Helper()

	uri := os.Getenv("IMGLIDE_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("IMGLIDE_TEST_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), testingMongoTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("cannot connect to mongodb: %s", err)
	}

	database, err := unusedDatabaseName(ctx, client)
	if err != nil {
		client.Disconnect(ctx)
		t.Fatalf("cannot pick test database: %s", err)
	}

	conn := &InvalidationsDBTestingConnection{database, client}
	t.Cleanup(func() {
		conn.drop(t)
	})

	return conn
}

func (c *InvalidationsDBTestingConnection) Collection(name string) *mongo.Collection {
	return c.client.Database(c.database).Collection(name)
}

func (c *InvalidationsDBTestingConnection) drop(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), testingMongoTimeout)
	defer cancel()
	defer c.client.Disconnect(ctx)

	if err := c.client.Database(c.database).Drop(ctx); err != nil {
		t.Errorf("cannot drop test database %s: %s", c.database, err)
	}
}

func unusedDatabaseName(ctx context.Context, client *mongo.Client) (string, error) {
	existing, err := client.ListDatabaseNames(ctx, bson.M{})
	if err != nil {
		return "", err
	}

	for {
		name := "imglide-test-" + uuid.NewString()
		if !slices.Contains(existing, name) {
			return name, nil
		}
	}
}
