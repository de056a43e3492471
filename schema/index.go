package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func (m *MongoDBIndexer) IndexAll() error {
	if err := m.IndexMemberCollection(); err != nil {
		return err
	}
	if err := m.IndexRequestCollection(); err != nil {
		return err
	}
	if err := m.IndexActivityCollection(); err != nil {
		return err
	}
	if err := m.IndexBadgeCollection(); err != nil {
		return err
	}
	return m.IndexCategoryCollection()
}

func (m *MongoDBIndexer) IndexMemberCollection() error {
	if err := m.createIndex(MemberCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(MemberCollection, mongo.IndexModel{
		Keys: bson.M{
			"email": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(MemberCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	})
}

func (m *MongoDBIndexer) IndexRequestCollection() error {
	if err := m.createIndex(RequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(RequestCollection, mongo.IndexModel{
		Keys: bson.D{
			bson.E{Key: "status", Value: 1},
			bson.E{Key: "created_at", Value: -1},
		},
	}); err != nil {
		return err
	}

	// the expiry sweep scans enroute requests by start time
	return m.createIndex(RequestCollection, mongo.IndexModel{
		Keys: bson.D{
			bson.E{Key: "status", Value: 1},
			bson.E{Key: "started_at", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexActivityCollection() error {
	return m.createIndex(ActivityCollection, mongo.IndexModel{
		Keys: bson.M{
			"ts": -1,
		},
	})
}

func (m *MongoDBIndexer) IndexBadgeCollection() error {
	return m.createIndex(BadgeCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexCategoryCollection() error {
	return m.createIndex(CategoryCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}
