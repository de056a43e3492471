package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kizuna-community/kizuna-api/schema"
)

var (
	ErrCategoryNotFound = fmt.Errorf("category not found")
)

// CategoryStore - the help category catalog
type CategoryStore interface {
	CreateCategory(category schema.Category) error
	ListCategories() ([]schema.Category, error)
	ListDeliverableCategories() ([]schema.Category, error)
	GetCategory(id string) (*schema.Category, error)
	SearchCategories(keyword string) ([]schema.Category, error)
}

func (m *mongoDB) categoryCollection() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.CategoryCollection)
}

func (m *mongoDB) CreateCategory(category schema.Category) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.categoryCollection().InsertOne(ctx, category)
	return err
}

func (m *mongoDB) listCategories(query bson.M) ([]schema.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.categoryCollection().Find(ctx, query)
	if err != nil {
		return nil, err
	}

	categories := []schema.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (m *mongoDB) ListCategories() ([]schema.Category, error) {
	return m.listCategories(bson.M{})
}

func (m *mongoDB) ListDeliverableCategories() ([]schema.Category, error) {
	return m.listCategories(bson.M{"deliverable": true})
}

func (m *mongoDB) GetCategory(id string) (*schema.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var category schema.Category
	if err := m.categoryCollection().FindOne(ctx, bson.M{"id": id}).Decode(&category); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	return &category, nil
}

// SearchCategories matches the keyword against names, descriptions and
// subcategories, case-insensitively.
func (m *mongoDB) SearchCategories(keyword string) ([]schema.Category, error) {
	pattern := primitive.Regex{Pattern: keyword, Options: "i"}
	return m.listCategories(bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"description": pattern},
		bson.M{"subcategories": pattern},
	}})
}
