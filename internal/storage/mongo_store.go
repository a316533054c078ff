package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TodayWantLook/Crawler/internal/domain"
)

const mongoOpTimeout = 10 * time.Second

// mongoStore keeps all media documents in one collection; document kinds
// are distinguished by their type field.
type mongoStore struct {
	client *mongo.Client
	media  *mongo.Collection
}

func newMongoStore(ctx context.Context, uri, database, collection string) (Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &mongoStore{
		client: client,
		media:  client.Database(database).Collection(collection),
	}, nil
}

func (s *mongoStore) FindByTitle(ctx context.Context, typ, title string) (*domain.Media, error) {
	opCtx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	var doc domain.Media
	err := s.media.FindOne(opCtx, bson.M{"type": typ, "title": title}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media by title: %w", err)
	}
	return &doc, nil
}

func (s *mongoStore) FindByWebtoonID(ctx context.Context, id string) (*domain.Media, error) {
	opCtx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	var doc domain.Media
	err := s.media.FindOne(opCtx, bson.M{"webtoonId": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media by webtoonId: %w", err)
	}
	return &doc, nil
}

func (s *mongoStore) Insert(ctx context.Context, doc *domain.Media) error {
	opCtx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	if _, err := s.media.InsertOne(opCtx, doc); err != nil {
		return fmt.Errorf("insert media: %w", err)
	}
	return nil
}

func (s *mongoStore) UpdateByWebtoonID(ctx context.Context, id string, doc *domain.Media) error {
	opCtx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	update := bson.M{"$set": doc}
	if _, err := s.media.UpdateOne(opCtx, bson.M{"webtoonId": id}, update); err != nil {
		return fmt.Errorf("update media: %w", err)
	}
	return nil
}

func (s *mongoStore) Close(ctx context.Context) error {
	opCtx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()
	return s.client.Disconnect(opCtx)
}
