package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alex-pricope/simple-survey-system/logging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names shared with the existing survey database.
const (
	CollectionUsers    = "users"
	CollectionSurveys  = "surveyList"
	CollectionVotes    = "voting"
	CollectionReports  = "report"
	CollectionComments = "comment"
	CollectionFeedback = "feedback"
)

type MongoDB struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func NewMongoConnection(ctx context.Context, uri string, database string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDB{
		Client: client,
		DB:     client.Database(database),
	}, nil
}

// EnsureIndexes creates the unique email index the user upsert relies on.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	_, err := m.DB.Collection(CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// findAll decodes every document matching filter. The result is never nil.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]*T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]*T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}) (*T, error) {
	var item T
	if err := coll.FindOne(ctx, filter).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func insertNew(ctx context.Context, coll *mongo.Collection, doc interface{}) error {
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrItemWithIDAlreadyExists
		}
		return err
	}
	return nil
}

// updateExisting applies update to the document matching filter and returns
// ErrItemNotFound when nothing matched.
func updateExisting(ctx context.Context, coll *mongo.Collection, filter interface{}, update interface{}) error {
	res, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

// optionalFilter matches everything when value is empty.
func optionalFilter(field string, value string) bson.M {
	if value == "" {
		return bson.M{}
	}
	return bson.M{field: value}
}

func logMongoFailure(prefix string, op string, err error) {
	logging.Log.Errorf("%s: mongo %s failed: %v", prefix, op, err)
}
