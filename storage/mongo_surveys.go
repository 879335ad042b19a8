package storage

import (
	"context"
	"errors"

	"github.com/alex-pricope/simple-survey-system/logging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoSurveyStorage struct {
	Collection *mongo.Collection
}

func (s *MongoSurveyStorage) Create(ctx context.Context, survey *Survey) error {
	if survey.ID == "" {
		id, err := NewID()
		if err != nil {
			return err
		}
		survey.ID = id
	}
	if err := insertNew(ctx, s.Collection, survey); err != nil {
		if !errors.Is(err, ErrItemWithIDAlreadyExists) {
			logMongoFailure("SURVEY", "insert", err)
		}
		return err
	}
	logging.Log.Infof("SURVEY: created survey %s by %s", survey.ID, survey.AuthorEmail)
	return nil
}

func (s *MongoSurveyStorage) Get(ctx context.Context, id string) (*Survey, error) {
	survey, err := findOne[Survey](ctx, s.Collection, bson.M{"_id": id})
	if err != nil && !errors.Is(err, ErrItemNotFound) {
		logMongoFailure("SURVEY", "find one", err)
	}
	return survey, err
}

func (s *MongoSurveyStorage) GetAll(ctx context.Context, authorEmail string) ([]*Survey, error) {
	surveys, err := findAll[Survey](ctx, s.Collection, optionalFilter("surveyEmail", authorEmail))
	if err != nil {
		logMongoFailure("SURVEY", "find", err)
		return nil, err
	}
	return surveys, nil
}

func (s *MongoSurveyStorage) GetByIDs(ctx context.Context, ids []string) ([]*Survey, error) {
	ids = uniqueNonEmpty(ids)
	if len(ids) == 0 {
		return make([]*Survey, 0), nil
	}

	surveys, err := findAll[Survey](ctx, s.Collection, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		logMongoFailure("SURVEY", "find by ids", err)
		return nil, err
	}
	return surveys, nil
}

func (s *MongoSurveyStorage) UpdateFields(ctx context.Context, id string, fields SurveyFields) error {
	update := bson.M{"$set": bson.M{
		"title":    fields.Title,
		"category": fields.Category,
		"question": fields.Question,
		"date":     fields.Date,
		"desc":     fields.Description,
	}}
	err := updateExisting(ctx, s.Collection, bson.M{"_id": id}, update)
	if err != nil && !errors.Is(err, ErrItemNotFound) {
		logMongoFailure("SURVEY", "update fields", err)
	}
	return err
}

func (s *MongoSurveyStorage) SetStatus(ctx context.Context, id string, status SurveyStatus) error {
	err := updateExisting(ctx, s.Collection, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil && !errors.Is(err, ErrItemNotFound) {
		logMongoFailure("SURVEY", "set status", err)
	}
	return err
}

func (s *MongoSurveyStorage) IncrementVotes(ctx context.Context, id string, choice bool) (*Survey, error) {
	counter := "votes.noVotes"
	if choice {
		counter = "votes.yesVotes"
	}

	var survey Survey
	err := s.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{counter: 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&survey)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logging.Log.Warnf("SURVEY: vote for unknown survey %s", id)
			return nil, ErrItemNotFound
		}
		logMongoFailure("SURVEY", "increment votes", err)
		return nil, err
	}
	return &survey, nil
}

func (s *MongoSurveyStorage) Delete(ctx context.Context, id string) error {
	res, err := s.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logMongoFailure("SURVEY", "delete", err)
		return err
	}
	if res.DeletedCount == 0 {
		return ErrItemNotFound
	}
	logging.Log.Infof("SURVEY: deleted survey with ID %s", id)
	return nil
}
