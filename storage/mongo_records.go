package storage

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoVoteStorage struct {
	Collection *mongo.Collection
}

func (s *MongoVoteStorage) Create(ctx context.Context, vote *VoteRecord) error {
	if err := stampRecord(&vote.ID, &vote.Timestamp); err != nil {
		return err
	}
	if err := insertNew(ctx, s.Collection, vote); err != nil {
		if !errors.Is(err, ErrItemWithIDAlreadyExists) {
			logMongoFailure("VOTE", "insert", err)
		}
		return err
	}
	return nil
}

func (s *MongoVoteStorage) GetBySurvey(ctx context.Context, surveyID string) ([]*VoteRecord, error) {
	votes, err := findAll[VoteRecord](ctx, s.Collection, optionalFilter("survey_id", surveyID))
	if err != nil {
		logMongoFailure("VOTE", "find by survey", err)
		return nil, err
	}
	return votes, nil
}

func (s *MongoVoteStorage) GetByVoter(ctx context.Context, email string) ([]*VoteRecord, error) {
	if email == "" {
		return make([]*VoteRecord, 0), nil
	}
	votes, err := findAll[VoteRecord](ctx, s.Collection, bson.M{"email": email})
	if err != nil {
		logMongoFailure("VOTE", "find by voter", err)
		return nil, err
	}
	return votes, nil
}

type MongoReportStorage struct {
	Collection *mongo.Collection
}

func (s *MongoReportStorage) Create(ctx context.Context, report *Report) error {
	if err := stampRecord(&report.ID, &report.Timestamp); err != nil {
		return err
	}
	if err := insertNew(ctx, s.Collection, report); err != nil {
		logMongoFailure("REPORT", "insert", err)
		return err
	}
	return nil
}

func (s *MongoReportStorage) GetAll(ctx context.Context, reporterEmail string) ([]*Report, error) {
	reports, err := findAll[Report](ctx, s.Collection, optionalFilter("reporterEmail", reporterEmail))
	if err != nil {
		logMongoFailure("REPORT", "find", err)
		return nil, err
	}
	return reports, nil
}

type MongoCommentStorage struct {
	Collection *mongo.Collection
}

func (s *MongoCommentStorage) Create(ctx context.Context, comment *Comment) error {
	if err := stampRecord(&comment.ID, &comment.Timestamp); err != nil {
		return err
	}
	if err := insertNew(ctx, s.Collection, comment); err != nil {
		logMongoFailure("COMMENT", "insert", err)
		return err
	}
	return nil
}

func (s *MongoCommentStorage) GetAll(ctx context.Context, commentEmail string) ([]*Comment, error) {
	comments, err := findAll[Comment](ctx, s.Collection, optionalFilter("commentEmail", commentEmail))
	if err != nil {
		logMongoFailure("COMMENT", "find", err)
		return nil, err
	}
	return comments, nil
}

type MongoFeedbackStorage struct {
	Collection *mongo.Collection
}

func (s *MongoFeedbackStorage) Create(ctx context.Context, feedback *Feedback) error {
	if err := stampRecord(&feedback.ID, &feedback.Timestamp); err != nil {
		return err
	}
	if err := insertNew(ctx, s.Collection, feedback); err != nil {
		logMongoFailure("FEEDBACK", "insert", err)
		return err
	}
	return nil
}

func (s *MongoFeedbackStorage) GetAll(ctx context.Context, surveyEmail string) ([]*Feedback, error) {
	feedback, err := findAll[Feedback](ctx, s.Collection, optionalFilter("surveyEmail", surveyEmail))
	if err != nil {
		logMongoFailure("FEEDBACK", "find", err)
		return nil, err
	}
	return feedback, nil
}
