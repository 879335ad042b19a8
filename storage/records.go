package storage

import (
	"context"

	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type ReportStorage interface {
	Create(ctx context.Context, report *Report) error
	GetAll(ctx context.Context, reporterEmail string) ([]*Report, error)
}

type CommentStorage interface {
	Create(ctx context.Context, comment *Comment) error
	GetAll(ctx context.Context, commentEmail string) ([]*Comment, error)
}

type FeedbackStorage interface {
	Create(ctx context.Context, feedback *Feedback) error
	// GetAll filters by the email of the survey author the feedback addresses.
	GetAll(ctx context.Context, surveyEmail string) ([]*Feedback, error)
}

type DynamoReportStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoReportStorage) Create(ctx context.Context, report *Report) error {
	if err := stampRecord(&report.ID, &report.Timestamp); err != nil {
		return err
	}
	if err := putNew(ctx, s.Client, s.TableName, report); err != nil {
		logDynamoFailure("REPORT", "create", err)
		return err
	}
	logging.Log.Infof("REPORT: %s reported survey %s", report.ReporterEmail, report.SurveyID)
	return nil
}

func (s *DynamoReportStorage) GetAll(ctx context.Context, reporterEmail string) ([]*Report, error) {
	reports, err := scanWhere[Report](ctx, s.Client, s.TableName, "ReporterEmail", reporterEmail)
	if err != nil {
		logDynamoFailure("REPORT", "scan", err)
		return nil, err
	}
	return reports, nil
}

type DynamoCommentStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoCommentStorage) Create(ctx context.Context, comment *Comment) error {
	if err := stampRecord(&comment.ID, &comment.Timestamp); err != nil {
		return err
	}
	if err := putNew(ctx, s.Client, s.TableName, comment); err != nil {
		logDynamoFailure("COMMENT", "create", err)
		return err
	}
	return nil
}

func (s *DynamoCommentStorage) GetAll(ctx context.Context, commentEmail string) ([]*Comment, error) {
	comments, err := scanWhere[Comment](ctx, s.Client, s.TableName, "CommentEmail", commentEmail)
	if err != nil {
		logDynamoFailure("COMMENT", "scan", err)
		return nil, err
	}
	return comments, nil
}

type DynamoFeedbackStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoFeedbackStorage) Create(ctx context.Context, feedback *Feedback) error {
	if err := stampRecord(&feedback.ID, &feedback.Timestamp); err != nil {
		return err
	}
	if err := putNew(ctx, s.Client, s.TableName, feedback); err != nil {
		logDynamoFailure("FEEDBACK", "create", err)
		return err
	}
	return nil
}

func (s *DynamoFeedbackStorage) GetAll(ctx context.Context, surveyEmail string) ([]*Feedback, error) {
	feedback, err := scanWhere[Feedback](ctx, s.Client, s.TableName, "SurveyEmail", surveyEmail)
	if err != nil {
		logDynamoFailure("FEEDBACK", "scan", err)
		return nil, err
	}
	return feedback, nil
}
