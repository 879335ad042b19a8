package storage

import (
	"context"
	"errors"

	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// VoteStorage is the append-only vote ledger.
type VoteStorage interface {
	// Create fails with ErrItemWithIDAlreadyExists when the record id is taken.
	Create(ctx context.Context, vote *VoteRecord) error
	GetBySurvey(ctx context.Context, surveyID string) ([]*VoteRecord, error)
	GetByVoter(ctx context.Context, email string) ([]*VoteRecord, error)
}

type DynamoVoteStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoVoteStorage) Create(ctx context.Context, vote *VoteRecord) error {
	if err := stampRecord(&vote.ID, &vote.Timestamp); err != nil {
		return err
	}

	if err := putNew(ctx, s.Client, s.TableName, vote); err != nil {
		if !errors.Is(err, ErrItemWithIDAlreadyExists) {
			logDynamoFailure("VOTE", "create", err)
		}
		return err
	}
	return nil
}

func (s *DynamoVoteStorage) GetBySurvey(ctx context.Context, surveyID string) ([]*VoteRecord, error) {
	votes, err := scanWhere[VoteRecord](ctx, s.Client, s.TableName, "SurveyID", surveyID)
	if err != nil {
		logDynamoFailure("VOTE", "scan by survey", err)
		return nil, err
	}
	return votes, nil
}

func (s *DynamoVoteStorage) GetByVoter(ctx context.Context, email string) ([]*VoteRecord, error) {
	if email == "" {
		return make([]*VoteRecord, 0), nil
	}
	votes, err := scanWhere[VoteRecord](ctx, s.Client, s.TableName, "VoterEmail", email)
	if err != nil {
		logging.Log.Errorf("VOTE: failed to scan votes for %s: %v", email, err)
		return nil, err
	}
	return votes, nil
}
