package storage

import (
	"context"
	"errors"

	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type SurveyStorage interface {
	Create(ctx context.Context, survey *Survey) error
	Get(ctx context.Context, id string) (*Survey, error)
	GetAll(ctx context.Context, authorEmail string) ([]*Survey, error)
	// GetByIDs returns the surveys matching ids. Unknown ids are skipped and an
	// empty id list returns an empty result without querying the store.
	GetByIDs(ctx context.Context, ids []string) ([]*Survey, error)
	UpdateFields(ctx context.Context, id string, fields SurveyFields) error
	SetStatus(ctx context.Context, id string, status SurveyStatus) error
	// IncrementVotes atomically adds one to the yes or no counter and returns
	// the survey as stored after the increment.
	IncrementVotes(ctx context.Context, id string, choice bool) (*Survey, error)
	Delete(ctx context.Context, id string) error
}

type DynamoSurveyStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoSurveyStorage) Create(ctx context.Context, survey *Survey) error {
	if survey.ID == "" {
		id, err := NewID()
		if err != nil {
			return err
		}
		survey.ID = id
	}

	if err := putNew(ctx, s.Client, s.TableName, survey); err != nil {
		if errors.Is(err, ErrItemWithIDAlreadyExists) {
			logging.Log.Warnf("SURVEY: item with ID %s already exists", survey.ID)
			return err
		}
		logDynamoFailure("SURVEY", "create", err)
		return err
	}
	logging.Log.Infof("SURVEY: created survey %s by %s", survey.ID, survey.AuthorEmail)
	return nil
}

func (s *DynamoSurveyStorage) Get(ctx context.Context, id string) (*Survey, error) {
	survey, err := getByKey[Survey](ctx, s.Client, s.TableName, id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			logging.Log.Warnf("SURVEY: no survey found with ID %s", id)
		} else {
			logDynamoFailure("SURVEY", "get", err)
		}
		return nil, err
	}
	return survey, nil
}

func (s *DynamoSurveyStorage) GetAll(ctx context.Context, authorEmail string) ([]*Survey, error) {
	surveys, err := scanWhere[Survey](ctx, s.Client, s.TableName, "AuthorEmail", authorEmail)
	if err != nil {
		logDynamoFailure("SURVEY", "scan", err)
		return nil, err
	}
	return surveys, nil
}

func (s *DynamoSurveyStorage) GetByIDs(ctx context.Context, ids []string) ([]*Survey, error) {
	surveys := make([]*Survey, 0, len(ids))
	ids = uniqueNonEmpty(ids)

	for start := 0; start < len(ids); start += BatchGetLimit {
		end := start + BatchGetLimit
		if end > len(ids) {
			end = len(ids)
		}

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, stringKey(id))
		}

		found, err := batchGetAll(ctx, s.Client, s.TableName, keys)
		if err != nil {
			logDynamoFailure("SURVEY", "batch get", err)
			return nil, err
		}

		var page []*Survey
		if err := attributevalue.UnmarshalListOfMaps(found, &page); err != nil {
			logging.Log.Errorf("SURVEY: failed to unmarshal batch: %v", err)
			return nil, err
		}
		surveys = append(surveys, page...)
	}
	return surveys, nil
}

func (s *DynamoSurveyStorage) UpdateFields(ctx context.Context, id string, fields SurveyFields) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.TableName),
		Key:                 stringKey(id),
		UpdateExpression:    aws.String("SET #title = :title, #category = :category, #question = :question, #date = :date, #desc = :desc"),
		ConditionExpression: aws.String("attribute_exists(PK)"),
		ExpressionAttributeNames: map[string]string{
			"#title":    "Title",
			"#category": "Category",
			"#question": "Question",
			"#date":     "Date",
			"#desc":     "Description",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":title":    &types.AttributeValueMemberS{Value: fields.Title},
			":category": &types.AttributeValueMemberS{Value: fields.Category},
			":question": &types.AttributeValueMemberS{Value: fields.Question},
			":date":     &types.AttributeValueMemberS{Value: fields.Date},
			":desc":     &types.AttributeValueMemberS{Value: fields.Description},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return ErrItemNotFound
		}
		logDynamoFailure("SURVEY", "update fields", err)
		return err
	}
	logging.Log.Infof("SURVEY: updated fields of %s", id)
	return nil
}

func (s *DynamoSurveyStorage) SetStatus(ctx context.Context, id string, status SurveyStatus) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(s.TableName),
		Key:                      stringKey(id),
		UpdateExpression:         aws.String("SET #status = :status"),
		ConditionExpression:      aws.String("attribute_exists(PK)"),
		ExpressionAttributeNames: map[string]string{"#status": "Status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return ErrItemNotFound
		}
		logDynamoFailure("SURVEY", "set status", err)
		return err
	}
	logging.Log.Infof("SURVEY: status of %s set to %s", id, status)
	return nil
}

func (s *DynamoSurveyStorage) IncrementVotes(ctx context.Context, id string, choice bool) (*Survey, error) {
	counter := "NoVotes"
	if choice {
		counter = "YesVotes"
	}

	out, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.TableName),
		Key:                 stringKey(id),
		UpdateExpression:    aws.String("SET #votes.#counter = if_not_exists(#votes.#counter, :zero) + :one"),
		ConditionExpression: aws.String("attribute_exists(PK)"),
		ExpressionAttributeNames: map[string]string{
			"#votes":   "Votes",
			"#counter": counter,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
			":one":  &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			logging.Log.Warnf("SURVEY: vote for unknown survey %s", id)
			return nil, ErrItemNotFound
		}
		logDynamoFailure("SURVEY", "increment votes", err)
		return nil, err
	}

	var survey Survey
	if err := attributevalue.UnmarshalMap(out.Attributes, &survey); err != nil {
		logging.Log.Errorf("SURVEY: failed to unmarshal updated survey: %v", err)
		return nil, err
	}
	return &survey, nil
}

func (s *DynamoSurveyStorage) Delete(ctx context.Context, id string) error {
	if err := deleteExisting(ctx, s.Client, s.TableName, id); err != nil {
		if !errors.Is(err, ErrItemNotFound) {
			logDynamoFailure("SURVEY", "delete", err)
		}
		return err
	}
	logging.Log.Infof("SURVEY: deleted survey with ID %s", id)
	return nil
}

func uniqueNonEmpty(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
