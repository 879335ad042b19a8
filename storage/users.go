package storage

import (
	"context"
	"errors"
	"time"

	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type UserStorage interface {
	// Create inserts the user unless one with the same email exists, in which
	// case the stored record is returned unchanged and created is false.
	Create(ctx context.Context, user *User) (stored *User, created bool, err error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetAll(ctx context.Context, role Role) ([]*User, error)
	UpdateRole(ctx context.Context, id string, role Role) error
	UpdateRoleByEmail(ctx context.Context, email string, role Role) error
	Delete(ctx context.Context, id string) error
}

// DynamoUserStorage keys users by email so the upsert can rely on a
// conditional put.
type DynamoUserStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoUserStorage) Create(ctx context.Context, user *User) (*User, bool, error) {
	if user.ID == "" {
		id, err := NewID()
		if err != nil {
			return nil, false, err
		}
		user.ID = id
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	err := putNew(ctx, s.Client, s.TableName, user)
	if err == nil {
		logging.Log.Infof("USER: created user %s", user.Email)
		return user, true, nil
	}
	if !errors.Is(err, ErrItemWithIDAlreadyExists) {
		logDynamoFailure("USER", "create", err)
		return nil, false, err
	}

	existing, err := s.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, false, err
	}
	logging.Log.Debugf("USER: %s already exists, returning stored record", user.Email)
	return existing, false, nil
}

func (s *DynamoUserStorage) GetByEmail(ctx context.Context, email string) (*User, error) {
	user, err := getByKey[User](ctx, s.Client, s.TableName, email)
	if err != nil {
		if !errors.Is(err, ErrItemNotFound) {
			logDynamoFailure("USER", "get by email", err)
		}
		return nil, err
	}
	return user, nil
}

func (s *DynamoUserStorage) GetAll(ctx context.Context, role Role) ([]*User, error) {
	users, err := scanWhere[User](ctx, s.Client, s.TableName, "Role", string(role))
	if err != nil {
		logDynamoFailure("USER", "scan", err)
		return nil, err
	}
	return users, nil
}

func (s *DynamoUserStorage) getByID(ctx context.Context, id string) (*User, error) {
	users, err := scanWhere[User](ctx, s.Client, s.TableName, "ID", id)
	if err != nil {
		logDynamoFailure("USER", "scan by id", err)
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrItemNotFound
	}
	return users[0], nil
}

func (s *DynamoUserStorage) UpdateRole(ctx context.Context, id string, role Role) error {
	user, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}
	return s.UpdateRoleByEmail(ctx, user.Email, role)
}

func (s *DynamoUserStorage) UpdateRoleByEmail(ctx context.Context, email string, role Role) error {
	_, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(s.TableName),
		Key:                      stringKey(email),
		UpdateExpression:         aws.String("SET #role = :role"),
		ConditionExpression:      aws.String("attribute_exists(PK)"),
		ExpressionAttributeNames: map[string]string{"#role": "Role"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":role": &types.AttributeValueMemberS{Value: string(role)},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return ErrItemNotFound
		}
		logDynamoFailure("USER", "update role", err)
		return err
	}
	logging.Log.Infof("USER: set role of %s to '%s'", email, role)
	return nil
}

func (s *DynamoUserStorage) Delete(ctx context.Context, id string) error {
	user, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}
	if err := deleteExisting(ctx, s.Client, s.TableName, user.Email); err != nil {
		if !errors.Is(err, ErrItemNotFound) {
			logDynamoFailure("USER", "delete", err)
		}
		return err
	}
	logging.Log.Infof("USER: deleted user %s", id)
	return nil
}
