package storage

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDynamo creates a throwaway table on localstack. The tests are skipped
// unless LOCALSTACK_ENDPOINT is set (e.g. http://localhost:4566).
func setupDynamo(t *testing.T) *dynamodb.Client {
	t.Helper()
	logging.Log = logrus.New()

	endpoint := os.Getenv("LOCALSTACK_ENDPOINT")
	if endpoint == "" {
		t.Skip("LOCALSTACK_ENDPOINT not set")
	}
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	client, err := NewDynamoClient(context.TODO(), "us-east-1", endpoint)
	require.NoError(t, err)
	return client
}

func createTable(t *testing.T, client *dynamodb.Client) string {
	t.Helper()

	id, err := NewID()
	require.NoError(t, err)
	name := "test-" + id

	_, err = client.CreateTable(context.TODO(), &dynamodb.CreateTableInput{
		TableName: aws.String(name),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("PK"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("PK"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = client.DeleteTable(context.TODO(), &dynamodb.DeleteTableInput{TableName: aws.String(name)})
	})
	return name
}

func TestDynamoUserStorage(t *testing.T) {
	client := setupDynamo(t)
	users := &DynamoUserStorage{Client: client, TableName: createTable(t, client)}
	ctx := context.TODO()

	t.Run("Happy path - create is idempotent by email", func(t *testing.T) {
		first, created, err := users.Create(ctx, &User{Email: "alice@example.com", Name: "Alice"})
		require.NoError(t, err)
		assert.True(t, created)

		second, created, err := users.Create(ctx, &User{Email: "alice@example.com", Name: "Someone else"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Alice", second.Name)

		all, err := users.GetAll(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Happy path - update role and filter", func(t *testing.T) {
		user, err := users.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)

		require.NoError(t, users.UpdateRole(ctx, user.ID, RoleAdmin))

		admins, err := users.GetAll(ctx, RoleAdmin)
		require.NoError(t, err)
		require.Len(t, admins, 1)
		assert.Equal(t, "alice@example.com", admins[0].Email)
	})

	t.Run("Unhappy path - unknown user", func(t *testing.T) {
		_, err := users.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrItemNotFound)

		assert.ErrorIs(t, users.UpdateRoleByEmail(ctx, "nobody@example.com", RoleProUser), ErrItemNotFound)
		assert.ErrorIs(t, users.Delete(ctx, "missing"), ErrItemNotFound)
	})
}

func TestDynamoSurveyStorage(t *testing.T) {
	client := setupDynamo(t)
	surveys := &DynamoSurveyStorage{Client: client, TableName: createTable(t, client)}
	ctx := context.TODO()

	survey := &Survey{AuthorEmail: "alice@example.com", Title: "Tabs or spaces", Status: StatusPublish, Timestamp: "2025-03-01"}
	require.NoError(t, surveys.Create(ctx, survey))
	require.NotEmpty(t, survey.ID)

	t.Run("Happy path - concurrent increments are not lost", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := surveys.IncrementVotes(ctx, survey.ID, i%2 == 0)
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		stored, err := surveys.Get(ctx, survey.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, stored.Votes.YesVotes)
		assert.Equal(t, 5, stored.Votes.NoVotes)
	})

	t.Run("Happy path - field update leaves counters and status", func(t *testing.T) {
		err := surveys.UpdateFields(ctx, survey.ID, SurveyFields{Title: "Tabs", Category: "dev", Question: "Tabs?", Date: "2025-04-01", Description: "d"})
		require.NoError(t, err)

		stored, err := surveys.Get(ctx, survey.ID)
		require.NoError(t, err)
		assert.Equal(t, "Tabs", stored.Title)
		assert.Equal(t, StatusPublish, stored.Status)
		assert.Equal(t, 10, stored.Votes.Total())
	})

	t.Run("Happy path - batch get skips unknown ids", func(t *testing.T) {
		found, err := surveys.GetByIDs(ctx, []string{survey.ID, "missing", survey.ID})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, survey.ID, found[0].ID)

		none, err := surveys.GetByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("Unhappy path - increment on unknown survey", func(t *testing.T) {
		_, err := surveys.IncrementVotes(ctx, "missing", true)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("Happy path - status and delete", func(t *testing.T) {
		require.NoError(t, surveys.SetStatus(ctx, survey.ID, StatusUnpublished))
		stored, err := surveys.Get(ctx, survey.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusUnpublished, stored.Status)

		require.NoError(t, surveys.Delete(ctx, survey.ID))
		assert.ErrorIs(t, surveys.Delete(ctx, survey.ID), ErrItemNotFound)
	})
}

func TestDynamoVoteStorage(t *testing.T) {
	client := setupDynamo(t)
	votes := &DynamoVoteStorage{Client: client, TableName: createTable(t, client)}
	ctx := context.TODO()

	require.NoError(t, votes.Create(ctx, &VoteRecord{SurveyID: "s1", VoterEmail: "a@example.com", Choice: true}))
	require.NoError(t, votes.Create(ctx, &VoteRecord{SurveyID: "s2", VoterEmail: "a@example.com"}))
	require.NoError(t, votes.Create(ctx, &VoteRecord{ID: "s1:b@example.com", SurveyID: "s1", VoterEmail: "b@example.com"}))

	err := votes.Create(ctx, &VoteRecord{ID: "s1:b@example.com", SurveyID: "s1", VoterEmail: "b@example.com"})
	assert.ErrorIs(t, err, ErrItemWithIDAlreadyExists)

	bySurvey, err := votes.GetBySurvey(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, bySurvey, 2)

	byVoter, err := votes.GetByVoter(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Len(t, byVoter, 2)
}
