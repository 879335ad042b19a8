package storage

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMongo connects to a throwaway database. Skipped unless MONGO_URI is set.
func setupMongo(t *testing.T) *Stores {
	t.Helper()
	logging.Log = logrus.New()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	id, err := NewID()
	require.NoError(t, err)

	db, err := NewMongoConnection(context.TODO(), uri, "survey_test_"+id)
	require.NoError(t, err)
	require.NoError(t, db.EnsureIndexes(context.TODO()))

	t.Cleanup(func() {
		_ = db.DB.Drop(context.TODO())
		_ = db.Close(context.TODO())
	})
	return NewMongoStores(db)
}

func TestMongoUserStorage(t *testing.T) {
	stores := setupMongo(t)
	ctx := context.TODO()

	first, created, err := stores.Users.Create(ctx, &User{Email: "alice@example.com", Name: "Alice"})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := stores.Users.Create(ctx, &User{Email: "alice@example.com", Name: "Other"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Alice", second.Name)

	require.NoError(t, stores.Users.UpdateRoleByEmail(ctx, "alice@example.com", RoleProUser))
	pro, err := stores.Users.GetAll(ctx, RoleProUser)
	require.NoError(t, err)
	assert.Len(t, pro, 1)

	_, err = stores.Users.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrItemNotFound)

	require.NoError(t, stores.Users.Delete(ctx, first.ID))
	assert.ErrorIs(t, stores.Users.Delete(ctx, first.ID), ErrItemNotFound)
}

func TestMongoSurveyStorage(t *testing.T) {
	stores := setupMongo(t)
	ctx := context.TODO()

	survey := &Survey{AuthorEmail: "alice@example.com", Title: "Tabs or spaces", Status: StatusPublish, Timestamp: "2025-03-01"}
	require.NoError(t, stores.Surveys.Create(ctx, survey))

	var wg sync.WaitGroup
	for i := 0; i < 7; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := stores.Surveys.IncrementVotes(ctx, survey.ID, i < 4)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	stored, err := stores.Surveys.Get(ctx, survey.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.Votes.YesVotes)
	assert.Equal(t, 3, stored.Votes.NoVotes)

	found, err := stores.Surveys.GetByIDs(ctx, []string{survey.ID, "missing"})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	empty, err := stores.Surveys.GetByIDs(ctx, []string{})
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = stores.Surveys.IncrementVotes(ctx, "missing", false)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestMongoRecordStorage(t *testing.T) {
	stores := setupMongo(t)
	ctx := context.TODO()

	require.NoError(t, stores.Comments.Create(ctx, &Comment{SurveyID: "s1", CommentEmail: "a@example.com", Comment: "nice"}))
	require.NoError(t, stores.Comments.Create(ctx, &Comment{SurveyID: "s2", CommentEmail: "b@example.com", Comment: "meh"}))

	mine, err := stores.Comments.GetAll(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "nice", mine[0].Comment)

	all, err := stores.Comments.GetAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, stores.Votes.Create(ctx, &VoteRecord{ID: "s1:a@example.com", SurveyID: "s1", VoterEmail: "a@example.com"}))
	err = stores.Votes.Create(ctx, &VoteRecord{ID: "s1:a@example.com", SurveyID: "s1", VoterEmail: "a@example.com"})
	assert.ErrorIs(t, err, ErrItemWithIDAlreadyExists)
}
