package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/alex-pricope/simple-survey-system/storage"
	"github.com/alex-pricope/simple-survey-system/storage/storagetest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLedger(t *testing.T, opts ...Option) (*Ledger, *storage.Stores, *storagetest.DB, *storage.Survey) {
	t.Helper()
	logging.Log = logrus.New()

	stores, db := storagetest.NewStores()
	survey := &storage.Survey{Title: "Coffee or tea", Status: storage.StatusPublish}
	require.NoError(t, stores.Surveys.Create(context.TODO(), survey))

	return New(stores.Surveys, stores.Votes, opts...), stores, db, survey
}

func TestCast(t *testing.T) {
	ctx := context.TODO()

	t.Run("Happy path - yes vote bumps only yes", func(t *testing.T) {
		l, stores, _, survey := setupLedger(t)

		receipt, err := l.Cast(ctx, Ballot{SurveyID: survey.ID, VoterEmail: "a@example.com", Choice: true})
		require.NoError(t, err)
		assert.True(t, receipt.SurveyUpdated)
		assert.NotEmpty(t, receipt.Record.ID)
		assert.Equal(t, 1, receipt.Survey.Votes.YesVotes)

		stored, err := stores.Surveys.Get(ctx, survey.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Votes.YesVotes)
		assert.Equal(t, 0, stored.Votes.NoVotes)

		votes, err := stores.Votes.GetBySurvey(ctx, survey.ID)
		require.NoError(t, err)
		require.Len(t, votes, 1)
		assert.True(t, votes[0].Choice)
	})

	t.Run("Happy path - concurrent votes are all counted", func(t *testing.T) {
		l, stores, _, survey := setupLedger(t)
		yes, no := 25, 17

		var wg sync.WaitGroup
		for i := 0; i < yes+no; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := l.Cast(ctx, Ballot{SurveyID: survey.ID, VoterEmail: fmt.Sprintf("voter%d@example.com", i), Choice: i < yes})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		stored, err := stores.Surveys.Get(ctx, survey.ID)
		require.NoError(t, err)
		assert.Equal(t, yes, stored.Votes.YesVotes)
		assert.Equal(t, no, stored.Votes.NoVotes)

		votes, err := stores.Votes.GetBySurvey(ctx, survey.ID)
		require.NoError(t, err)
		assert.Len(t, votes, yes+no)
	})

	t.Run("Happy path - same voter twice is counted twice by default", func(t *testing.T) {
		l, stores, _, survey := setupLedger(t)

		for i := 0; i < 2; i++ {
			_, err := l.Cast(ctx, Ballot{SurveyID: survey.ID, VoterEmail: "a@example.com"})
			require.NoError(t, err)
		}

		stored, err := stores.Surveys.Get(ctx, survey.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.Votes.NoVotes)
	})

	t.Run("Happy path - no survey id still appends", func(t *testing.T) {
		l, stores, _, _ := setupLedger(t)

		receipt, err := l.Cast(ctx, Ballot{VoterEmail: "a@example.com", Choice: true})
		require.NoError(t, err)
		assert.False(t, receipt.SurveyUpdated)
		assert.Nil(t, receipt.Survey)

		votes, err := stores.Votes.GetByVoter(ctx, "a@example.com")
		require.NoError(t, err)
		assert.Len(t, votes, 1)
	})

	t.Run("Happy path - unknown survey still appends", func(t *testing.T) {
		l, stores, _, _ := setupLedger(t)

		receipt, err := l.Cast(ctx, Ballot{SurveyID: "missing", VoterEmail: "a@example.com", Choice: true})
		require.NoError(t, err)
		assert.False(t, receipt.SurveyUpdated)

		votes, err := stores.Votes.GetBySurvey(ctx, "missing")
		require.NoError(t, err)
		assert.Len(t, votes, 1)
	})

	t.Run("Unhappy path - missing voter", func(t *testing.T) {
		l, _, _, survey := setupLedger(t)

		_, err := l.Cast(ctx, Ballot{SurveyID: survey.ID})
		assert.ErrorIs(t, err, ErrMissingVoter)
	})

	t.Run("Unhappy path - store failure", func(t *testing.T) {
		l, _, db, survey := setupLedger(t)
		boom := errors.New("timeout")
		db.Err = boom

		_, err := l.Cast(ctx, Ballot{SurveyID: survey.ID, VoterEmail: "a@example.com"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestCastSingleVote(t *testing.T) {
	ctx := context.TODO()

	t.Run("Unhappy path - second vote rejected, counter untouched", func(t *testing.T) {
		l, stores, _, survey := setupLedger(t, WithSingleVotePerVoter(true))

		receipt, err := l.Cast(ctx, Ballot{SurveyID: survey.ID, VoterEmail: "a@example.com", Choice: true})
		require.NoError(t, err)
		assert.Equal(t, EntryID(survey.ID, "a@example.com"), receipt.Record.ID)

		_, err = l.Cast(ctx, Ballot{SurveyID: survey.ID, VoterEmail: "a@example.com", Choice: false})
		assert.ErrorIs(t, err, ErrAlreadyVoted)

		stored, err := stores.Surveys.Get(ctx, survey.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Votes.YesVotes)
		assert.Equal(t, 0, stored.Votes.NoVotes)
	})

	t.Run("Happy path - concurrent duplicates count once", func(t *testing.T) {
		l, stores, _, survey := setupLedger(t, WithSingleVotePerVoter(true))

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = l.Cast(ctx, Ballot{SurveyID: survey.ID, VoterEmail: "a@example.com", Choice: true})
			}()
		}
		wg.Wait()

		stored, err := stores.Surveys.Get(ctx, survey.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Votes.YesVotes)
	})
}
