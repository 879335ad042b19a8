package controllers

import (
	"context"
	"net/http"
	"testing"

	testutils "github.com/alex-pricope/simple-survey-system/api/controllers/testing"
	"github.com/alex-pricope/simple-survey-system/api/models"
	"github.com/alex-pricope/simple-survey-system/ledger"
	"github.com/alex-pricope/simple-survey-system/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vote(choice bool, surveyID string) models.CastVoteRequest {
	return models.CastVoteRequest{SurveyID: surveyID, Voting: &choice}
}

func TestCastVote(t *testing.T) {
	t.Run("Happy path - create, vote yes, read back", func(t *testing.T) {
		h := setupTestServer(t)
		headers := testutils.Bearer(h.token(t, "a@example.com"))

		created := testutils.PerformRequest(h.router, http.MethodPost, "/survey", models.SurveyCreateRequest{Title: "Coffee?"}, headers)
		require.Equal(t, http.StatusCreated, created.Code)
		surveyID := testutils.Decode[storage.Survey](created).ID

		res := testutils.PerformRequest(h.router, http.MethodPost, "/voting", vote(true, surveyID), testutils.Bearer(h.token(t, "b@example.com")))
		require.Equal(t, http.StatusOK, res.Code)
		cast := testutils.Decode[models.CastVoteResponse](res)
		assert.True(t, cast.SurveyUpdate.Matched)
		assert.Equal(t, "b@example.com", cast.Result.VoterEmail)

		got := testutils.PerformRequest(h.router, http.MethodGet, "/survey/"+surveyID, nil, nil)
		require.Equal(t, http.StatusOK, got.Code)
		survey := testutils.Decode[storage.Survey](got)
		assert.Equal(t, 1, survey.Votes.YesVotes)
		assert.Equal(t, 0, survey.Votes.NoVotes)
	})

	t.Run("Happy path - unknown survey is recorded unmatched", func(t *testing.T) {
		h := setupTestServer(t)

		res := testutils.PerformRequest(h.router, http.MethodPost, "/voting", vote(false, "missing"), testutils.Bearer(h.token(t, "a@example.com")))
		require.Equal(t, http.StatusOK, res.Code)
		assert.False(t, testutils.Decode[models.CastVoteResponse](res).SurveyUpdate.Matched)

		votes, err := h.stores.Votes.GetBySurvey(context.TODO(), "missing")
		require.NoError(t, err)
		assert.Len(t, votes, 1)
	})

	t.Run("Unhappy path - missing choice", func(t *testing.T) {
		h := setupTestServer(t)
		survey := h.seedSurvey(t, "a@example.com", "x")

		res := testutils.PerformRequest(h.router, http.MethodPost, "/voting", models.CastVoteRequest{SurveyID: survey.ID}, testutils.Bearer(h.token(t, "a@example.com")))
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - no token", func(t *testing.T) {
		h := setupTestServer(t)
		survey := h.seedSurvey(t, "a@example.com", "x")

		res := testutils.PerformRequest(h.router, http.MethodPost, "/voting", vote(true, survey.ID), nil)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("Unhappy path - second vote conflicts in single-vote mode", func(t *testing.T) {
		h := setupTestServer(t, ledger.WithSingleVotePerVoter(true))
		survey := h.seedSurvey(t, "a@example.com", "x")
		headers := testutils.Bearer(h.token(t, "b@example.com"))

		first := testutils.PerformRequest(h.router, http.MethodPost, "/voting", vote(true, survey.ID), headers)
		require.Equal(t, http.StatusOK, first.Code)
		second := testutils.PerformRequest(h.router, http.MethodPost, "/voting", vote(true, survey.ID), headers)
		assert.Equal(t, http.StatusConflict, second.Code)

		stored, err := h.stores.Surveys.Get(context.TODO(), survey.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Votes.YesVotes)
	})
}

func TestListVotes(t *testing.T) {
	t.Run("Happy path - votes joined with their surveys", func(t *testing.T) {
		h := setupTestServer(t)
		first := h.seedSurvey(t, "a@example.com", "first")
		second := h.seedSurvey(t, "a@example.com", "second")
		headers := testutils.Bearer(h.token(t, "b@example.com"))

		for _, id := range []string{first.ID, first.ID, second.ID} {
			res := testutils.PerformRequest(h.router, http.MethodPost, "/voting", vote(true, id), headers)
			require.Equal(t, http.StatusOK, res.Code)
		}

		res := testutils.PerformRequest(h.router, http.MethodGet, "/voting/b@example.com", nil, headers)
		require.Equal(t, http.StatusOK, res.Code)
		listing := testutils.Decode[models.VotingListResponse](res)
		assert.Len(t, listing.Voting, 3)
		assert.Len(t, listing.Survey, 2)
		assert.Equal(t, 1, h.db.BatchCalls)
	})

	t.Run("Happy path - filter by survey", func(t *testing.T) {
		h := setupTestServer(t)
		first := h.seedSurvey(t, "a@example.com", "first")
		second := h.seedSurvey(t, "a@example.com", "second")
		headers := testutils.Bearer(h.token(t, "b@example.com"))
		testutils.PerformRequest(h.router, http.MethodPost, "/voting", vote(true, first.ID), headers)
		testutils.PerformRequest(h.router, http.MethodPost, "/voting", vote(false, second.ID), headers)

		res := testutils.PerformRequest(h.router, http.MethodGet, "/voting?survey_id="+second.ID, nil, nil)
		require.Equal(t, http.StatusOK, res.Code)
		listing := testutils.Decode[models.VotingListResponse](res)
		require.Len(t, listing.Voting, 1)
		require.Len(t, listing.Survey, 1)
		assert.Equal(t, "second", listing.Survey[0].Title)
	})

	t.Run("Happy path - no votes means empty lists and no lookup", func(t *testing.T) {
		h := setupTestServer(t)

		res := testutils.PerformRequest(h.router, http.MethodGet, "/voting?survey_id=nothing", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)
		assert.JSONEq(t, `{"voting":[],"survey":[]}`, res.Body.String())
		assert.Equal(t, 0, h.db.BatchCalls)
	})
}
