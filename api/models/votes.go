package models

import "github.com/alex-pricope/simple-survey-system/storage"

type CastVoteRequest struct {
	SurveyID string `json:"survey_id"`
	Voting   *bool  `json:"voting"`
}

type CastVoteResponse struct {
	Result       *storage.VoteRecord `json:"result"`
	SurveyUpdate SurveyUpdateResult  `json:"surveyUpdate"`
}

type SurveyUpdateResult struct {
	Matched bool            `json:"matched"`
	Survey  *storage.Survey `json:"survey,omitempty"`
}

type VotingListResponse struct {
	Voting []*storage.VoteRecord `json:"voting"`
	Survey []*storage.Survey     `json:"survey"`
}
