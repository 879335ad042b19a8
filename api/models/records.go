package models

import "github.com/alex-pricope/simple-survey-system/storage"

type ReportCreateRequest struct {
	SurveyID string `json:"survey_id"`
	Message  string `json:"message"`
}

type CommentCreateRequest struct {
	SurveyID string `json:"survey_id"`
	Comment  string `json:"comment"`
}

// FeedbackCreateRequest names the recipient author; the sender comes from the token.
type FeedbackCreateRequest struct {
	SurveyID    string `json:"survey_id"`
	SurveyEmail string `json:"surveyEmail"`
	Message     string `json:"message"`
}

type ReportListResponse struct {
	Report []*storage.Report `json:"report"`
	Survey []*storage.Survey `json:"survey"`
}

type CommentListResponse struct {
	Comment []*storage.Comment `json:"comment"`
	Survey  []*storage.Survey  `json:"survey"`
}

type FeedbackListResponse struct {
	Feedback []*storage.Feedback `json:"feedback"`
	Survey   []*storage.Survey   `json:"survey"`
}
