package models

import "github.com/alex-pricope/simple-survey-system/storage"

// SurveyCreateRequest carries no author; surveys belong to the token holder.
type SurveyCreateRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Question    string `json:"question"`
	Description string `json:"desc"`
	Date        string `json:"date"`
}

type SurveyUpdateRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Question    string `json:"question"`
	Description string `json:"desc"`
	Date        string `json:"date"`
}

func (r SurveyUpdateRequest) Fields() storage.SurveyFields {
	return storage.SurveyFields{
		Title:       r.Title,
		Category:    r.Category,
		Question:    r.Question,
		Date:        r.Date,
		Description: r.Description,
	}
}

type SurveyListResponse struct {
	Result    []*storage.Survey `json:"result"`
	MostVoted []*storage.Survey `json:"mostVoted"`
	Recent    []*storage.Survey `json:"recent"`
}
