// Package aggregate joins child records (votes, reports, comments, feedback)
// back to their parent surveys and ranks surveys for the listing page.
package aggregate

import (
	"context"
	"fmt"

	"github.com/alex-pricope/simple-survey-system/storage"
)

// SurveyRef is a record holding a survey foreign key.
type SurveyRef interface {
	ParentSurveyID() string
}

// Joined pairs child records with the surveys they reference. Surveys are not
// merged into the records; callers match them by id.
type Joined[T SurveyRef] struct {
	Records []T
	Surveys []*storage.Survey
}

// DistinctSurveyIDs returns the non-empty parent ids in first-seen order.
func DistinctSurveyIDs[T SurveyRef](records []T) []string {
	seen := make(map[string]struct{}, len(records))
	ids := make([]string, 0, len(records))
	for _, r := range records {
		id := r.ParentSurveyID()
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// ResolveSurveys fetches the parents of records with one batched lookup. No
// records means no lookup and an empty result. Ids with no survey are left out.
func ResolveSurveys[T SurveyRef](ctx context.Context, surveys storage.SurveyStorage, records []T) ([]*storage.Survey, error) {
	ids := DistinctSurveyIDs(records)
	if len(ids) == 0 {
		return make([]*storage.Survey, 0), nil
	}

	found, err := surveys.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve %d parent surveys: %w", len(ids), err)
	}
	return found, nil
}

func Join[T SurveyRef](ctx context.Context, surveys storage.SurveyStorage, records []T) (*Joined[T], error) {
	if records == nil {
		records = make([]T, 0)
	}
	parents, err := ResolveSurveys(ctx, surveys, records)
	if err != nil {
		return nil, err
	}
	return &Joined[T]{Records: records, Surveys: parents}, nil
}
