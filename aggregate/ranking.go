package aggregate

import (
	"context"
	"fmt"
	"sort"

	"github.com/alex-pricope/simple-survey-system/storage"
)

// TopN is the length of each ranking on the survey listing.
const TopN = 6

// MostVoted orders by yes+no votes, highest first. Ties keep input order.
// The input slice is not modified.
func MostVoted(surveys []*storage.Survey, n int) []*storage.Survey {
	ranked := clone(surveys)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Votes.Total() > ranked[j].Votes.Total()
	})
	return head(ranked, n)
}

// MostRecent orders by creation date, newest first. Timestamps are zero
// padded YYYY-MM-DD so string order is date order.
func MostRecent(surveys []*storage.Survey, n int) []*storage.Survey {
	ranked := clone(surveys)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Timestamp > ranked[j].Timestamp
	})
	return head(ranked, n)
}

func clone(surveys []*storage.Survey) []*storage.Survey {
	out := make([]*storage.Survey, len(surveys))
	copy(out, surveys)
	return out
}

func head(surveys []*storage.Survey, n int) []*storage.Survey {
	if n < 0 {
		n = 0
	}
	if len(surveys) > n {
		return surveys[:n]
	}
	return surveys
}

// Listing is the three views returned by the survey list endpoint.
type Listing struct {
	Result    []*storage.Survey
	MostVoted []*storage.Survey
	Recent    []*storage.Survey
}

type Engine struct {
	surveys storage.SurveyStorage
}

func NewEngine(surveys storage.SurveyStorage) *Engine {
	return &Engine{surveys: surveys}
}

// ListSurveys returns the surveys by authorEmail (all when empty) along with
// rankings computed over every survey regardless of the filter. All three
// views come from a single read of the store.
func (e *Engine) ListSurveys(ctx context.Context, authorEmail string) (*Listing, error) {
	all, err := e.surveys.GetAll(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}

	result := all
	if authorEmail != "" {
		result = make([]*storage.Survey, 0)
		for _, survey := range all {
			if survey.AuthorEmail == authorEmail {
				result = append(result, survey)
			}
		}
	}

	return &Listing{
		Result:    result,
		MostVoted: MostVoted(all, TopN),
		Recent:    MostRecent(all, TopN),
	}, nil
}

