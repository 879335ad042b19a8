// Package ledger records votes. Each cast vote is an append-only ledger entry,
// and the parent survey's yes/no counter is bumped with the store's atomic
// increment rather than a read-modify-write.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/alex-pricope/simple-survey-system/storage"
)

var ErrAlreadyVoted = errors.New("voter already voted on this survey")
var ErrMissingVoter = errors.New("vote has no voter email")

type Ballot struct {
	SurveyID   string
	VoterEmail string
	Choice     bool
}

// Receipt reports both writes. Survey is nil when no survey was updated,
// either because the ballot had no survey id or the id matched nothing.
type Receipt struct {
	Record        *storage.VoteRecord
	SurveyUpdated bool
	Survey        *storage.Survey
}

type Ledger struct {
	surveys    storage.SurveyStorage
	votes      storage.VoteStorage
	singleVote bool
}

type Option func(*Ledger)

// WithSingleVotePerVoter keys each entry on (survey, voter) so a second vote by
// the same voter on the same survey is rejected with ErrAlreadyVoted.
func WithSingleVotePerVoter(enabled bool) Option {
	return func(l *Ledger) {
		l.singleVote = enabled
	}
}

func New(surveys storage.SurveyStorage, votes storage.VoteStorage, opts ...Option) *Ledger {
	l := &Ledger{surveys: surveys, votes: votes}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// EntryID is the ledger id used in single-vote mode.
func EntryID(surveyID string, voterEmail string) string {
	return surveyID + ":" + voterEmail
}

// Cast increments the survey counter and appends the ledger entry. The two
// writes are independent: a failure in one does not undo the other.
func (l *Ledger) Cast(ctx context.Context, ballot Ballot) (*Receipt, error) {
	if ballot.VoterEmail == "" {
		return nil, ErrMissingVoter
	}

	record := &storage.VoteRecord{
		SurveyID:   ballot.SurveyID,
		VoterEmail: ballot.VoterEmail,
		Choice:     ballot.Choice,
	}

	if l.singleVote && ballot.SurveyID != "" {
		return l.castOnce(ctx, ballot, record)
	}

	receipt := &Receipt{Record: record}
	if err := l.increment(ctx, ballot, receipt); err != nil {
		return nil, err
	}
	if err := l.votes.Create(ctx, record); err != nil {
		logging.Log.Errorf("VOTE: counter updated=%t but ledger append failed for %s: %v", receipt.SurveyUpdated, ballot.SurveyID, err)
		return nil, fmt.Errorf("append vote: %w", err)
	}

	logging.Log.Infof("VOTE: %s voted %t on survey '%s'", ballot.VoterEmail, ballot.Choice, ballot.SurveyID)
	return receipt, nil
}

// castOnce writes the entry first under a unique id so a duplicate is caught
// before any counter moves.
func (l *Ledger) castOnce(ctx context.Context, ballot Ballot, record *storage.VoteRecord) (*Receipt, error) {
	record.ID = EntryID(ballot.SurveyID, ballot.VoterEmail)
	if err := l.votes.Create(ctx, record); err != nil {
		if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
			logging.Log.Warnf("VOTE: %s already voted on survey %s", ballot.VoterEmail, ballot.SurveyID)
			return nil, ErrAlreadyVoted
		}
		return nil, fmt.Errorf("append vote: %w", err)
	}

	receipt := &Receipt{Record: record}
	if err := l.increment(ctx, ballot, receipt); err != nil {
		logging.Log.Errorf("VOTE: ledger entry %s written but counter update failed: %v", record.ID, err)
		return nil, err
	}

	logging.Log.Infof("VOTE: %s voted %t on survey '%s'", ballot.VoterEmail, ballot.Choice, ballot.SurveyID)
	return receipt, nil
}

func (l *Ledger) increment(ctx context.Context, ballot Ballot, receipt *Receipt) error {
	if ballot.SurveyID == "" {
		return nil
	}

	survey, err := l.surveys.IncrementVotes(ctx, ballot.SurveyID, ballot.Choice)
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			return nil
		}
		return fmt.Errorf("increment votes of %s: %w", ballot.SurveyID, err)
	}
	receipt.SurveyUpdated = true
	receipt.Survey = survey
	return nil
}
