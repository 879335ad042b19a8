// Package storagetest provides in-memory implementations of the storage
// interfaces for unit tests. Records keep insertion order, which stands in
// for the natural order of the real stores.
package storagetest

import (
	"context"
	"sync"
	"time"

	"github.com/alex-pricope/simple-survey-system/storage"
)

type DB struct {
	mu sync.Mutex

	// Err, when set, is returned by every operation.
	Err error
	// BatchCalls counts GetByIDs calls that reached the store.
	BatchCalls int
	// SurveyScans counts survey GetAll calls.
	SurveyScans int

	users    []*storage.User
	surveys  []*storage.Survey
	votes    []*storage.VoteRecord
	reports  []*storage.Report
	comments []*storage.Comment
	feedback []*storage.Feedback
}

// NewStores returns stores backed by a fresh DB.
func NewStores() (*storage.Stores, *DB) {
	db := &DB{}
	return &storage.Stores{
		Users:    &userStore{db},
		Surveys:  &surveyStore{db},
		Votes:    &voteStore{db},
		Reports:  &reportStore{db},
		Comments: &commentStore{db},
		Feedback: &feedbackStore{db},
	}, db
}

func (db *DB) lock() error {
	db.mu.Lock()
	if db.Err != nil {
		db.mu.Unlock()
		return db.Err
	}
	return nil
}

func stamp(id *string, ts *time.Time) error {
	if *id == "" {
		newID, err := storage.NewID()
		if err != nil {
			return err
		}
		*id = newID
	}
	if ts != nil && ts.IsZero() {
		*ts = time.Now().UTC()
	}
	return nil
}

func filterCopy[T any](items []*T, keep func(*T) bool) []*T {
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			c := *item
			out = append(out, &c)
		}
	}
	return out
}

type userStore struct{ db *DB }

func (s *userStore) Create(_ context.Context, user *storage.User) (*storage.User, bool, error) {
	if err := s.db.lock(); err != nil {
		return nil, false, err
	}
	defer s.db.mu.Unlock()

	for _, u := range s.db.users {
		if u.Email == user.Email {
			c := *u
			return &c, false, nil
		}
	}
	if err := stamp(&user.ID, &user.CreatedAt); err != nil {
		return nil, false, err
	}
	c := *user
	s.db.users = append(s.db.users, &c)
	return user, true, nil
}

func (s *userStore) GetByEmail(_ context.Context, email string) (*storage.User, error) {
	if err := s.db.lock(); err != nil {
		return nil, err
	}
	defer s.db.mu.Unlock()

	for _, u := range s.db.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, storage.ErrItemNotFound
}

func (s *userStore) GetAll(_ context.Context, role storage.Role) ([]*storage.User, error) {
	if err := s.db.lock(); err != nil {
		return nil, err
	}
	defer s.db.mu.Unlock()

	return filterCopy(s.db.users, func(u *storage.User) bool {
		return role == "" || u.Role == role
	}), nil
}

func (s *userStore) update(match func(*storage.User) bool, role storage.Role) error {
	if err := s.db.lock(); err != nil {
		return err
	}
	defer s.db.mu.Unlock()

	for _, u := range s.db.users {
		if match(u) {
			u.Role = role
			return nil
		}
	}
	return storage.ErrItemNotFound
}

func (s *userStore) UpdateRole(_ context.Context, id string, role storage.Role) error {
	return s.update(func(u *storage.User) bool { return u.ID == id }, role)
}

func (s *userStore) UpdateRoleByEmail(_ context.Context, email string, role storage.Role) error {
	return s.update(func(u *storage.User) bool { return u.Email == email }, role)
}

func (s *userStore) Delete(_ context.Context, id string) error {
	if err := s.db.lock(); err != nil {
		return err
	}
	defer s.db.mu.Unlock()

	for i, u := range s.db.users {
		if u.ID == id {
			s.db.users = append(s.db.users[:i], s.db.users[i+1:]...)
			return nil
		}
	}
	return storage.ErrItemNotFound
}

type surveyStore struct{ db *DB }

func (s *surveyStore) find(id string) *storage.Survey {
	for _, sv := range s.db.surveys {
		if sv.ID == id {
			return sv
		}
	}
	return nil
}

func (s *surveyStore) Create(_ context.Context, survey *storage.Survey) error {
	if err := s.db.lock(); err != nil {
		return err
	}
	defer s.db.mu.Unlock()

	if err := stamp(&survey.ID, nil); err != nil {
		return err
	}
	if s.find(survey.ID) != nil {
		return storage.ErrItemWithIDAlreadyExists
	}
	c := *survey
	s.db.surveys = append(s.db.surveys, &c)
	return nil
}

func (s *surveyStore) Get(_ context.Context, id string) (*storage.Survey, error) {
	if err := s.db.lock(); err != nil {
		return nil, err
	}
	defer s.db.mu.Unlock()

	if sv := s.find(id); sv != nil {
		c := *sv
		return &c, nil
	}
	return nil, storage.ErrItemNotFound
}

func (s *surveyStore) GetAll(_ context.Context, authorEmail string) ([]*storage.Survey, error) {
	if err := s.db.lock(); err != nil {
		return nil, err
	}
	defer s.db.mu.Unlock()
	s.db.SurveyScans++

	return filterCopy(s.db.surveys, func(sv *storage.Survey) bool {
		return authorEmail == "" || sv.AuthorEmail == authorEmail
	}), nil
}

func (s *surveyStore) GetByIDs(_ context.Context, ids []string) ([]*storage.Survey, error) {
	if len(ids) == 0 {
		return make([]*storage.Survey, 0), nil
	}
	if err := s.db.lock(); err != nil {
		return nil, err
	}
	defer s.db.mu.Unlock()

	s.db.BatchCalls++
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	return filterCopy(s.db.surveys, func(sv *storage.Survey) bool {
		return wanted[sv.ID]
	}), nil
}

func (s *surveyStore) mutate(id string, fn func(*storage.Survey)) (*storage.Survey, error) {
	if err := s.db.lock(); err != nil {
		return nil, err
	}
	defer s.db.mu.Unlock()

	sv := s.find(id)
	if sv == nil {
		return nil, storage.ErrItemNotFound
	}
	fn(sv)
	c := *sv
	return &c, nil
}

func (s *surveyStore) UpdateFields(_ context.Context, id string, fields storage.SurveyFields) error {
	_, err := s.mutate(id, func(sv *storage.Survey) {
		sv.Title = fields.Title
		sv.Category = fields.Category
		sv.Question = fields.Question
		sv.Date = fields.Date
		sv.Description = fields.Description
	})
	return err
}

func (s *surveyStore) SetStatus(_ context.Context, id string, status storage.SurveyStatus) error {
	_, err := s.mutate(id, func(sv *storage.Survey) {
		sv.Status = status
	})
	return err
}

func (s *surveyStore) IncrementVotes(_ context.Context, id string, choice bool) (*storage.Survey, error) {
	return s.mutate(id, func(sv *storage.Survey) {
		if choice {
			sv.Votes.YesVotes++
		} else {
			sv.Votes.NoVotes++
		}
	})
}

func (s *surveyStore) Delete(_ context.Context, id string) error {
	if err := s.db.lock(); err != nil {
		return err
	}
	defer s.db.mu.Unlock()

	for i, sv := range s.db.surveys {
		if sv.ID == id {
			s.db.surveys = append(s.db.surveys[:i], s.db.surveys[i+1:]...)
			return nil
		}
	}
	return storage.ErrItemNotFound
}

type voteStore struct{ db *DB }

func (s *voteStore) Create(_ context.Context, vote *storage.VoteRecord) error {
	if err := s.db.lock(); err != nil {
		return err
	}
	defer s.db.mu.Unlock()

	if err := stamp(&vote.ID, &vote.Timestamp); err != nil {
		return err
	}
	for _, v := range s.db.votes {
		if v.ID == vote.ID {
			return storage.ErrItemWithIDAlreadyExists
		}
	}
	c := *vote
	s.db.votes = append(s.db.votes, &c)
	return nil
}

func (s *voteStore) GetBySurvey(_ context.Context, surveyID string) ([]*storage.VoteRecord, error) {
	if err := s.db.lock(); err != nil {
		return nil, err
	}
	defer s.db.mu.Unlock()

	return filterCopy(s.db.votes, func(v *storage.VoteRecord) bool {
		return surveyID == "" || v.SurveyID == surveyID
	}), nil
}

func (s *voteStore) GetByVoter(_ context.Context, email string) ([]*storage.VoteRecord, error) {
	if err := s.db.lock(); err != nil {
		return nil, err
	}
	defer s.db.mu.Unlock()

	return filterCopy(s.db.votes, func(v *storage.VoteRecord) bool {
		return email != "" && v.VoterEmail == email
	}), nil
}

type reportStore struct{ db *DB }

func (s *reportStore) Create(_ context.Context, report *storage.Report) error {
	if err := s.db.lock(); err != nil {
		return err
	}
	defer s.db.mu.Unlock()

	if err := stamp(&report.ID, &report.Timestamp); err != nil {
		return err
	}
	c := *report
	s.db.reports = append(s.db.reports, &c)
	return nil
}

func (s *reportStore) GetAll(_ context.Context, reporterEmail string) ([]*storage.Report, error) {
	if err := s.db.lock(); err != nil {
		return nil, err
	}
	defer s.db.mu.Unlock()

	return filterCopy(s.db.reports, func(r *storage.Report) bool {
		return reporterEmail == "" || r.ReporterEmail == reporterEmail
	}), nil
}

type commentStore struct{ db *DB }

func (s *commentStore) Create(_ context.Context, comment *storage.Comment) error {
	if err := s.db.lock(); err != nil {
		return err
	}
	defer s.db.mu.Unlock()

	if err := stamp(&comment.ID, &comment.Timestamp); err != nil {
		return err
	}
	c := *comment
	s.db.comments = append(s.db.comments, &c)
	return nil
}

func (s *commentStore) GetAll(_ context.Context, commentEmail string) ([]*storage.Comment, error) {
	if err := s.db.lock(); err != nil {
		return nil, err
	}
	defer s.db.mu.Unlock()

	return filterCopy(s.db.comments, func(c *storage.Comment) bool {
		return commentEmail == "" || c.CommentEmail == commentEmail
	}), nil
}

type feedbackStore struct{ db *DB }

func (s *feedbackStore) Create(_ context.Context, feedback *storage.Feedback) error {
	if err := s.db.lock(); err != nil {
		return err
	}
	defer s.db.mu.Unlock()

	if err := stamp(&feedback.ID, &feedback.Timestamp); err != nil {
		return err
	}
	c := *feedback
	s.db.feedback = append(s.db.feedback, &c)
	return nil
}

func (s *feedbackStore) GetAll(_ context.Context, surveyEmail string) ([]*storage.Feedback, error) {
	if err := s.db.lock(); err != nil {
		return nil, err
	}
	defer s.db.mu.Unlock()

	return filterCopy(s.db.feedback, func(f *storage.Feedback) bool {
		return surveyEmail == "" || f.SurveyEmail == surveyEmail
	}), nil
}
