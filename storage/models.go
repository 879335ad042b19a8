package storage

import "time"

type Role string

const (
	RoleUnset    Role = ""
	RoleAdmin    Role = "admin"
	RoleSurveyor Role = "surveyor"
	RoleProUser  Role = "pro-user"
)

var ValidRoles = map[Role]bool{
	RoleUnset:    true,
	RoleAdmin:    true,
	RoleSurveyor: true,
	RoleProUser:  true,
}

type SurveyStatus string

const (
	StatusPublish     SurveyStatus = "publish"
	StatusUnpublished SurveyStatus = "unpublished"
)

// User is keyed by email in DynamoDB and by ID in Mongo, where email carries a
// unique index.
type User struct {
	Email     string    `dynamodbav:"PK" bson:"email" json:"email"`
	ID        string    `dynamodbav:"ID" bson:"_id" json:"_id"`
	Name      string    `dynamodbav:"Name" bson:"name" json:"name,omitempty"`
	Photo     string    `dynamodbav:"Photo" bson:"photo" json:"photo,omitempty"`
	Role      Role      `dynamodbav:"Role" bson:"role" json:"role"`
	CreatedAt time.Time `dynamodbav:"CreatedAt" bson:"created_at" json:"createdAt"`
}

type VoteCounts struct {
	YesVotes int `dynamodbav:"YesVotes" bson:"yesVotes" json:"yesVotes"`
	NoVotes  int `dynamodbav:"NoVotes" bson:"noVotes" json:"noVotes"`
}

func (v VoteCounts) Total() int {
	return v.YesVotes + v.NoVotes
}

type Survey struct {
	ID          string       `dynamodbav:"PK" bson:"_id" json:"_id"`
	AuthorEmail string       `dynamodbav:"AuthorEmail" bson:"surveyEmail" json:"surveyEmail"`
	Title       string       `dynamodbav:"Title" bson:"title" json:"title"`
	Category    string       `dynamodbav:"Category" bson:"category" json:"category"`
	Question    string       `dynamodbav:"Question" bson:"question" json:"question"`
	Description string       `dynamodbav:"Description" bson:"desc" json:"desc"`
	Date        string       `dynamodbav:"Date" bson:"date" json:"date"`
	Status      SurveyStatus `dynamodbav:"Status" bson:"status" json:"status"`
	Votes       VoteCounts   `dynamodbav:"Votes" bson:"votes" json:"votes"`
	Timestamp   string       `dynamodbav:"Timestamp" bson:"timestamp" json:"timestamp"`
}

// SurveyFields is the editable subset of a survey.
type SurveyFields struct {
	Title       string
	Category    string
	Question    string
	Date        string
	Description string
}

type VoteRecord struct {
	ID         string    `dynamodbav:"PK" bson:"_id" json:"_id"`
	SurveyID   string    `dynamodbav:"SurveyID" bson:"survey_id" json:"survey_id"`
	VoterEmail string    `dynamodbav:"VoterEmail" bson:"email" json:"email"`
	Choice     bool      `dynamodbav:"Choice" bson:"voting" json:"voting"`
	Timestamp  time.Time `dynamodbav:"Timestamp" bson:"timestamp" json:"timestamp"`
}

func (v *VoteRecord) ParentSurveyID() string { return v.SurveyID }

type Report struct {
	ID            string    `dynamodbav:"PK" bson:"_id" json:"_id"`
	SurveyID      string    `dynamodbav:"SurveyID" bson:"survey_id" json:"survey_id"`
	ReporterEmail string    `dynamodbav:"ReporterEmail" bson:"reporterEmail" json:"reporterEmail"`
	Message       string    `dynamodbav:"Message" bson:"message" json:"message"`
	Timestamp     time.Time `dynamodbav:"Timestamp" bson:"timestamp" json:"timestamp"`
}

func (r *Report) ParentSurveyID() string { return r.SurveyID }

type Comment struct {
	ID           string    `dynamodbav:"PK" bson:"_id" json:"_id"`
	SurveyID     string    `dynamodbav:"SurveyID" bson:"survey_id" json:"survey_id"`
	CommentEmail string    `dynamodbav:"CommentEmail" bson:"commentEmail" json:"commentEmail"`
	Comment      string    `dynamodbav:"Comment" bson:"comment" json:"comment"`
	Timestamp    time.Time `dynamodbav:"Timestamp" bson:"timestamp" json:"timestamp"`
}

func (c *Comment) ParentSurveyID() string { return c.SurveyID }

// Feedback is written by an admin to the author of a survey. SurveyEmail is
// the author being addressed.
type Feedback struct {
	ID          string    `dynamodbav:"PK" bson:"_id" json:"_id"`
	SurveyID    string    `dynamodbav:"SurveyID" bson:"survey_id" json:"survey_id"`
	SurveyEmail string    `dynamodbav:"SurveyEmail" bson:"surveyEmail" json:"surveyEmail"`
	AdminEmail  string    `dynamodbav:"AdminEmail" bson:"adminEmail" json:"adminEmail"`
	Message     string    `dynamodbav:"Message" bson:"message" json:"message"`
	Timestamp   time.Time `dynamodbav:"Timestamp" bson:"timestamp" json:"timestamp"`
}

func (f *Feedback) ParentSurveyID() string { return f.SurveyID }
