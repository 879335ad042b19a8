package storage

import "github.com/aws/aws-sdk-go-v2/service/dynamodb"

// Stores bundles one handle per collection. It is built once at startup and
// passed to the components that need it.
type Stores struct {
	Users    UserStorage
	Surveys  SurveyStorage
	Votes    VoteStorage
	Reports  ReportStorage
	Comments CommentStorage
	Feedback FeedbackStorage
}

type DynamoTables struct {
	Users    string
	Surveys  string
	Votes    string
	Reports  string
	Comments string
	Feedback string
}

func NewDynamoStores(client *dynamodb.Client, tables DynamoTables) *Stores {
	return &Stores{
		Users:    &DynamoUserStorage{Client: client, TableName: tables.Users},
		Surveys:  &DynamoSurveyStorage{Client: client, TableName: tables.Surveys},
		Votes:    &DynamoVoteStorage{Client: client, TableName: tables.Votes},
		Reports:  &DynamoReportStorage{Client: client, TableName: tables.Reports},
		Comments: &DynamoCommentStorage{Client: client, TableName: tables.Comments},
		Feedback: &DynamoFeedbackStorage{Client: client, TableName: tables.Feedback},
	}
}

func NewMongoStores(db *MongoDB) *Stores {
	return &Stores{
		Users:    &MongoUserStorage{Collection: db.DB.Collection(CollectionUsers)},
		Surveys:  &MongoSurveyStorage{Collection: db.DB.Collection(CollectionSurveys)},
		Votes:    &MongoVoteStorage{Collection: db.DB.Collection(CollectionVotes)},
		Reports:  &MongoReportStorage{Collection: db.DB.Collection(CollectionReports)},
		Comments: &MongoCommentStorage{Collection: db.DB.Collection(CollectionComments)},
		Feedback: &MongoFeedbackStorage{Collection: db.DB.Collection(CollectionFeedback)},
	}
}
