package api

import (
	"context"
	"fmt"
	"os"

	"github.com/alex-pricope/simple-survey-system/aggregate"
	"github.com/alex-pricope/simple-survey-system/api/controllers"
	"github.com/alex-pricope/simple-survey-system/api/transport"
	"github.com/alex-pricope/simple-survey-system/auth"
	"github.com/alex-pricope/simple-survey-system/ledger"
	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/alex-pricope/simple-survey-system/payments"
	"github.com/alex-pricope/simple-survey-system/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

type routeRegistrar interface {
	RegisterRoutes(engine *gin.Engine)
}

func (s *Server) Start() {
	ctx := context.Background()
	r := transport.NewRouter(gin.DebugMode)

	// Create storage
	stores, closeStores, err := s.openStores(ctx)
	if err != nil {
		logging.Log.Errorf("failed to open %s storage: %v", s.config.Backend, err)
		panic("failed to open storage")
	}
	defer closeStores()

	tokens, err := auth.NewTokenService(s.config.TokenSecret)
	if err != nil {
		logging.Log.Errorf("failed to create token service: %v", err)
		panic("failed to create token service")
	}

	if s.config.StripeSecretKey == "" {
		logging.Log.Warn("no stripe secret key configured, payment intents will fail")
	}

	//Register controllers
	for _, c := range s.controllers(stores, tokens, payments.NewStripeProvider(s.config.StripeSecretKey)) {
		c.RegisterRoutes(r)
	}

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

func (s *Server) controllers(stores *storage.Stores, tokens *auth.TokenService, provider payments.Provider) []routeRegistrar {
	gate := transport.NewGate(tokens, stores.Users)
	voteLedger := ledger.New(stores.Surveys, stores.Votes, ledger.WithSingleVotePerVoter(s.config.SingleVotePerVoter))

	return []routeRegistrar{
		controllers.NewTokenController(tokens),
		controllers.NewUserController(stores.Users, gate),
		controllers.NewSurveyController(stores.Surveys, stores.Users, aggregate.NewEngine(stores.Surveys), gate),
		controllers.NewVotingController(voteLedger, stores.Votes, stores.Surveys, gate),
		controllers.NewReportController(stores.Reports, stores.Surveys, gate),
		controllers.NewCommentController(stores.Comments, stores.Surveys, gate),
		controllers.NewFeedbackController(stores.Feedback, stores.Surveys, gate),
		controllers.NewPaymentController(provider, stores.Users, s.config.Currency, gate),
	}
}

// openStores builds every collection store once for the configured backend.
func (s *Server) openStores(ctx context.Context) (*storage.Stores, func(), error) {
	if s.config.Backend == BackendMongo {
		db, err := storage.NewMongoConnection(ctx, s.config.MongoURI, s.config.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		if err := db.EnsureIndexes(ctx); err != nil {
			return nil, nil, err
		}
		logging.Log.Infof("Connected to mongo database %s", s.config.MongoDatabase)
		return storage.NewMongoStores(db), func() {
			if err := db.Close(context.Background()); err != nil {
				logging.Log.Warnf("failed to close mongo connection: %v", err)
			}
		}, nil
	}

	client, err := storage.NewDynamoClient(ctx, s.config.Region, s.config.Endpoint)
	if err != nil {
		return nil, nil, err
	}
	return storage.NewDynamoStores(client, storage.DynamoTables{
		Users:    s.config.TableNameUsers,
		Surveys:  s.config.TableNameSurveys,
		Votes:    s.config.TableNameVotes,
		Reports:  s.config.TableNameReports,
		Comments: s.config.TableNameComments,
		Feedback: s.config.TableNameFeedback,
	}), func() {}, nil
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
