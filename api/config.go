package api

import (
	"sync"

	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	AuthConfig
	PaymentConfig
	VotingConfig
	LogConfig
}

type StorageConfig struct {
	Backend  string
	Region   string
	Endpoint string

	TableNameUsers    string
	TableNameSurveys  string
	TableNameVotes    string
	TableNameReports  string
	TableNameComments string
	TableNameFeedback string

	MongoURI      string
	MongoDatabase string
}

type ServerConfig struct {
	Port int
}

type AuthConfig struct {
	TokenSecret string
}

type PaymentConfig struct {
	StripeSecretKey string
	Currency        string
}

type VotingConfig struct {
	SingleVotePerVoter bool
}

type LogConfig struct {
	Level  string
	Format string
}

const (
	BackendDynamo = "dynamo"
	BackendMongo  = "mongo"
)

var settingsOnce sync.Once

func ReadConfig() *Config {
	backend := getStringOrDefault("storage.backend", BackendDynamo)

	var conf = &Config{
		StorageConfig: StorageConfig{
			Backend:  backend,
			Region:   getStringOrDefault("storage.region", "us-east-1"),
			Endpoint: getStringOrDefault("storage.endpoint", ""),
		},
		ServerConfig: ServerConfig{
			Port: getIntOrDefault("server.port", 8080),
		},
		AuthConfig: AuthConfig{
			TokenSecret: getString("auth.tokenSecret"),
		},
		PaymentConfig: PaymentConfig{
			StripeSecretKey: getStringOrDefault("payment.stripeSecretKey", ""),
			Currency:        getStringOrDefault("payment.currency", "usd"),
		},
		VotingConfig: VotingConfig{
			SingleVotePerVoter: getBoolOrDefault("voting.singleVotePerVoter", false),
		},
		LogConfig: LogConfig{
			Level:  getStringOrDefault("log.level", "debug"),
			Format: getStringOrDefault("log.format", "text"),
		},
	}

	switch backend {
	case BackendMongo:
		conf.MongoURI = getString("mongo.uri")
		conf.MongoDatabase = getStringOrDefault("mongo.database", "surveyDB")
	default:
		conf.TableNameUsers = getString("storage.TableNameUsers")
		conf.TableNameSurveys = getString("storage.TableNameSurveys")
		conf.TableNameVotes = getString("storage.TableNameVotes")
		conf.TableNameReports = getString("storage.TableNameReports")
		conf.TableNameComments = getString("storage.TableNameComments")
		conf.TableNameFeedback = getString("storage.TableNameFeedback")
	}

	settingsOnce.Do(func() {
		logging.Log.Printf("Reading settings! backend=%s port=%d", conf.Backend, conf.Port)
	})

	return conf
}

func getString(name string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Fatalf("required environment variable '%s' is missing", name)
	return ""
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getBoolOrDefault(name string, def bool) bool {
	if viper.IsSet(name) {
		v := viper.GetBool(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
