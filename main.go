// @title Simple Survey System API
// @version 1.0
// @description Backend API for surveys, voting, moderation and pro-user payments

// @securityDefinitions.apikey BearerToken
// @in header
// @name Authorization
package main

import (
	"strings"

	_ "github.com/alex-pricope/simple-survey-system/docs"

	"github.com/alex-pricope/simple-survey-system/api"
	"github.com/alex-pricope/simple-survey-system/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func main() {
	logging.BoostrapLogger()

	// Optional .env for local runs
	if err := godotenv.Load(); err != nil {
		logging.Log.Debugf("no .env file loaded: %v", err)
	}

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("auth.tokenSecret", "ACCESS_TOKEN")
	_ = viper.BindEnv("payment.stripeSecretKey", "STRIPE_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	// Read config
	config := api.ReadConfig()
	logging.Configure(config.Level, config.Format)

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
