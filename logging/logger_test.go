package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigure(t *testing.T) {
	t.Run("Happy path - level and json format", func(t *testing.T) {
		BoostrapLogger()
		Configure("warn", "json")

		assert.Equal(t, logrus.WarnLevel, Log.GetLevel())
		assert.IsType(t, &logrus.JSONFormatter{}, Log.Formatter)
	})

	t.Run("Unhappy path - unknown level keeps debug", func(t *testing.T) {
		BoostrapLogger()
		Configure("loud", "text")

		assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
		assert.IsType(t, &logrus.TextFormatter{}, Log.Formatter)
	})
}
