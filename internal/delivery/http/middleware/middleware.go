package middleware

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Middleware bundles the dependencies shared by the HTTP middlewares.
type Middleware struct {
	Log    *logrus.Logger
	Config *viper.Viper
}

type MiddlewareConfig struct {
	Log    *logrus.Logger
	Config *viper.Viper
}

func NewMiddleware(c *MiddlewareConfig) *Middleware {
	return &Middleware{
		Log:    c.Log,
		Config: c.Config,
	}
}
