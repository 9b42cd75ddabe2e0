package config

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/barmaja/barmaja-be/internal/delivery/http/handler"
	"github.com/barmaja/barmaja-be/internal/delivery/http/middleware"
	"github.com/barmaja/barmaja-be/internal/delivery/http/route"
	"github.com/barmaja/barmaja-be/internal/delivery/http/usecase"
	"github.com/barmaja/barmaja-be/internal/pkg/generator"
	"github.com/barmaja/barmaja-be/internal/pkg/llm"
	"github.com/barmaja/barmaja-be/internal/pkg/validate"
	"github.com/barmaja/barmaja-be/internal/session"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	Log       *logrus.Logger
	Validator *validate.Validator
}

func Bootstrap(config *BootstrapConfig) {

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	apiKey := config.Config.GetString("llm.gemini.api_key")
	model := config.Config.GetString("llm.gemini.model")

	gemini, err := llm.NewGeminiClient(context.Background(), apiKey, model)
	if err != nil {
		config.Log.Fatalf("Failed to create Gemini client: %v", err)
	}

	gen := generator.New(gemini, config.Log)
	store := session.NewStore()

	courseUsecase := usecase.NewCourseUsecase(usecase.CourseConfig{
		Store:     store,
		Generator: gen,
		Model:     gemini.ModelID(),
		Log:       config.Log,
	})
	courseHandler := handler.NewCourseHandler(config.Validator, config.Log, courseUsecase)

	route.Setup(&route.RouteConfig{
		Api:           config.Api,
		Middleware:    mid,
		CourseHandler: courseHandler,
	})
}
