package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/barmaja/barmaja-be/internal/delivery/http/handler"
)

func SetupCourseRoute(api *fiber.App, handler handler.CourseHandler) {
	api.Get("/health", handler.Health)
	api.Get("/available-languages", handler.AvailableLanguages)
	api.Post("/select-language", handler.SelectLanguage)
	api.Get("/lesson/:lesson_number", handler.GetLesson)
	api.Post("/ask-tutor", handler.AskTutor)
	api.Get("/generate-quiz/:lesson_number", handler.GenerateQuiz)
	api.Post("/submit-quiz", handler.SubmitQuiz)
	api.Get("/session-status", handler.SessionStatus)
	api.Get("/generate-coding-challenge", handler.GenerateCodingChallenge)
	api.Post("/submit-code", handler.SubmitCode)
}
