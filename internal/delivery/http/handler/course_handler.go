package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/barmaja/barmaja-be/internal/delivery/http/entity"
	"github.com/barmaja/barmaja-be/internal/delivery/http/usecase"
	"github.com/barmaja/barmaja-be/internal/pkg/validate"
)

type (
	CourseHandler interface {
		Health(ctx *fiber.Ctx) error
		SelectLanguage(ctx *fiber.Ctx) error
		GetLesson(ctx *fiber.Ctx) error
		AskTutor(ctx *fiber.Ctx) error
		GenerateQuiz(ctx *fiber.Ctx) error
		SubmitQuiz(ctx *fiber.Ctx) error
		SessionStatus(ctx *fiber.Ctx) error
		AvailableLanguages(ctx *fiber.Ctx) error
		GenerateCodingChallenge(ctx *fiber.Ctx) error
		SubmitCode(ctx *fiber.Ctx) error
	}

	courseHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.CourseUsecase
	}
)

func NewCourseHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.CourseUsecase) CourseHandler {
	return &courseHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /health
func (h *courseHandler) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(h.usecase.Health())
}

// POST /select-language
func (h *courseHandler) SelectLanguage(ctx *fiber.Ctx) error {
	var req entity.LanguageSelectionRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	return ctx.JSON(h.usecase.SelectLanguage(ctx.UserContext(), req.Language))
}

// GET /lesson/:lesson_number
func (h *courseHandler) GetLesson(ctx *fiber.Ctx) error {
	lessonNumber, err := lessonNumberParam(ctx)
	if err != nil {
		return err
	}

	resp, err := h.usecase.Lesson(ctx.UserContext(), lessonNumber)
	if err != nil {
		return err
	}
	return ctx.JSON(resp)
}

// POST /ask-tutor
func (h *courseHandler) AskTutor(ctx *fiber.Ctx) error {
	var req entity.QuestionRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	resp, err := h.usecase.AskTutor(ctx.UserContext(), req.Question)
	if err != nil {
		return err
	}
	return ctx.JSON(resp)
}

// GET /generate-quiz/:lesson_number
func (h *courseHandler) GenerateQuiz(ctx *fiber.Ctx) error {
	lessonNumber, err := lessonNumberParam(ctx)
	if err != nil {
		return err
	}

	resp, err := h.usecase.GenerateQuiz(ctx.UserContext(), lessonNumber)
	if err != nil {
		return err
	}
	return ctx.JSON(resp)
}

// POST /submit-quiz
func (h *courseHandler) SubmitQuiz(ctx *fiber.Ctx) error {
	var req entity.QuizSubmissionRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	resp, err := h.usecase.SubmitQuiz(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(resp)
}

// GET /session-status
func (h *courseHandler) SessionStatus(ctx *fiber.Ctx) error {
	return ctx.JSON(h.usecase.SessionStatus())
}

// GET /available-languages
func (h *courseHandler) AvailableLanguages(ctx *fiber.Ctx) error {
	return ctx.JSON(h.usecase.AvailableLanguages())
}

// GET /generate-coding-challenge
func (h *courseHandler) GenerateCodingChallenge(ctx *fiber.Ctx) error {
	resp, err := h.usecase.CodingChallenge(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(resp)
}

// POST /submit-code
func (h *courseHandler) SubmitCode(ctx *fiber.Ctx) error {
	var req entity.CodeSubmissionRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return err
	}

	resp, err := h.usecase.SubmitCode(ctx.UserContext(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(resp)
}

func lessonNumberParam(ctx *fiber.Ctx) (int, error) {
	raw := ctx.Params("lesson_number")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid lesson number: %s", raw))
	}
	return n, nil
}
