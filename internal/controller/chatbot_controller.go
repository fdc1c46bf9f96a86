package controller

import (
	"github.com/gofiber/fiber/v2"

	"proposal-eval-be/internal/dto"
	"proposal-eval-be/internal/pkg/serverutils"
	"proposal-eval-be/internal/service"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Sessions(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
}

func NewChatbotController(chatbotService service.IChatbotService) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot/v1")
	h.Post("chat", c.Chat)
	h.Get("sessions", c.Sessions)
	h.Get("sessions/:session_id/history", c.History)
}

func (c *chatbotController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatbotService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat", res))
}

func (c *chatbotController) History(ctx *fiber.Ctx) error {
	userId := ctx.Query("user_id")
	sessionId := ctx.Params("session_id")

	res, err := c.chatbotService.History(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show chat history", res))
}

func (c *chatbotController) Sessions(ctx *fiber.Ctx) error {
	userId := ctx.Query("user_id")

	res, err := c.chatbotService.Sessions(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list chat sessions", res))
}
