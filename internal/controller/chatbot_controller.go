package controller

import (
	"hostelnexus-be/internal/dto"
	"hostelnexus-be/internal/pkg/serverutils"
	"hostelnexus-be/internal/service"
	"hostelnexus-be/pkg/dialog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetAllSessions(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
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
	// Anonymous visitors may chat; only complaint submission needs identity
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Post("session", c.CreateSession)
	h.Get("session", c.GetAllSessions)
	h.Get("session/:id/history", c.GetChatHistory)
	h.Post("chat", c.SendChat)
	h.Delete("session/:id", c.DeleteSession)
}

// studentIdFrom reads the optional identity. uuid.Nil marks an anonymous
// visitor.
func studentIdFrom(ctx *fiber.Ctx) uuid.UUID {
	raw := ctx.Locals("student_id")
	if raw == nil {
		return uuid.Nil
	}
	idStr, ok := raw.(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func (c *chatbotController) CreateSession(ctx *fiber.Ctx) error {
	studentId := studentIdFrom(ctx)

	res, err := c.chatbotService.CreateSession(ctx.Context(), studentId)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *chatbotController) GetAllSessions(ctx *fiber.Ctx) error {
	studentId := studentIdFrom(ctx)

	res, err := c.chatbotService.GetAllSessions(ctx.Context(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get sessions", res))
}

func (c *chatbotController) GetChatHistory(ctx *fiber.Ctx) error {
	studentId := studentIdFrom(ctx)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.chatbotService.GetChatHistory(ctx.Context(), studentId, id)
	if err != nil {
		if err == service.ErrSessionNotFound {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get history", res))
}

func (c *chatbotController) SendChat(ctx *fiber.Ctx) error {
	studentId := studentIdFrom(ctx)

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatbotService.SendChat(ctx.Context(), studentId, &req)
	if err != nil {
		switch err {
		case service.ErrSessionNotFound:
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case dialog.ErrEmptyInput:
			return fiber.NewError(fiber.StatusBadRequest, "message must not be empty")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatbotController) DeleteSession(ctx *fiber.Ctx) error {
	studentId := studentIdFrom(ctx)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.chatbotService.DeleteSession(ctx.Context(), studentId, id); err != nil {
		if err == service.ErrSessionNotFound {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}
