package controller

import (
	"hostelnexus-be/internal/dto"
	"hostelnexus-be/internal/pkg/serverutils"
	"hostelnexus-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMessController interface {
	RegisterRoutes(r fiber.Router)
	WeeklyMenu(ctx *fiber.Ctx) error
	DayMenu(ctx *fiber.Ctx) error
	UpsertMenu(ctx *fiber.Ctx) error
	SubmitFeedback(ctx *fiber.Ctx) error
	MyFeedback(ctx *fiber.Ctx) error
}

type messController struct {
	messService service.IMessService
}

func NewMessController(messService service.IMessService) IMessController {
	return &messController{
		messService: messService,
	}
}

func (c *messController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/mess/v1")
	h.Get("menu", c.WeeklyMenu)
	h.Get("menu/:day", c.DayMenu)
	h.Put("menu", serverutils.JwtMiddleware, c.UpsertMenu)
	h.Post("feedback", serverutils.JwtMiddleware, c.SubmitFeedback)
	h.Get("feedback", serverutils.JwtMiddleware, c.MyFeedback)
}

func (c *messController) WeeklyMenu(ctx *fiber.Ctx) error {
	res, err := c.messService.GetWeeklyMenu(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get weekly menu", res))
}

func (c *messController) DayMenu(ctx *fiber.Ctx) error {
	day := ctx.Params("day")

	res, err := c.messService.GetMenuForDay(ctx.Context(), day)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "no menu published for that day")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get menu", res))
}

func (c *messController) UpsertMenu(ctx *fiber.Ctx) error {
	var req dto.UpsertMessMenuRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.messService.UpsertMenu(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upsert menu", res))
}

func (c *messController) SubmitFeedback(ctx *fiber.Ctx) error {
	studentIdStr := ctx.Locals("student_id").(string)
	studentId, _ := uuid.Parse(studentIdStr)

	var req dto.CreateMessFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.messService.SubmitFeedback(ctx.Context(), studentId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success submit feedback", res))
}

func (c *messController) MyFeedback(ctx *fiber.Ctx) error {
	studentIdStr := ctx.Locals("student_id").(string)
	studentId, _ := uuid.Parse(studentIdStr)

	res, err := c.messService.GetMyFeedback(ctx.Context(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get feedback", res))
}
