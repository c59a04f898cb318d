package controller

import (
	"hostelnexus-be/internal/dto"
	"hostelnexus-be/internal/pkg/serverutils"
	"hostelnexus-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRoomController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	MyRoom(ctx *fiber.Ctx) error
	RequestChange(ctx *fiber.Ctx) error
	ChangeRequests(ctx *fiber.Ctx) error
	RequestMaintenance(ctx *fiber.Ctx) error
	MaintenanceRequests(ctx *fiber.Ctx) error
}

type roomController struct {
	roomService service.IRoomService
}

func NewRoomController(roomService service.IRoomService) IRoomController {
	return &roomController{
		roomService: roomService,
	}
}

func (c *roomController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/room/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Index)
	h.Get("mine", c.MyRoom)
	h.Post("change-request", c.RequestChange)
	h.Get("change-request", c.ChangeRequests)
	h.Post("maintenance", c.RequestMaintenance)
	h.Get("maintenance", c.MaintenanceRequests)
}

func (c *roomController) Index(ctx *fiber.Ctx) error {
	res, err := c.roomService.GetAllRooms(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get rooms", res))
}

func (c *roomController) MyRoom(ctx *fiber.Ctx) error {
	studentIdStr := ctx.Locals("student_id").(string)
	studentId, _ := uuid.Parse(studentIdStr)

	res, err := c.roomService.GetMyRoom(ctx.Context(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get room", res))
}

func (c *roomController) RequestChange(ctx *fiber.Ctx) error {
	studentIdStr := ctx.Locals("student_id").(string)
	studentId, _ := uuid.Parse(studentIdStr)

	var req dto.CreateRoomChangeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.roomService.RequestRoomChange(ctx.Context(), studentId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success request room change", res))
}

func (c *roomController) ChangeRequests(ctx *fiber.Ctx) error {
	studentIdStr := ctx.Locals("student_id").(string)
	studentId, _ := uuid.Parse(studentIdStr)

	res, err := c.roomService.GetRoomChangeRequests(ctx.Context(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get change requests", res))
}

func (c *roomController) RequestMaintenance(ctx *fiber.Ctx) error {
	studentIdStr := ctx.Locals("student_id").(string)
	studentId, _ := uuid.Parse(studentIdStr)

	var req dto.CreateMaintenanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.roomService.RequestMaintenance(ctx.Context(), studentId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success request maintenance", res))
}

func (c *roomController) MaintenanceRequests(ctx *fiber.Ctx) error {
	studentIdStr := ctx.Locals("student_id").(string)
	studentId, _ := uuid.Parse(studentIdStr)

	res, err := c.roomService.GetMaintenanceRequests(ctx.Context(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get maintenance requests", res))
}
