package controller

import (
	"hostelnexus-be/internal/dto"
	"hostelnexus-be/internal/pkg/serverutils"
	"hostelnexus-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IComplaintController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type complaintController struct {
	complaintService service.IComplaintService
}

func NewComplaintController(complaintService service.IComplaintService) IComplaintController {
	return &complaintController{
		complaintService: complaintService,
	}
}

func (c *complaintController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/complaint/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.Index)
	h.Get(":id", c.Show)
	h.Patch(":id/status", c.UpdateStatus)
	h.Delete(":id", c.Delete)
}

func (c *complaintController) Create(ctx *fiber.Ctx) error {
	studentIdStr := ctx.Locals("student_id").(string)
	studentId, _ := uuid.Parse(studentIdStr)

	var req dto.CreateComplaintRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.complaintService.CreateComplaint(ctx.Context(), studentId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create complaint", res))
}

func (c *complaintController) Index(ctx *fiber.Ctx) error {
	studentIdStr := ctx.Locals("student_id").(string)
	studentId, _ := uuid.Parse(studentIdStr)

	res, err := c.complaintService.GetComplaints(ctx.Context(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get complaints", res))
}

func (c *complaintController) Show(ctx *fiber.Ctx) error {
	studentIdStr := ctx.Locals("student_id").(string)
	studentId, _ := uuid.Parse(studentIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.complaintService.GetComplaint(ctx.Context(), studentId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get complaint", res))
}

func (c *complaintController) UpdateStatus(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.UpdateComplaintStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.complaintService.UpdateStatus(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update complaint status", res))
}

func (c *complaintController) Delete(ctx *fiber.Ctx) error {
	studentIdStr := ctx.Locals("student_id").(string)
	studentId, _ := uuid.Parse(studentIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.complaintService.DeleteComplaint(ctx.Context(), studentId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete complaint", nil))
}
