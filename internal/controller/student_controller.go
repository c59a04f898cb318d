package controller

import (
	"hostelnexus-be/internal/dto"
	"hostelnexus-be/internal/pkg/serverutils"
	"hostelnexus-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStudentController interface {
	RegisterRoutes(r fiber.Router)
	Profile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
}

type studentController struct {
	studentService service.IStudentService
}

func NewStudentController(studentService service.IStudentService) IStudentController {
	return &studentController{
		studentService: studentService,
	}
}

func (c *studentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/student/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("profile", c.Profile)
	h.Put("profile", c.UpdateProfile)
	h.Get("dashboard", c.Dashboard)
}

func (c *studentController) Profile(ctx *fiber.Ctx) error {
	studentIdStr := ctx.Locals("student_id").(string)
	studentId, _ := uuid.Parse(studentIdStr)

	res, err := c.studentService.GetProfile(ctx.Context(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

func (c *studentController) UpdateProfile(ctx *fiber.Ctx) error {
	studentIdStr := ctx.Locals("student_id").(string)
	studentId, _ := uuid.Parse(studentIdStr)

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.studentService.UpdateProfile(ctx.Context(), studentId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update profile", res))
}

func (c *studentController) Dashboard(ctx *fiber.Ctx) error {
	studentIdStr := ctx.Locals("student_id").(string)
	studentId, _ := uuid.Parse(studentIdStr)

	res, err := c.studentService.GetDashboard(ctx.Context(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard", res))
}
