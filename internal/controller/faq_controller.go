package controller

import (
	"hostelnexus-be/internal/pkg/serverutils"
	"hostelnexus-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFaqController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
}

type faqController struct {
	faqService service.IFaqService
}

func NewFaqController(faqService service.IFaqService) IFaqController {
	return &faqController{
		faqService: faqService,
	}
}

func (c *faqController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/faq/v1")
	h.Get("", c.Index)
}

// Index lists all FAQs, or filters by the optional ?q= query.
func (c *faqController) Index(ctx *fiber.Ctx) error {
	query := ctx.Query("q")

	res, err := c.faqService.Search(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get faqs", res))
}
