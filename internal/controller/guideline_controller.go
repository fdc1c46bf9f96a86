package controller

import (
	"github.com/gofiber/fiber/v2"

	"proposal-eval-be/internal/dto"
	"proposal-eval-be/internal/pkg/serverutils"
	"proposal-eval-be/internal/service"
)

type IGuidelineController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Deactivate(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type guidelineController struct {
	guidelineService service.IGuidelineService
}

func NewGuidelineController(guidelineService service.IGuidelineService) IGuidelineController {
	return &guidelineController{
		guidelineService: guidelineService,
	}
}

func (c *guidelineController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/guideline/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Put(":guideline_id", c.Update)
	h.Delete(":guideline_id", c.Deactivate)
}

func (c *guidelineController) Create(ctx *fiber.Ctx) error {
	var req dto.GuidelineRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.guidelineService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create guideline", res))
}

func (c *guidelineController) Update(ctx *fiber.Ctx) error {
	guidelineId := ctx.Params("guideline_id")

	var req dto.GuidelineRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.guidelineService.Update(ctx.Context(), guidelineId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update guideline", res))
}

func (c *guidelineController) Deactivate(ctx *fiber.Ctx) error {
	guidelineId := ctx.Params("guideline_id")

	if err := c.guidelineService.Deactivate(ctx.Context(), guidelineId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success deactivate guideline", nil))
}

func (c *guidelineController) List(ctx *fiber.Ctx) error {
	organizationId := ctx.Query("organization_id")

	res, err := c.guidelineService.List(ctx.Context(), organizationId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list guidelines", res))
}
