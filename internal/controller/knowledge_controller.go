package controller

import (
	"github.com/gofiber/fiber/v2"

	"proposal-eval-be/internal/dto"
	"proposal-eval-be/internal/pkg/serverutils"
	"proposal-eval-be/internal/service"
)

type IKnowledgeController interface {
	RegisterRoutes(r fiber.Router)
	Ingest(ctx *fiber.Ctx) error
	ListDocuments(ctx *fiber.Ctx) error
	DeleteDocument(ctx *fiber.Ctx) error
}

type knowledgeController struct {
	knowledgeService service.IKnowledgeService
}

func NewKnowledgeController(knowledgeService service.IKnowledgeService) IKnowledgeController {
	return &knowledgeController{
		knowledgeService: knowledgeService,
	}
}

func (c *knowledgeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/knowledge/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("documents", c.Ingest)
	h.Get("documents", c.ListDocuments)
	h.Delete("documents/:document_name", c.DeleteDocument)
}

func (c *knowledgeController) Ingest(ctx *fiber.Ctx) error {
	var req dto.IngestDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	file, err := readUpload(ctx, "file")
	if err != nil {
		return err
	}

	res, err := c.knowledgeService.Ingest(ctx.Context(), &req, file)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success queue document", res))
}

func (c *knowledgeController) ListDocuments(ctx *fiber.Ctx) error {
	res, err := c.knowledgeService.ListDocuments(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list documents", res))
}

func (c *knowledgeController) DeleteDocument(ctx *fiber.Ctx) error {
	documentName := ctx.Params("document_name")

	if err := c.knowledgeService.DeleteDocument(ctx.Context(), documentName); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete document", nil))
}
