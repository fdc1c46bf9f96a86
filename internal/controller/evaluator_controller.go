package controller

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"proposal-eval-be/internal/dto"
	"proposal-eval-be/internal/pkg/serverutils"
	"proposal-eval-be/internal/service"
)

type IEvaluatorController interface {
	RegisterRoutes(r fiber.Router)
	Evaluate(ctx *fiber.Ctx) error
	Followup(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	UpdateSessionTitle(ctx *fiber.Ctx) error
}

type evaluatorController struct {
	evaluatorService service.IEvaluatorService
}

func NewEvaluatorController(evaluatorService service.IEvaluatorService) IEvaluatorController {
	return &evaluatorController{
		evaluatorService: evaluatorService,
	}
}

func (c *evaluatorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/evaluator/v1")
	h.Post("evaluate", c.Evaluate)
	h.Post("followup", c.Followup)
	h.Get("sessions", c.ListSessions)
	h.Get("sessions/:session_id", c.ShowSession)
	h.Put("sessions/:session_id/title", c.UpdateSessionTitle)
}

func (c *evaluatorController) Evaluate(ctx *fiber.Ctx) error {
	var req dto.EvaluateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	proposalFile, err := readUpload(ctx, "proposal_file")
	if err != nil {
		return err
	}
	torFile, err := readUpload(ctx, "tor_file")
	if err != nil {
		return err
	}

	res, err := c.evaluatorService.Evaluate(ctx.Context(), &req, proposalFile, torFile)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success evaluate proposal", res))
}

// readUpload loads an optional multipart file into memory.
func readUpload(ctx *fiber.Ctx, field string) (*dto.UploadedFile, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		// Absent file is fine, text input may be used instead.
		return nil, nil
	}
	return readFileHeader(fileHeader)
}

func readFileHeader(fileHeader *multipart.FileHeader) (*dto.UploadedFile, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &dto.UploadedFile{
		Filename: fileHeader.Filename,
		Data:     data,
	}, nil
}

func (c *evaluatorController) Followup(ctx *fiber.Ctx) error {
	var req dto.EvaluatorFollowupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.evaluatorService.Followup(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer followup", res))
}

func (c *evaluatorController) ShowSession(ctx *fiber.Ctx) error {
	userId := ctx.Query("user_id")
	sessionId := ctx.Params("session_id")

	res, err := c.evaluatorService.ShowSession(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show evaluation session", res))
}

func (c *evaluatorController) ListSessions(ctx *fiber.Ctx) error {
	userId := ctx.Query("user_id")
	limit, _ := strconv.Atoi(ctx.Query("limit", "20"))
	offset, _ := strconv.Atoi(ctx.Query("offset", "0"))

	res, err := c.evaluatorService.ListSessions(ctx.Context(), userId, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list evaluation sessions", res))
}

func (c *evaluatorController) UpdateSessionTitle(ctx *fiber.Ctx) error {
	var req dto.SessionTitleUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SessionID = ctx.Params("session_id")

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.evaluatorService.UpdateSessionTitle(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update session title", nil))
}
