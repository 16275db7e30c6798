package controller

import (
	"strconv"

	"mightyops-be/internal/dto"
	"mightyops-be/internal/pkg/serverutils"
	"mightyops-be/internal/service"
	"mightyops-be/pkg/reporting"

	"github.com/gofiber/fiber/v2"
)

type IRecordController interface {
	RegisterRoutes(r fiber.Router)
	CreateViolationNote(ctx *fiber.Ctx) error
	CreateEvaluation(ctx *fiber.Ctx) error
	CreateCapitalRequest(ctx *fiber.Ctx) error
	CreateMarketResearch(ctx *fiber.Ctx) error
	CreateStaffingCulture(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Image(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type recordController struct {
	recordService service.IRecordService
}

func NewRecordController(recordService service.IRecordService) IRecordController {
	return &recordController{
		recordService: recordService,
	}
}

func (c *recordController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/records/v1")

	// Submission endpoints stay open; field staff submit without accounts.
	h.Post("/notes", c.CreateViolationNote)
	h.Post("/evaluations", c.CreateEvaluation)
	h.Post("/capital-requests", c.CreateCapitalRequest)
	h.Post("/market-research", c.CreateMarketResearch)
	h.Post("/staffing-culture", c.CreateStaffingCulture)

	// Attachment links inside exported artifacts open this directly.
	h.Get("/:form/:id/image", c.Image)

	h.Get("/:form/stats", serverutils.JwtMiddleware, c.Stats)
	h.Post("/:form/delete", serverutils.JwtMiddleware, c.Delete)
	h.Get("/:form", serverutils.JwtMiddleware, c.List)
}

func (c *recordController) CreateViolationNote(ctx *fiber.Ctx) error {
	var req dto.CreateViolationNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recordService.CreateViolationNote(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *recordController) CreateEvaluation(ctx *fiber.Ctx) error {
	var req dto.CreateEvaluationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recordService.CreateEvaluation(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create evaluation", res))
}

func (c *recordController) CreateCapitalRequest(ctx *fiber.Ctx) error {
	var req dto.CreateCapitalRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recordService.CreateCapitalRequest(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create capital request", res))
}

func (c *recordController) CreateMarketResearch(ctx *fiber.Ctx) error {
	var req dto.CreateMarketResearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recordService.CreateMarketResearch(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create market research entry", res))
}

func (c *recordController) CreateStaffingCulture(ctx *fiber.Ctx) error {
	var req dto.CreateStaffingCultureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recordService.CreateStaffingCulture(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create staffing culture note", res))
}

func (c *recordController) List(ctx *fiber.Ctx) error {
	form := reporting.FormType(ctx.Params("form"))

	res, err := c.recordService.List(ctx.Context(), form)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list records", res))
}

func (c *recordController) Stats(ctx *fiber.Ctx) error {
	form := reporting.FormType(ctx.Params("form"))

	res, err := c.recordService.Stats(ctx.Context(), form)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get stats", res))
}

func (c *recordController) Delete(ctx *fiber.Ctx) error {
	form := reporting.FormType(ctx.Params("form"))

	var req dto.DeleteRecordsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.recordService.Delete(ctx.Context(), form, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete records", res))
}

func (c *recordController) Image(ctx *fiber.Ctx) error {
	form := reporting.FormType(ctx.Params("form"))
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return serverutils.BadRequest("invalid record id")
	}

	data, err := c.recordService.Image(ctx.Context(), form, id)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Send(data)
}
