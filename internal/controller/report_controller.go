package controller

import (
	"fmt"

	"mightyops-be/internal/dto"
	"mightyops-be/internal/pkg/serverutils"
	"mightyops-be/internal/service"
	"mightyops-be/pkg/reporting"

	"github.com/gofiber/fiber/v2"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Resort(ctx *fiber.Ctx) error
	SetSelectMode(ctx *fiber.Ctx) error
	ToggleSelection(ctx *fiber.Ctx) error
	SelectAll(ctx *fiber.Ctx) error
	DeleteSelected(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	EmailExport(ctx *fiber.Ctx) error
}

type reportController struct {
	reportService service.IReportService
}

func NewReportController(reportService service.IReportService) IReportController {
	return &reportController{
		reportService: reportService,
	}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reports/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post(":form/generate", c.Generate)
	h.Post(":form/sort", c.Resort)
	h.Put(":form/select-mode", c.SetSelectMode)
	h.Post(":form/selection/toggle", c.ToggleSelection)
	h.Post(":form/selection/all", c.SelectAll)
	h.Delete(":form/selected", c.DeleteSelected)
	h.Post(":form/export", c.Export)
	h.Post(":form/email", c.EmailExport)
}

func formParam(ctx *fiber.Ctx) reporting.FormType {
	return reporting.FormType(ctx.Params("form"))
}

func (c *reportController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reportService.Generate(ctx.Context(), formParam(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate report", res))
}

func (c *reportController) Resort(ctx *fiber.Ctx) error {
	var req dto.ResortRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reportService.Resort(ctx.Context(), formParam(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success sort report", res))
}

func (c *reportController) SetSelectMode(ctx *fiber.Ctx) error {
	var req dto.SelectAllRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.reportService.SetSelectMode(formParam(ctx), req.On)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success set select mode", res))
}

func (c *reportController) ToggleSelection(ctx *fiber.Ctx) error {
	var req dto.ToggleSelectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reportService.ToggleSelection(formParam(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success toggle selection", res))
}

func (c *reportController) SelectAll(ctx *fiber.Ctx) error {
	var req dto.SelectAllRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.reportService.SelectAll(formParam(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success select all", res))
}

func (c *reportController) DeleteSelected(ctx *fiber.Ctx) error {
	var req dto.DeleteSelectedRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.reportService.DeleteSelected(ctx.Context(), formParam(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete selected records", res))
}

// Export streams the artifact as a download.
func (c *reportController) Export(ctx *fiber.Ctx) error {
	var req dto.ExportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	file, err := c.reportService.Export(ctx.Context(), formParam(ctx), &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, file.MIME)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, file.Name))
	return ctx.Send(file.Data)
}

func (c *reportController) EmailExport(ctx *fiber.Ctx) error {
	var req dto.EmailExportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.reportService.EmailExport(ctx.Context(), formParam(ctx), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success email report", nil))
}
