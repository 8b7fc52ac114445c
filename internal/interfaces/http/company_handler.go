package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.CompanyListEnvelope
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.CompanyListEnvelope{Companies: list})
}

// Get godoc
// @Summary      Obtener empresa con sus facturas
// @Tags         companies
// @Produce      json
// @Param        code  path      string  true  "Código de la empresa"
// @Success      200   {object}  dto.CompanyDetailEnvelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /companies/{code} [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(dto.CompanyDetailEnvelope{Company: *out})
}

// Create godoc
// @Summary      Crear empresa (el código se deriva del nombre)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CompanyRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CompanyEnvelope{Company: *out})
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        code  path      string              true  "Código de la empresa"
// @Param        body  body      dto.CompanyRequest  true  "Datos de la empresa"
// @Success      200   {object}  dto.CompanyEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /companies/{code} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.CompanyRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.Context(), c.Params("code"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.CompanyEnvelope{Company: *out})
}

// Delete godoc
// @Summary      Eliminar empresa
// @Tags         companies
// @Produce      json
// @Param        code  path      string  true  "Código de la empresa"
// @Success      200   {object}  dto.StatusResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /companies/{code} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("code")); err != nil {
		return err
	}
	return c.JSON(dto.Deleted())
}

// parseBody decodifica el JSON del body; un cuerpo malformado es 400.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return nil
}
