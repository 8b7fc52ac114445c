package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// IndustryHandler maneja industrias y su asociación con empresas.
type IndustryHandler struct {
	uc *usecase.IndustryUseCase
}

// NewIndustryHandler construye el handler.
func NewIndustryHandler(uc *usecase.IndustryUseCase) *IndustryHandler {
	return &IndustryHandler{uc: uc}
}

// List godoc
// @Summary      Listar industrias
// @Tags         industries
// @Produce      json
// @Success      200  {object}  dto.IndustryListEnvelope
// @Router       /industries [get]
func (h *IndustryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.IndustryListEnvelope{Industries: list})
}

// Get godoc
// @Summary      Obtener industria por código
// @Tags         industries
// @Produce      json
// @Param        code  path      string  true  "Código de la industria"
// @Success      200   {object}  dto.IndustryEnvelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /industries/{code} [get]
func (h *IndustryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(dto.IndustryEnvelope{Industry: *out})
}

// Create godoc
// @Summary      Crear industria
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateIndustryRequest  true  "Código y etiqueta"
// @Success      201   {object}  dto.IndustryEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /industries [post]
func (h *IndustryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIndustryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IndustryEnvelope{Industry: *out})
}

// Associate godoc
// @Summary      Asociar una industria a una empresa
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        body  body      dto.AssociateIndustryRequest  true  "Empresa e industria"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /industries/associate [post]
func (h *IndustryHandler) Associate(c *fiber.Ctx) error {
	var in dto.AssociateIndustryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Associate(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
