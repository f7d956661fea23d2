package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clubhub-api/internal/application/dto"
	"github.com/jhoicas/clubhub-api/internal/application/usecase"
)

// LayoutHandler maneja registros orden/ocultos por feature key. La key es
// opaca para el servidor: la feature dueña envía sus ítems canónicos.
type LayoutHandler struct {
	uc *usecase.LayoutUseCase
}

// NewLayoutHandler construye el handler.
func NewLayoutHandler(uc *usecase.LayoutUseCase) *LayoutHandler {
	return &LayoutHandler{uc: uc}
}

// Resolve godoc
// @Summary      Reconciliar el layout de una feature key contra sus ítems actuales
// @Tags         layouts
// @Accept       json
// @Produce      json
// @Param        key   path  string  true  "Feature key"
// @Param        body  body  dto.ResolveLayoutRequest  true  "Ítems canónicos"
// @Success      200   {object}  dto.LayoutResponse
// @Security     BearerAuth
// @Router       /api/layouts/{key}/resolve [post]
func (h *LayoutHandler) Resolve(c *fiber.Ctx) error {
	var in dto.ResolveLayoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.uc.Resolve(c.Context(), c.Params("key"), in.Items))
}

// Save godoc
// @Summary      Reemplazar el layout completo de una feature key
// @Tags         layouts
// @Accept       json
// @Produce      json
// @Param        key   path  string  true  "Feature key"
// @Param        body  body  dto.LayoutRecordPayload  true  "Registro orden/ocultos"
// @Success      200   {object}  dto.LayoutResponse
// @Security     BearerAuth
// @Router       /api/layouts/{key} [put]
func (h *LayoutHandler) Save(c *fiber.Ctx) error {
	var in dto.LayoutRecordPayload
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(c.Context(), c.Params("key"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Move godoc
// @Summary      Aplicar un gesto de reordenado sobre el layout de una key
// @Tags         layouts
// @Accept       json
// @Produce      json
// @Param        key   path  string  true  "Feature key"
// @Param        body  body  dto.MoveLayoutRequest  true  "Gesto source→destination"
// @Success      200   {object}  dto.LayoutResponse
// @Security     BearerAuth
// @Router       /api/layouts/{key}/move [post]
func (h *LayoutHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveLayoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Move(c.Context(), c.Params("key"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
