package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clubhub-api/internal/application/dto"
	"github.com/jhoicas/clubhub-api/internal/application/usecase"
	"github.com/jhoicas/clubhub-api/internal/domain/entity"
)

// ClubOverrideHandler maneja el recorte de módulos por club. El admin de un
// club solo puede tocar su propio club; el super-admin, cualquiera.
type ClubOverrideHandler struct {
	uc *usecase.ClubOverrideUseCase
}

// NewClubOverrideHandler construye el handler.
func NewClubOverrideHandler(uc *usecase.ClubOverrideUseCase) *ClubOverrideHandler {
	return &ClubOverrideHandler{uc: uc}
}

// sameClubOrSuper el club admin queda confinado a su club del token.
func sameClubOrSuper(c *fiber.Ctx, clubID string) bool {
	return GetRole(c) == entity.RoleSuperAdmin || GetClubID(c) == clubID
}

// Get godoc
// @Summary      Override de módulos de un club para un rol
// @Tags         clubs
// @Produce      json
// @Param        clubId  path  string  true  "Club"
// @Param        role    path  string  true  "Rol"
// @Success      200     {object}  dto.ClubOverrideResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/clubs/{clubId}/roles/{role}/modules [get]
func (h *ClubOverrideHandler) Get(c *fiber.Ctx) error {
	clubID := c.Params("clubId")
	if !sameClubOrSuper(c, clubID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "club ajeno"})
	}
	out, err := h.uc.Get(c.Context(), clubID, c.Params("role"))
	if err != nil {
		return overrideError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el club no tiene override; aplica la allow-list del rol"})
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Crear o reemplazar el override de un club
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Param        clubId  path  string  true  "Club"
// @Param        role    path  string  true  "Rol"
// @Param        body    body  dto.SaveClubOverrideRequest  true  "Módulos visibles"
// @Success      200     {object}  dto.ClubOverrideResponse
// @Security     BearerAuth
// @Router       /api/clubs/{clubId}/roles/{role}/modules [put]
func (h *ClubOverrideHandler) Save(c *fiber.Ctx) error {
	clubID := c.Params("clubId")
	if !sameClubOrSuper(c, clubID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "club ajeno"})
	}
	var in dto.SaveClubOverrideRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(c.Context(), clubID, c.Params("role"), in)
	if err != nil {
		return overrideError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Revertir el override de un club (volver a la allow-list)
// @Tags         clubs
// @Param        clubId  path  string  true  "Club"
// @Param        role    path  string  true  "Rol"
// @Success      204     "reverted"
// @Security     BearerAuth
// @Router       /api/clubs/{clubId}/roles/{role}/modules [delete]
func (h *ClubOverrideHandler) Delete(c *fiber.Ctx) error {
	clubID := c.Params("clubId")
	if !sameClubOrSuper(c, clubID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "club ajeno"})
	}
	if err := h.uc.Delete(c.Context(), clubID, c.Params("role")); err != nil {
		return overrideError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func overrideError(c *fiber.Ctx, err error) error {
	return settingsError(c, err) // mismo mapeo: UNKNOWN_ROLE o INTERNAL
}
