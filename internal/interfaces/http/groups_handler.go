package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clubhub-api/internal/application/dto"
	"github.com/jhoicas/clubhub-api/internal/application/usecase"
)

// GroupsHandler maneja la asignación de grupos del sidebar por rol
// (editor drag-and-drop del super-admin).
type GroupsHandler struct {
	uc *usecase.GroupAssignmentUseCase
}

// NewGroupsHandler construye el handler.
func NewGroupsHandler(uc *usecase.GroupAssignmentUseCase) *GroupsHandler {
	return &GroupsHandler{uc: uc}
}

// Get godoc
// @Summary      Asignación de grupos vigente de un rol
// @Tags         admin
// @Produce      json
// @Param        role  path  string  true  "Rol"
// @Success      200   {object}  dto.GroupAssignmentResponse
// @Security     BearerAuth
// @Router       /api/admin/roles/{role}/groups [get]
func (h *GroupsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("role"))
	if err != nil {
		return settingsError(c, err)
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Reemplazar la asignación de grupos de un rol
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        role  path  string  true  "Rol"
// @Param        body  body  dto.SaveGroupAssignmentRequest  true  "Grupos"
// @Success      200   {object}  dto.GroupAssignmentResponse
// @Security     BearerAuth
// @Router       /api/admin/roles/{role}/groups [put]
func (h *GroupsHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveGroupAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(c.Context(), c.Params("role"), in)
	if err != nil {
		return settingsError(c, err)
	}
	return c.JSON(out)
}

// Move godoc
// @Summary      Mover un módulo entre grupos (drag-and-drop)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        role  path  string  true  "Rol"
// @Param        body  body  dto.MoveModuleRequest  true  "Gesto de movimiento"
// @Success      200   {object}  dto.GroupAssignmentResponse
// @Security     BearerAuth
// @Router       /api/admin/roles/{role}/groups/move [post]
func (h *GroupsHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveModuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.MoveModule(c.Context(), c.Params("role"), in)
	if err != nil {
		return settingsError(c, err)
	}
	return c.JSON(out)
}

// Reorder godoc
// @Summary      Reordenar los grupos de un rol (drag-and-drop)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        role  path  string  true  "Rol"
// @Param        body  body  dto.ReorderGroupsRequest  true  "Gesto source→destination"
// @Success      200   {object}  dto.GroupAssignmentResponse
// @Security     BearerAuth
// @Router       /api/admin/roles/{role}/groups/reorder [post]
func (h *GroupsHandler) Reorder(c *fiber.Ctx) error {
	var in dto.ReorderGroupsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ReorderGroups(c.Context(), c.Params("role"), in)
	if err != nil {
		return settingsError(c, err)
	}
	return c.JSON(out)
}

// Reset godoc
// @Summary      Restablecer la asignación de un rol al catálogo
// @Tags         admin
// @Param        role  path  string  true  "Rol"
// @Success      204   "reset"
// @Security     BearerAuth
// @Router       /api/admin/roles/{role}/groups [delete]
func (h *GroupsHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.Reset(c.Context(), c.Params("role")); err != nil {
		return settingsError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResetAll godoc
// @Summary      Restablecer las asignaciones de todos los roles
// @Tags         admin
// @Success      204  "reset"
// @Security     BearerAuth
// @Router       /api/admin/roles/groups [delete]
func (h *GroupsHandler) ResetAll(c *fiber.Ctx) error {
	if err := h.uc.ResetAll(c.Context()); err != nil {
		return settingsError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
