package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clubhub-api/internal/application/dto"
	"github.com/jhoicas/clubhub-api/internal/application/usecase"
	"github.com/jhoicas/clubhub-api/internal/domain"
)

// RoleSettingsHandler maneja la configuración de UI por rol (super-admin).
type RoleSettingsHandler struct {
	uc *usecase.RoleSettingsUseCase
}

// NewRoleSettingsHandler construye el handler.
func NewRoleSettingsHandler(uc *usecase.RoleSettingsUseCase) *RoleSettingsHandler {
	return &RoleSettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Configuración de UI de un rol
// @Tags         admin
// @Produce      json
// @Param        role  path  string  true  "Rol"
// @Success      200   {object}  dto.RoleSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/roles/{role}/ui-settings [get]
func (h *RoleSettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("role"))
	if err != nil {
		return settingsError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar la configuración de UI de un rol
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        role  path  string  true  "Rol"
// @Param        body  body  dto.UpdateRoleSettingsRequest  true  "Nueva configuración"
// @Success      200   {object}  dto.RoleSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/roles/{role}/ui-settings [put]
func (h *RoleSettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRoleSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("role"), in)
	if err != nil {
		return settingsError(c, err)
	}
	return c.JSON(out)
}

// Reset godoc
// @Summary      Restablecer un rol a los defaults del catálogo
// @Tags         admin
// @Produce      json
// @Param        role  path  string  true  "Rol"
// @Success      200   {object}  dto.RoleSettingsResponse
// @Security     BearerAuth
// @Router       /api/admin/roles/{role}/ui-settings/reset [post]
func (h *RoleSettingsHandler) Reset(c *fiber.Ctx) error {
	out, err := h.uc.Reset(c.Context(), c.Params("role"))
	if err != nil {
		return settingsError(c, err)
	}
	return c.JSON(out)
}

func settingsError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrUnknownRole) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_ROLE", Message: "rol desconocido"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
