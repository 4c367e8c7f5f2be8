package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-manage/internal/application/dto"
	"github.com/jhoicas/inventory-manage/internal/application/usecase"
	"github.com/jhoicas/inventory-manage/internal/domain"
)

// UserHandler maneja registro y login.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterUserRequest  true  "username, password"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  domain.FieldErrors
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterUserRequest
	if err := decodeBody(c, &in); err != nil {
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fieldErrs)
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if err := h.uc.Register(c.Context(), in); err != nil {
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fieldErrs)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "User created successfully."})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := decodeBody(c, &in); err != nil {
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fieldErrs)
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fieldErrs)
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}
