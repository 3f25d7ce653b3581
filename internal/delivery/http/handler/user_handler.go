package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"account-hub/internal/delivery/http/dto"
	"account-hub/internal/delivery/http/middleware"
	"account-hub/internal/domain/account"
	"account-hub/internal/pkg/response"
	"account-hub/internal/pkg/validate"
	"account-hub/internal/usecase/directory"
)

type UserHandler struct {
	uc *directory.Service
}

type updateUserDetailsRequest struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	ContactNumber *string `json:"contact_number"`
	Address       *string `json:"address"`
}

type updateUserRequest struct {
	Username    *string                   `json:"username"`
	Email       *string                   `json:"email"`
	Password    *string                   `json:"password"`
	UserDetails *updateUserDetailsRequest `json:"userDetails"`
}

func NewUserHandler(uc *directory.Service) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *UserHandler) List(c fiber.Ctx) error {
	accounts, err := h.uc.List(c.Context())
	if err != nil {
		return mapDirectoryError(err, 0)
	}
	return c.Status(fiber.StatusOK).JSON(dto.FromAccounts(accounts))
}

func (h *UserHandler) Get(c fiber.Ctx) error {
	id, err := userIDFromParams(c)
	if err != nil {
		return err
	}

	acc, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapDirectoryError(err, id)
	}
	return c.Status(fiber.StatusOK).JSON(dto.FromAccount(acc))
}

func (h *UserHandler) Update(c fiber.Ctx) error {
	id, err := userIDFromParams(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	in := directory.UpdateInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.UserDetails != nil {
		in.Details = &directory.DetailsPatch{
			FirstName:     req.UserDetails.FirstName,
			LastName:      req.UserDetails.LastName,
			ContactNumber: req.UserDetails.ContactNumber,
			Address:       req.UserDetails.Address,
		}
	}

	acc, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return mapDirectoryError(err, id)
	}
	return c.Status(fiber.StatusOK).JSON(dto.FromAccount(acc))
}

func (h *UserHandler) Delete(c fiber.Ctx) error {
	id, err := userIDFromParams(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapDirectoryError(err, id)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func userIDFromParams(c fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}
	return id, nil
}

func mapDirectoryError(err error, id int64) error {
	var ve *validate.Error
	switch {
	case errors.As(err, &ve):
		return middleware.NewAppError(fiber.StatusBadRequest, ve.Error(), map[string]string{"field": ve.Field}, err)
	case errors.Is(err, account.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, fmt.Sprintf("User with ID %d not found", id), nil, err)
	case errors.Is(err, account.ErrUsernameTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Username already taken", nil, err)
	case errors.Is(err, account.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Email already taken", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
