package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"account-hub/internal/delivery/http/dto"
	"account-hub/internal/delivery/http/middleware"
	"account-hub/internal/pkg/response"
	"account-hub/internal/pkg/validate"
	ucauth "account-hub/internal/usecase/auth"
)

type AuthHandler struct {
	uc *ucauth.Service
}

type userDetailsRequest struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	ContactNumber *string `json:"contact_number"`
	Address       *string `json:"address"`
}

type registerRequest struct {
	Username    string             `json:"username"`
	Email       string             `json:"email"`
	Password    string             `json:"password"`
	UserDetails userDetailsRequest `json:"userDetails"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(uc *ucauth.Service) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	acc, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Details: ucauth.DetailsInput{
			FirstName:     req.UserDetails.FirstName,
			LastName:      req.UserDetails.LastName,
			ContactNumber: req.UserDetails.ContactNumber,
			Address:       req.UserDetails.Address,
		},
	})
	if err != nil {
		return mapAuthError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromAccount(acc))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	res, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthError(err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.LoginResponse{
		AccessToken: res.Token,
		User:        dto.FromAccount(res.Account),
	})
}

func mapAuthError(err error) error {
	var ve *validate.Error
	switch {
	case errors.As(err, &ve):
		return middleware.NewAppError(fiber.StatusBadRequest, ve.Error(), map[string]string{"field": ve.Field}, err)
	case errors.Is(err, ucauth.ErrDuplicateAccount):
		return middleware.NewAppError(fiber.StatusConflict, "User with this email or username already exists", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", nil, err)
	case errors.Is(err, ucauth.ErrAccountInactive):
		return middleware.NewAppError(fiber.StatusUnauthorized, "User account is inactive", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
