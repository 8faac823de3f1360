package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Shrinila/productify-backend/internal/adapter/http/dto"
	"github.com/Shrinila/productify-backend/internal/adapter/http/mapper"
	"github.com/Shrinila/productify-backend/internal/adapter/http/middleware"
	"github.com/Shrinila/productify-backend/internal/core/domain"
	"github.com/Shrinila/productify-backend/internal/core/ports"
	"github.com/Shrinila/productify-backend/pkg/apierrors"
)

type AuthHandler struct {
	accountService ports.AccountService
}

func NewAuthHandler(accountService ports.AccountService) *AuthHandler {
	return &AuthHandler{accountService: accountService}
}

// Signup registers a new account. Domain failures keep the envelope
// existing clients expect: HTTP 200 with success=false and a message.
func (h *AuthHandler) Signup(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.AuthResponse{
			Success: false,
			Message: apierrors.GetTransErrorMsg(apierrors.MsgInvalidSignupPayload, lang),
		})
		return
	}

	err := h.accountService.Signup(c.Request.Context(), strings.TrimSpace(req.Name), normalizeEmail(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			c.JSON(http.StatusOK, dto.AuthResponse{
				Success: false,
				Message: apierrors.GetTransErrorMsg(apierrors.MsgEmailExists, lang),
			})
			return
		}

		zap.L().Error("signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.AuthResponse{
			Success: false,
			Message: apierrors.GetTransErrorMsg(apierrors.MsgSignupFailed, lang),
		})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Success: true})
}

// Login verifies credentials and returns the public account projection plus
// a session token. "User not found" and "Incorrect password" stay
// distinct; clients display them as-is.
func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.AuthResponse{
			Success: false,
			Message: apierrors.GetTransErrorMsg(apierrors.MsgInvalidLoginPayload, lang),
		})
		return
	}

	profile, token, err := h.accountService.Login(c.Request.Context(), normalizeEmail(req.Email), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			c.JSON(http.StatusOK, dto.AuthResponse{
				Success: false,
				Message: apierrors.GetTransErrorMsg(apierrors.MsgUserNotFound, lang),
			})
		case errors.Is(err, domain.ErrInvalidCredential):
			c.JSON(http.StatusOK, dto.AuthResponse{
				Success: false,
				Message: apierrors.GetTransErrorMsg(apierrors.MsgIncorrectPassword, lang),
			})
		default:
			zap.L().Error("login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.AuthResponse{
				Success: false,
				Message: apierrors.GetTransErrorMsg(apierrors.MsgLoginFailed, lang),
			})
		}
		return
	}

	user := mapper.ToUserItem(profile)
	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		User:    &user,
		Token:   token,
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
