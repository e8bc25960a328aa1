package api

import (
	"log/slog"
	"net/http"

	reqdto "booking-gateway/internal/handler/dto/request"
	resdto "booking-gateway/internal/handler/dto/response"
	"booking-gateway/internal/handler/middleware"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/pkg/cookie"
	"booking-gateway/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds   commands.AuthCommands
	cfg    config.Config
	errors errorResponder
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		cmds:   cmds,
		cfg:    cfg,
		errors: newErrorResponder(cfg, logger),
	}
}

// @Summary User login
// @Description Sign in against the marketplace and open a gateway session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.SignInResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, err, "Invalid request format")
		return
	}
	creds, err := req.ToDomain()
	if err != nil {
		invalid(c, err, "Invalid request data")
		return
	}

	res, err := h.cmds.Login(c.Request.Context(), creds)
	if err != nil {
		h.errors.respond(c, err, "Login")
		return
	}

	cookie.SetSessionCookie(c, h.cfg.Cookie, res.Session.ID().String(), h.cfg.Session.TTL)
	c.JSON(http.StatusOK, resdto.FromSignIn(res))
}

// @Summary Register
// @Description Register a customer or business. A session is opened when the marketplace issues tokens right away.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.SignInResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, err, "Invalid request format")
		return
	}
	reg, err := req.ToDomain()
	if err != nil {
		invalid(c, err, "Invalid request data")
		return
	}

	res, err := h.cmds.Register(c.Request.Context(), reg)
	if err != nil {
		h.errors.respond(c, err, "Registration")
		return
	}

	if res.Session != nil {
		cookie.SetSessionCookie(c, h.cfg.Cookie, res.Session.ID().String(), h.cfg.Session.TTL)
	}
	c.JSON(http.StatusCreated, resdto.FromSignIn(res))
}

// @Summary Forgot password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.EmailRequest true "Account email"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req reqdto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, err, "Invalid request format")
		return
	}
	email, err := req.ToDomain()
	if err != nil {
		invalid(c, err, "Invalid email")
		return
	}

	msg, err := h.cmds.ForgotPassword(c.Request.Context(), email)
	if err != nil {
		h.errors.respond(c, err, "Password recovery")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: msg})
}

// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ResetPasswordRequest true "New password and reset token"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req reqdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, err, "Invalid request format")
		return
	}
	reset, err := req.ToDomain()
	if err != nil {
		invalid(c, err, "Invalid request data")
		return
	}

	msg, err := h.cmds.ResetPassword(c.Request.Context(), reset)
	if err != nil {
		h.errors.respond(c, err, "Password reset")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: msg})
}

// @Summary Resend verification email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.EmailRequest true "Account email"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/resend-verification-email [post]
func (h *AuthHandler) ResendVerificationEmail(c *gin.Context) {
	var req reqdto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalid(c, err, "Invalid request format")
		return
	}
	email, err := req.ToDomain()
	if err != nil {
		invalid(c, err, "Invalid email")
		return
	}

	msg, err := h.cmds.ResendVerificationEmail(c.Request.Context(), email)
	if err != nil {
		h.errors.respond(c, err, "Verification email")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: msg})
}

// @Summary Logout
// @Description Sign out upstream and drop the gateway session
// @Tags auth
// @Security SessionCookie
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.errors.respond(c, errNoSession, "Logout")
		return
	}
	if err := h.cmds.Logout(c.Request.Context(), sess); err != nil {
		h.errors.respond(c, err, "Logout")
		return
	}
	cookie.ClearSessionCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}
