package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"student-portal-svc/internal/middleware"
	"student-portal-svc/internal/models"
	"student-portal-svc/internal/session"
	"student-portal-svc/pkg/logger"
	"student-portal-svc/pkg/utils"
)

// AuthHandler handles sign-in and sign-out
type AuthHandler struct {
	sessions *session.Manager
	logger   *logger.Logger
}

// LoginResponse is returned by a successful login
type LoginResponse struct {
	Token     string         `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time      `json:"expires_at"`
	Student   models.Student `json:"student"`
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(sessions *session.Manager, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// Login signs a student in
// @Summary Sign in
// @Description Check the student id and password and open a session. The token is also set as the student_portal_token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=LoginResponse} "Signed in"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Failure 401 {object} utils.APIResponse "Wrong student id or password"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid login request body")
		utils.BadRequestResponse(c, "Vui lòng nhập mã sinh viên và mật khẩu", err)
		return
	}

	s, err := h.sessions.Login(req.StudentID, req.Password)
	if err != nil {
		respondError(c, h.logger, "Mã sinh viên hoặc mật khẩu không đúng", err)
		return
	}

	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.TokenKey, s.Token, maxAge, "/", "", false, true)

	utils.SuccessResponse(c, "Đăng nhập thành công", LoginResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		Student:   s.Student,
	})
}

// Logout ends the current session
// @Summary Sign out
// @Description Close the current session and clear the token cookie
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse "Signed out"
// @Failure 401 {object} utils.APIResponse "Not signed in"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.TokenFromRequest(c)
	if err := h.sessions.Logout(token); err != nil {
		respondError(c, h.logger, "Phiên đăng nhập không hợp lệ", err)
		return
	}

	c.SetCookie(session.TokenKey, "", -1, "/", "", false, true)
	utils.SuccessResponse(c, "Đăng xuất thành công", nil)
}

// Me returns the signed-in student
// @Summary Current student
// @Description Get the profile of the signed-in student
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=models.Student} "Current student"
// @Failure 401 {object} utils.APIResponse "Not signed in"
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Vui lòng đăng nhập", nil)
		return
	}
	utils.SuccessResponse(c, "Current student retrieved successfully", s.Student)
}
