package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sidhant19/dental-center-management/internal/config"
	"github.com/sidhant19/dental-center-management/internal/middleware"
	"github.com/sidhant19/dental-center-management/internal/store"
	"github.com/sidhant19/dental-center-management/internal/utils"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	Store *store.Store
	Cfg   *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(st *store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Store: st, Cfg: cfg}
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response body for successful login.
type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	User        interface{} `json:"user"`
}

// Login checks the credentials against the store and issues the session
// token carrying {id, role, email, patientId}.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	session, err := h.Store.Authenticate(req.Email, req.Password)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	accessToken, err := utils.GenerateToken(session, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	utils.Success(c, "Login successful", LoginResponse{
		AccessToken: accessToken,
		User:        session,
	})
}

// GetProfile returns the current session identity.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	user := h.Store.UserByID(userID)
	if user == nil {
		utils.NotFound(c, "User not found")
		return
	}
	utils.Success(c, "Profile fetched successfully", user)
}

// Logout acknowledges the logout; the session token is simply discarded by
// the client, there is no server-side session state to clear.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.Success(c, "Logged out successfully", nil)
}
