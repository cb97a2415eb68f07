package api

import (
	"net/http"

	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- Request Structs ---

// UpdateProfileRequest uses pointers so absent fields stay untouched.
type UpdateProfileRequest struct {
	Username *string  `json:"username"`
	Height   *float64 `json:"height"`
	Weight   *float64 `json:"weight"`
	Goal     *string  `json:"goal"`
}

type ChangeEmailRequest struct {
	NewEmail string `json:"newEmail"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// --- Handler Methods ---

// GetProfile returns the caller's account.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		abortServerError(c, err)
		return
	}

	user, err := h.profileService.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "User profile retrieved successfully", MapUserToResponse(user))
}

// UpdateProfile mutates the non-secret attributes of the caller's account.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		abortServerError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.profileService.UpdateProfile(c.Request.Context(), identity.UserID, service.ProfileUpdate{
		Username: req.Username,
		Height:   req.Height,
		Weight:   req.Weight,
		Goal:     req.Goal,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "User profile updated successfully", MapUserToResponse(user))
}

// ChangeEmail updates the caller's email after re-proving the password.
func (h *ProfileHandler) ChangeEmail(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		abortServerError(c, err)
		return
	}

	var req ChangeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.profileService.ChangeEmail(c.Request.Context(), identity.UserID, req.NewEmail, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Email changed successfully", MapUserToResponse(user))
}

// ChangePassword stores a fresh password hash for the caller.
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	identity, err := identityFromContext(c)
	if err != nil {
		abortServerError(c, err)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.profileService.ChangePassword(c.Request.Context(), identity.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		handleServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "Password changed successfully")
}
