package api

import (
	"net/http"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

// Field presence and policy checks live in the service layer, which returns
// structured validation errors; the DTOs here only shape the JSON.
type RegisterRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Goal     string  `json:"goal"`
	Gender   string  `json:"gender"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse excludes sensitive info like the password hash.
type UserResponse struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	Height    float64       `json:"height"`
	Weight    float64       `json:"weight"`
	Goal      string        `json:"goal"`
	Gender    domain.Gender `json:"gender"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type LoginData struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// --- Handler Methods ---

// Register creates a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Height:   req.Height,
		Weight:   req.Weight,
		Goal:     req.Goal,
		Gender:   req.Gender,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "User created successfully", MapUserToResponse(user))
}

// Login authenticates a user and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, "User logged in successfully", LoginData{
		Token: token,
		User:  MapUserToResponse(user),
	})
}

// MapUserToResponse converts a domain User to a UserResponse DTO. The
// password hash never crosses this boundary.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:        user.ID.Hex(),
		Username:  user.Username,
		Email:     user.Email,
		Height:    user.Height,
		Weight:    user.Weight,
		Goal:      user.Goal,
		Gender:    user.Gender,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
