package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the deliberately slow hashing the credential lifecycle
// requires; hashing stays on the request path.
const bcryptCost = 12

// RegisterInput carries the registration fields before validation.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Height   float64
	Weight   float64
	Goal     string
	Gender   string
}

// AuthService handles registration, login and bearer-token resolution.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	Authenticate(ctx context.Context, tokenString string) (*domain.Identity, error)
}

type authService struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register handles new user registration.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Password) == "" || strings.TrimSpace(in.Goal) == "" ||
		strings.TrimSpace(in.Gender) == "" || in.Height == 0 || in.Weight == 0 {
		return nil, invalidField("", "all fields are required")
	}

	gender, ok := domain.ParseGender(in.Gender)
	if !ok {
		return nil, invalidField("gender", "invalid gender value, must be one of: male, female")
	}
	if err := validatePositive("height", in.Height); err != nil {
		return nil, err
	}
	if err := validatePositive("weight", in.Weight); err != nil {
		return nil, err
	}
	if err := validateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := validateGoal(in.Goal); err != nil {
		return nil, err
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	email := normalizeEmail(in.Email)
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	user := &domain.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Height:       in.Height,
		Weight:       in.Weight,
		Goal:         strings.TrimSpace(in.Goal),
		Gender:       gender,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// The unique index closes the window between the existence check
		// and the insert: a racing duplicate surfaces here.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	user.ID = userID

	user.PasswordHash = ""
	return user, nil
}

// Login handles user authentication and JWT generation.
func (s *authService) Login(ctx context.Context, email, password string) (token string, user *domain.User, err error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return "", nil, invalidField("", "all fields are required")
	}

	user, err = s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err = s.generateJWT(user)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	user.PasswordHash = ""
	return token, user, nil
}

// Authenticate verifies a bearer token and resolves the embedded user into
// an identity snapshot for the request context.
func (s *authService) Authenticate(ctx context.Context, tokenString string) (*domain.Identity, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrNotAuthorized
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return nil, ErrNotAuthorized
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, ErrNotAuthorized
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return domain.IdentityOf(user), nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// generateJWT creates a new signed, time-limited token for the given user.
func (s *authService) generateJWT(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		UserID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "fittrack",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
