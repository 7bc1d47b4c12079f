package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"ecolearn/internal/models"
	"ecolearn/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// passwordCost is the bcrypt cost factor for stored password hashes.
const passwordCost = 10

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Email         string `json:"email" validate:"required,nonblank,email,max=255"`
	Password      string `json:"password" validate:"required"`
	Name          string `json:"name" validate:"required,nonblank,max=255"`
	RequestedRole string `json:"requestedRole" validate:"max=50"`
}

type credentials struct {
	Email    string `json:"email" validate:"required,nonblank"`
	Password string `json:"password" validate:"required"`
}

// AuthService handles registration, login and session tokens.
type AuthService struct {
	userRepo      repositories.UserRepository
	publisher     EventPublisher
	validate      *validator.Validate
	jwtSecret     []byte
	tokenDurat    time.Duration // Duration for which JWT is valid
	defaultSchool string
}

// NewAuthService creates a new AuthService. publisher may be nil.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, publisher EventPublisher) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		publisher:     publisher,
		validate:      newValidator(),
		jwtSecret:     []byte(jwtSecret),
		tokenDurat:    24 * time.Hour,
		defaultSchool: "Unassigned",
	}
}

// WithTokenDuration sets how long issued tokens stay valid.
func (s *AuthService) WithTokenDuration(d time.Duration) *AuthService {
	s.tokenDurat = d
	return s
}

// WithDefaultSchool sets the school new accounts are placed in.
func (s *AuthService) WithDefaultSchool(school string) *AuthService {
	s.defaultSchool = school
	return s
}

// Register creates an unverified account keyed by the lower-cased email.
func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validateInput(s.validate, in, ErrMissingFields); err != nil {
		return nil, err
	}
	role := models.RoleStudent
	if in.RequestedRole != "" {
		r, ok := models.ParseRole(in.RequestedRole)
		if !ok {
			return nil, ErrInvalidRole
		}
		role = r
	}

	email := in.Email
	existing, err := s.userRepo.GetByEmail(email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           email,
		Email:        email,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         role,
		Verified:     false,
		SchoolName:   s.defaultSchool,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(user); err != nil {
		// A concurrent registration can win between the lookup and the insert.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	publish(s.publisher, EventUserRegistered, map[string]interface{}{
		"userId": user.ID,
		"role":   user.Role,
	})
	return user, nil
}

// Login checks the credentials and returns the user with a signed session token.
// Unknown emails and wrong passwords fail with the same error.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	creds := credentials{Email: normalizeEmail(email), Password: password}
	if err := validateInput(s.validate, creds, ErrMissingCredentials); err != nil {
		return nil, "", err
	}

	user, err := s.userRepo.GetByEmail(creds.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	profile := user.Profile()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": profile.ID,
		"email":   profile.Email,
		"name":    profile.Name,
		"role":    string(profile.Role),
		"school":  profile.SchoolName,
		"exp":     now.Add(s.tokenDurat).Unix(),
		"iat":     now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
