package services

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/declanhart/order-management-api/apperrors"
	"github.com/declanhart/order-management-api/models"
	"github.com/declanhart/order-management-api/repositories"
)

// TokenGenerator issues a signed bearer token for an authenticated user
type TokenGenerator interface {
	Generate(user *models.User) (string, error)
}

// AuthService handles registration and login
type AuthService struct {
	users  repositories.UserRepository
	tokens TokenGenerator
}

// NewAuthService creates a new auth service
func NewAuthService(users repositories.UserRepository, tokens TokenGenerator) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new user with a bcrypt password hash. The plaintext
// password is never stored. An empty role defaults to Customer.
func (s *AuthService) Register(username, password, role string) (*RegisterResponse, *apperrors.Error) {
	existing, err := s.users.GetByUsername(username)
	if err != nil {
		log.Printf("Failed to look up username %q: %v", username, err)
		return nil, apperrors.Database("look up user")
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	if role == "" {
		role = models.RoleCustomer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return nil, apperrors.Database("hash password")
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Add(user); err != nil {
		log.Printf("Failed to create user %q: %v", username, err)
		return nil, apperrors.Database("create user")
	}

	return &RegisterResponse{ID: user.ID, Username: user.Username}, nil
}

// Login verifies credentials and issues a token. An unknown username and a
// wrong password return the identical error so accounts cannot be enumerated.
func (s *AuthService) Login(username, password string) (*LoginResponse, *apperrors.Error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		log.Printf("Failed to look up username %q: %v", username, err)
		return nil, apperrors.Database("look up user")
	}
	if user == nil {
		return nil, apperrors.ErrAuthInvalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrAuthInvalid
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		log.Printf("Failed to generate token for user %q: %v", username, err)
		return nil, apperrors.Database("generate token")
	}

	return &LoginResponse{Token: token, Role: user.Role, UserID: user.ID}, nil
}
