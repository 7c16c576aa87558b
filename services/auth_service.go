package services

import (
	"crew-dispatch/auth"
	"crew-dispatch/domain"
	apperrors "crew-dispatch/errors"
	"crew-dispatch/repositories"
	"errors"
	"fmt"
)

type IAuthService interface {
	IssueToken(userID domain.UserID) (Token, error)
	Authenticate(token string) (domain.User, error)
}

// AuthService binds bearer tokens to stored users.
// Accounts and passwords live in the platform core, not here.
type AuthService struct {
	userRepository repositories.IUserRepository
	tokens         *auth.Tokens
}

type Token string

func (t Token) String() string {
	return string(t)
}

var _ IAuthService = (*AuthService)(nil)

func NewAuthService(repo repositories.IUserRepository, tokens *auth.Tokens) *AuthService {
	return &AuthService{userRepository: repo, tokens: tokens}
}

// IssueToken mints a token for an existing user, carrying its role.
func (s *AuthService) IssueToken(userID domain.UserID) (Token, error) {
	user, err := s.userRepository.GetUser(userID)
	if err != nil {
		return "", err
	}
	token, err := s.tokens.GenerateToken(user.ID, []string{string(user.Role)})
	if err != nil {
		return "", err
	}
	return Token(token), nil
}

// Authenticate resolves a bearer token to the user it was issued for.
func (s *AuthService) Authenticate(token string) (domain.User, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return domain.User{}, err
	}
	user, err := s.userRepository.GetUser(domain.UserID(claims.UserID))
	if errors.Is(err, apperrors.ErrUserNotFound) {
		// Generic error to prevent user enumeration
		return domain.User{}, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to load token owner: %w", err)
	}
	return user, nil
}
