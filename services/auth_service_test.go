package services

import (
	"crew-dispatch/auth"
	"crew-dispatch/domain"
	"crew-dispatch/errors"
	"crew-dispatch/mocks"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_IssueToken_Then_Authenticate(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, auth.NewTokens("a_long_enough_test_secret", time.Hour))

	admin := domain.User{ID: "a1", Name: "Alice", Role: domain.RoleAdmin}
	mockRepo.EXPECT().GetUser(domain.UserID("a1")).Return(admin, nil).Times(2)

	// Given a token minted for an admin
	token, err := svc.IssueToken("a1")
	req.NoError(err)
	req.NotEmpty(token.String())

	// When it is presented back
	user, err := svc.Authenticate(token.String())

	// Then it resolves to the same user
	req.NoError(err)
	req.Equal(admin, user)
}

func TestAuthService_Rules(t *testing.T) {
	tokens := auth.NewTokens("a_long_enough_test_secret", time.Hour)

	t.Run("should not mint a token for an unknown user", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockIUserRepository(ctrl)
		mockRepo.EXPECT().GetUser(domain.UserID("ghost")).Return(domain.User{}, errors.ErrUserNotFound)

		_, err := NewAuthService(mockRepo, tokens).IssueToken("ghost")

		req.ErrorIs(err, errors.ErrUserNotFound)
	})

	t.Run("should hide a deleted token owner behind invalid credentials", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockIUserRepository(ctrl)
		mockRepo.EXPECT().GetUser(domain.UserID("gone")).Return(domain.User{}, errors.ErrUserNotFound)
		token, err := tokens.GenerateToken("gone", nil)
		req.NoError(err)

		_, err = NewAuthService(mockRepo, tokens).Authenticate(token)

		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should surface storage failures", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockIUserRepository(ctrl)
		mockRepo.EXPECT().GetUser(domain.UserID("u1")).Return(domain.User{}, fmt.Errorf("disk full"))
		token, err := tokens.GenerateToken("u1", nil)
		req.NoError(err)

		_, err = NewAuthService(mockRepo, tokens).Authenticate(token)

		req.Error(err)
		req.NotErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should reject a garbage token without reading storage", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockIUserRepository(ctrl)
		mockRepo.EXPECT().GetUser(gomock.Any()).Times(0)

		_, err := NewAuthService(mockRepo, tokens).Authenticate("garbage")

		req.ErrorIs(err, errors.ErrInvalidToken)
	})
}
