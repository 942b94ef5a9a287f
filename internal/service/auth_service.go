package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gm3197/CSE437s-group-4/internal/repository"
	"github.com/gm3197/CSE437s-group-4/internal/session"
)

// AuthService moves the device between the anonymous and authenticated
// states. Its methods are safe to call from any goroutine.
type AuthService struct {
	repo    *repository.Repository
	session *session.Session
	logger  *logrus.Logger
}

func NewAuthService(repo *repository.Repository, sess *session.Session, logger *logrus.Logger) *AuthService {
	return &AuthService{
		repo:    repo,
		session: sess,
		logger:  logger,
	}
}

func (s *AuthService) State() session.State {
	return s.session.State()
}

func (s *AuthService) Email() string {
	return s.session.Email()
}

// Login exchanges a Google identity token for a session token and persists
// it. email is remembered for display when given.
func (s *AuthService) Login(ctx context.Context, idToken, email string) error {
	if idToken == "" {
		return fmt.Errorf("login: identity token is required")
	}

	token, err := s.repo.Auth.ExchangeGoogleToken(ctx, idToken)
	if err != nil {
		s.logger.WithError(err).Error("AuthService.Login.Exchange")
		return err
	}
	if err := s.session.Login(ctx, token); err != nil {
		s.logger.WithError(err).Error("AuthService.Login.Persist")
		return err
	}
	if email != "" {
		if err := s.session.SetEmail(ctx, email); err != nil {
			s.logger.WithError(err).Warn("AuthService.Login.Email")
		}
	}

	s.logger.Info("AuthService.Login.Complete")
	return nil
}

// Logout forgets the session token.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.session.Logout(ctx); err != nil {
		s.logger.WithError(err).Error("AuthService.Logout.Error")
		return err
	}
	s.logger.Info("AuthService.Logout.Complete")
	return nil
}
