package service

import (
	"fmt"
	"log"
	"time"

	"github.com/Kostiantyn78/ImageHub/internal/config"
	"github.com/Kostiantyn78/ImageHub/internal/mail"
	"github.com/Kostiantyn78/ImageHub/internal/model"
	authdto "github.com/Kostiantyn78/ImageHub/internal/modules/auth/dto"
	"github.com/Kostiantyn78/ImageHub/internal/modules/auth/repo"
	platformservice "github.com/Kostiantyn78/ImageHub/internal/platform/service"
	"github.com/Kostiantyn78/ImageHub/internal/utils"
)

type Service struct {
	userStore repo.UserStore
	mailer    mail.Sender
}

func New(userStore repo.UserStore, mailer mail.Sender) *Service {
	return &Service{
		userStore: userStore,
		mailer:    mailer,
	}
}

func accessTTL() time.Duration {
	return time.Duration(config.Get().JWT.AccessTTLMinutes) * time.Minute
}

func refreshTTL() time.Duration {
	return time.Duration(config.Get().JWT.RefreshTTLHours) * time.Hour
}

func emailTTL() time.Duration {
	return time.Duration(config.Get().JWT.EmailTTLHours) * time.Hour
}

// Register creates a new account. The very first account in an empty
// directory is granted the admin role. The confirmation mail is sent off
// the request path and never blocks or fails the signup.
func (s *Service) Register(req authdto.SignupRequest) (*model.User, error) {
	existing, err := s.userStore.FindByEmail(req.Email)
	if err != nil {
		return nil, platformservice.NewInternalError("could not create account")
	}
	if existing != nil {
		return nil, platformservice.NewConflictError("account already exists")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, platformservice.NewInternalError("could not create account")
	}

	count, err := s.userStore.Count()
	if err != nil {
		return nil, platformservice.NewInternalError("could not create account")
	}

	user := &model.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		Avatar:    utils.GravatarURL(req.Email),
		Confirmed: false,
		Role:      model.RoleUser,
	}
	if count == 0 {
		user.Role = model.RoleAdmin
	}

	if err := s.userStore.Create(user); err != nil {
		return nil, platformservice.NewInternalError("could not create account")
	}

	go s.sendConfirmation(user.Email, user.Username)

	return user, nil
}

// Login verifies credentials, requires a confirmed email, and issues an
// access/refresh token pair. The refresh token is persisted so it can be
// matched (and rotated) later.
func (s *Service) Login(email, password string) (*authdto.TokenPair, error) {
	user, err := s.userStore.FindByEmail(email)
	if err != nil {
		return nil, platformservice.NewInternalError("login failed")
	}
	if user == nil {
		return nil, platformservice.NewUnauthorizedError("invalid email")
	}
	if !user.Confirmed {
		return nil, platformservice.NewUnauthorizedError("email not confirmed")
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, platformservice.NewUnauthorizedError("invalid password")
	}

	return s.issueTokenPair(user)
}

// Refresh rotates the token pair. A syntactically valid refresh token that
// does not match the stored one is treated as stolen: the stored token is
// cleared so it cannot be replayed, and the call fails.
func (s *Service) Refresh(refreshToken string) (*authdto.TokenPair, error) {
	email, err := utils.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, platformservice.NewUnauthorizedError("could not validate credentials")
	}

	user, err := s.userStore.FindByEmail(email)
	if err != nil {
		return nil, platformservice.NewInternalError("refresh failed")
	}
	if user == nil {
		return nil, platformservice.NewUnauthorizedError("could not validate credentials")
	}

	if user.RefreshToken != refreshToken {
		if err := s.userStore.UpdateRefreshToken(user.ID, ""); err != nil {
			log.Printf("clear refresh token for user %d: %v", user.ID, err)
		}
		return nil, platformservice.NewUnauthorizedError("invalid refresh token")
	}

	return s.issueTokenPair(user)
}

// ConfirmEmail marks the token's subject as confirmed. Confirming twice is
// harmless; the second call reports that the email was already confirmed.
func (s *Service) ConfirmEmail(token string) (string, error) {
	email, err := utils.ParseEmailToken(token)
	if err != nil {
		return "", platformservice.NewUnauthorizedError("invalid token for email verification")
	}

	user, err := s.userStore.FindByEmail(email)
	if err != nil {
		return "", platformservice.NewInternalError("verification error")
	}
	if user == nil {
		return "", platformservice.NewValidationError("verification error")
	}
	if user.Confirmed {
		return "your email is already confirmed", nil
	}

	if err := s.userStore.UpdateConfirmed(user.ID, true); err != nil {
		return "", platformservice.NewInternalError("verification error")
	}
	return "email confirmed", nil
}

// RequestEmail re-sends the confirmation mail for an unconfirmed account.
// An unknown address gets the same neutral reply as a pending one.
func (s *Service) RequestEmail(email string) (string, error) {
	user, err := s.userStore.FindByEmail(email)
	if err != nil {
		return "", platformservice.NewInternalError("request failed")
	}
	if user != nil && user.Confirmed {
		return "your email is already confirmed", nil
	}
	if user != nil {
		go s.sendConfirmation(user.Email, user.Username)
	}
	return "check your email for confirmation", nil
}

// ResolveAccessToken verifies signature, expiry and scope, then resolves
// the subject in the directory. Used by the JWT middleware.
func (s *Service) ResolveAccessToken(token string) (*model.User, error) {
	email, err := utils.ParseAccessToken(token)
	if err != nil {
		return nil, platformservice.NewUnauthorizedError("could not validate credentials")
	}
	user, err := s.userStore.FindByEmail(email)
	if err != nil {
		return nil, platformservice.NewInternalError("could not validate credentials")
	}
	if user == nil {
		return nil, platformservice.NewUnauthorizedError("could not validate credentials")
	}
	return user, nil
}

func (s *Service) issueTokenPair(user *model.User) (*authdto.TokenPair, error) {
	access, err := utils.GenerateAccessToken(user.Email, accessTTL())
	if err != nil {
		return nil, platformservice.NewInternalError("could not issue tokens")
	}
	refresh, err := utils.GenerateRefreshToken(user.Email, refreshTTL())
	if err != nil {
		return nil, platformservice.NewInternalError("could not issue tokens")
	}
	if err := s.userStore.UpdateRefreshToken(user.ID, refresh); err != nil {
		return nil, platformservice.NewInternalError("could not issue tokens")
	}
	return &authdto.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}

func (s *Service) sendConfirmation(email, username string) {
	token, err := utils.GenerateEmailToken(email, emailTTL())
	if err != nil {
		log.Printf("generate confirmation token for %s: %v", email, err)
		return
	}
	confirmURL := fmt.Sprintf("%s/api/auth/confirmed_email/%s", config.Get().Server.BaseURL, token)
	if err := s.mailer.SendConfirmation(email, username, confirmURL); err != nil {
		log.Printf("send confirmation mail to %s: %v", email, err)
	}
}
