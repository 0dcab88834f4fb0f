package service

import (
	"testing"

	"github.com/Kostiantyn78/ImageHub/internal/model"
	authdto "github.com/Kostiantyn78/ImageHub/internal/modules/auth/dto"
	userrepo "github.com/Kostiantyn78/ImageHub/internal/modules/user/repo"
	"github.com/Kostiantyn78/ImageHub/internal/testutils"
)

func mustTestService(t *testing.T) (*Service, userrepo.UserStore, *testutils.RecorderMailer) {
	t.Helper()
	db := testutils.SetupDB(t)
	store := userrepo.NewUserRepository(db)
	mailer := &testutils.RecorderMailer{}
	return New(store, mailer), store, mailer
}

func signup(username, email string) authdto.SignupRequest {
	return authdto.SignupRequest{
		Username: username,
		Email:    email,
		Password: "secret123",
	}
}

func mustRegister(t *testing.T, s *Service, username, email string) *model.User {
	t.Helper()
	user, err := s.Register(signup(username, email))
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return user
}

func mustConfirm(t *testing.T, store userrepo.UserStore, user *model.User) {
	t.Helper()
	if err := store.UpdateConfirmed(user.ID, true); err != nil {
		t.Fatalf("confirm user %d: %v", user.ID, err)
	}
}
