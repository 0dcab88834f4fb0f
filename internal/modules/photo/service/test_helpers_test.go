package service

import (
	"testing"

	"github.com/Kostiantyn78/ImageHub/internal/model"
	"github.com/Kostiantyn78/ImageHub/internal/modules/photo/repo"
	userrepo "github.com/Kostiantyn78/ImageHub/internal/modules/user/repo"
	platformservice "github.com/Kostiantyn78/ImageHub/internal/platform/service"
	"github.com/Kostiantyn78/ImageHub/internal/testutils"
)

type testEnv struct {
	service   *Service
	gateway   *testutils.FakeGateway
	userStore userrepo.UserStore
}

func mustTestService(t *testing.T) *testEnv {
	t.Helper()
	db := testutils.SetupDB(t)
	gateway := &testutils.FakeGateway{}
	return &testEnv{
		service:   New(repo.NewPhotoRepository(db), repo.NewTagRepository(db), gateway),
		gateway:   gateway,
		userStore: userrepo.NewUserRepository(db),
	}
}

func (e *testEnv) mustUser(t *testing.T, username string, role model.Role) *model.User {
	t.Helper()
	user := &model.User{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "x",
		Confirmed: true,
		Role:      role,
	}
	if err := e.userStore.Create(user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func assertCode(t *testing.T, err error, want platformservice.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok {
		t.Fatalf("expected service error, got %v", err)
	}
	if serviceErr.Code != want {
		t.Fatalf("expected code %s, got %s (%s)", want, serviceErr.Code, serviceErr.Message)
	}
}
