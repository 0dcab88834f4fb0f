package service

import (
	"testing"
	"time"

	platformservice "github.com/Kostiantyn78/ImageHub/internal/platform/service"
	"github.com/Kostiantyn78/ImageHub/internal/utils"

	"github.com/Kostiantyn78/ImageHub/internal/model"
)

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

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	s, _, _ := mustTestService(t)

	first := mustRegister(t, s, "alice", "alice@example.com")
	if first.Role != model.RoleAdmin {
		t.Fatalf("first user role = %s, want admin", first.Role)
	}
	if first.Confirmed {
		t.Fatal("new user should start unconfirmed")
	}
	if first.Avatar == "" {
		t.Fatal("new user should get a gravatar avatar")
	}

	second := mustRegister(t, s, "bob", "bob@example.com")
	if second.Role != model.RoleUser {
		t.Fatalf("second user role = %s, want user", second.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s, _, _ := mustTestService(t)

	mustRegister(t, s, "alice", "alice@example.com")
	_, err := s.Register(signup("alice2", "alice@example.com"))
	assertCode(t, err, platformservice.ErrorCodeConflict)
}

func TestLoginRequiresConfirmedEmail(t *testing.T) {
	s, store, _ := mustTestService(t)
	user := mustRegister(t, s, "alice", "alice@example.com")

	_, err := s.Login("alice@example.com", "secret123")
	assertCode(t, err, platformservice.ErrorCodeUnauthorized)

	mustConfirm(t, store, user)

	pair, err := s.Login("alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login after confirmation: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" || pair.TokenType != "bearer" {
		t.Fatalf("incomplete token pair: %+v", pair)
	}

	_, err = s.Login("alice@example.com", "wrongpass")
	assertCode(t, err, platformservice.ErrorCodeUnauthorized)

	_, err = s.Login("nobody@example.com", "secret123")
	assertCode(t, err, platformservice.ErrorCodeUnauthorized)
}

func TestLoginPersistsRefreshToken(t *testing.T) {
	s, store, _ := mustTestService(t)
	user := mustRegister(t, s, "alice", "alice@example.com")
	mustConfirm(t, store, user)

	pair, err := s.Login("alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	stored, err := store.FindByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.RefreshToken != pair.RefreshToken {
		t.Fatal("refresh token was not persisted")
	}
}

func TestRefreshRotatesTokenPair(t *testing.T) {
	s, store, _ := mustTestService(t)
	user := mustRegister(t, s, "alice", "alice@example.com")
	mustConfirm(t, store, user)

	pair, err := s.Login("alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	// HS256 tokens for the same subject within one second are identical,
	// so step past the iat boundary before rotating.
	time.Sleep(1100 * time.Millisecond)

	rotated, err := s.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rotated.RefreshToken == pair.RefreshToken {
		t.Fatal("refresh should rotate the stored token")
	}

	stored, err := store.FindByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.RefreshToken != rotated.RefreshToken {
		t.Fatal("rotated token was not persisted")
	}
}

func TestRefreshMismatchClearsStoredToken(t *testing.T) {
	s, store, _ := mustTestService(t)
	user := mustRegister(t, s, "alice", "alice@example.com")
	mustConfirm(t, store, user)

	if _, err := s.Login("alice@example.com", "secret123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	// A well-signed token that is not the stored one.
	forged, err := utils.GenerateRefreshToken("alice@example.com", 2*time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	_, err = s.Refresh(forged)
	assertCode(t, err, platformservice.ErrorCodeUnauthorized)

	stored, err := store.FindByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.RefreshToken != "" {
		t.Fatal("mismatched refresh should clear the stored token")
	}

	// The cleared slot rejects every subsequent presentation too.
	_, err = s.Refresh(forged)
	assertCode(t, err, platformservice.ErrorCodeUnauthorized)
}

func TestRefreshRejectsAccessScope(t *testing.T) {
	s, store, _ := mustTestService(t)
	user := mustRegister(t, s, "alice", "alice@example.com")
	mustConfirm(t, store, user)

	pair, err := s.Login("alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	_, err = s.Refresh(pair.AccessToken)
	assertCode(t, err, platformservice.ErrorCodeUnauthorized)
}

func TestConfirmEmailIdempotent(t *testing.T) {
	s, store, _ := mustTestService(t)
	mustRegister(t, s, "alice", "alice@example.com")

	token, err := utils.GenerateEmailToken("alice@example.com", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	msg, err := s.ConfirmEmail(token)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if msg != "email confirmed" {
		t.Fatalf("first confirmation message = %q", msg)
	}

	msg, err = s.ConfirmEmail(token)
	if err != nil {
		t.Fatalf("second confirm: %v", err)
	}
	if msg != "your email is already confirmed" {
		t.Fatalf("second confirmation message = %q", msg)
	}

	stored, err := store.FindByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !stored.Confirmed {
		t.Fatal("confirmed flag should stay set")
	}
}

func TestConfirmEmailRejectsBadToken(t *testing.T) {
	s, _, _ := mustTestService(t)

	_, err := s.ConfirmEmail("not-a-token")
	assertCode(t, err, platformservice.ErrorCodeUnauthorized)
}

func TestRequestEmailNeutralReply(t *testing.T) {
	s, store, _ := mustTestService(t)
	user := mustRegister(t, s, "alice", "alice@example.com")

	msg, err := s.RequestEmail("alice@example.com")
	if err != nil {
		t.Fatalf("request email: %v", err)
	}
	if msg != "check your email for confirmation" {
		t.Fatalf("pending account message = %q", msg)
	}

	// Unknown addresses get the same reply.
	msg, err = s.RequestEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("request email for stranger: %v", err)
	}
	if msg != "check your email for confirmation" {
		t.Fatalf("unknown account message = %q", msg)
	}

	mustConfirm(t, store, user)
	msg, err = s.RequestEmail("alice@example.com")
	if err != nil {
		t.Fatalf("request email when confirmed: %v", err)
	}
	if msg != "your email is already confirmed" {
		t.Fatalf("confirmed account message = %q", msg)
	}
}

func TestResolveAccessToken(t *testing.T) {
	s, store, _ := mustTestService(t)
	user := mustRegister(t, s, "alice", "alice@example.com")
	mustConfirm(t, store, user)

	pair, err := s.Login("alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	resolved, err := s.ResolveAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("resolved user %d, want %d", resolved.ID, user.ID)
	}

	if _, err := s.ResolveAccessToken(pair.RefreshToken); err == nil {
		t.Fatal("refresh token must not resolve as an access token")
	}
	if _, err := s.ResolveAccessToken("garbage"); err == nil {
		t.Fatal("garbage token must not resolve")
	}
}
