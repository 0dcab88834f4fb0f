package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Kostiantyn78/ImageHub/internal/model"
	photorepo "github.com/Kostiantyn78/ImageHub/internal/modules/photo/repo"
	photoservice "github.com/Kostiantyn78/ImageHub/internal/modules/photo/service"
	"github.com/Kostiantyn78/ImageHub/internal/modules/transform/repo"
	userrepo "github.com/Kostiantyn78/ImageHub/internal/modules/user/repo"
	"github.com/Kostiantyn78/ImageHub/internal/platform/cloud"
	platformservice "github.com/Kostiantyn78/ImageHub/internal/platform/service"
	"github.com/Kostiantyn78/ImageHub/internal/testutils"
)

type testEnv struct {
	service        *Service
	gateway        *testutils.FakeGateway
	transformStore repo.TransformStore
	photoStore     photorepo.PhotoStore
	userStore      userrepo.UserStore
}

func mustTestService(t *testing.T) *testEnv {
	t.Helper()
	db := testutils.SetupDB(t)
	gateway := &testutils.FakeGateway{}
	photoStore := photorepo.NewPhotoRepository(db)
	transformStore := repo.NewTransformRepository(db)
	access := photoservice.New(photoStore, photorepo.NewTagRepository(db), gateway)
	return &testEnv{
		service:        New(transformStore, photoStore, access, gateway),
		gateway:        gateway,
		transformStore: transformStore,
		photoStore:     photoStore,
		userStore:      userrepo.NewUserRepository(db),
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

func (e *testEnv) mustPhoto(t *testing.T, owner *model.User) *model.Photo {
	t.Helper()
	photo := &model.Photo{
		URL:     "https://fake.example/photos/source",
		CloudID: "photos/source",
		UserID:  owner.ID,
	}
	if err := e.photoStore.CreateWithTags(photo, nil); err != nil {
		t.Fatalf("create photo: %v", err)
	}
	return photo
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

var sepia = cloud.Params{"effect": "sepia"}

func TestCreateTransform(t *testing.T) {
	env := mustTestService(t)
	owner := env.mustUser(t, "alice", model.RoleUser)
	photo := env.mustPhoto(t, owner)

	transform, err := env.service.Create(context.Background(), owner, photo.ID, sepia)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if transform.PhotoID != photo.ID || transform.UserID != owner.ID {
		t.Fatalf("transform linkage wrong: %+v", transform)
	}
	if transform.URL == "" || transform.CloudID == "" {
		t.Fatalf("transform asset fields empty: %+v", transform)
	}
	if transform.QRCodeURL == "" || transform.QRCodeCloudID == "" {
		t.Fatalf("qr asset fields empty: %+v", transform)
	}

	if len(env.gateway.TransformCalls) != 1 {
		t.Fatalf("transform calls = %d, want 1", len(env.gateway.TransformCalls))
	}
	if env.gateway.TransformCalls[0].SourceURL != photo.URL {
		t.Fatalf("transform source = %s, want %s", env.gateway.TransformCalls[0].SourceURL, photo.URL)
	}
	// QR upload is a second, separate asset.
	if len(env.gateway.StoreCalls) != 1 {
		t.Fatalf("store calls = %d, want 1 (the qr upload)", len(env.gateway.StoreCalls))
	}
}

func TestCreateTransformMissingPhoto(t *testing.T) {
	env := mustTestService(t)
	user := env.mustUser(t, "alice", model.RoleUser)

	_, err := env.service.Create(context.Background(), user, 9999, sepia)
	assertCode(t, err, platformservice.ErrorCodeNotFound)

	// No row persisted, nothing went remote.
	transforms, listErr := env.transformStore.ListByUserID(user.ID)
	if listErr != nil {
		t.Fatalf("list: %v", listErr)
	}
	if len(transforms) != 0 {
		t.Fatalf("transform rows = %d, want 0", len(transforms))
	}
	if len(env.gateway.TransformCalls) != 0 {
		t.Fatalf("transform calls = %d, want 0", len(env.gateway.TransformCalls))
	}
}

// The row inherits the source photo's ownership: when an admin transforms
// another user's photo, the photo owner controls the result, not the admin.
func TestCreateTransformInheritsSourceOwner(t *testing.T) {
	env := mustTestService(t)
	owner := env.mustUser(t, "alice", model.RoleUser)
	admin := env.mustUser(t, "bob", model.RoleAdmin)
	photo := env.mustPhoto(t, owner)

	created, err := env.service.Create(context.Background(), admin, photo.ID, sepia)
	if err != nil {
		t.Fatalf("admin create: %v", err)
	}
	if created.UserID != owner.ID {
		t.Fatalf("transform owner = %d, want %d (the source photo owner)", created.UserID, owner.ID)
	}

	// It lists under the photo owner, not the admin.
	mine, err := env.service.ListByUser(owner)
	if err != nil {
		t.Fatalf("owner list: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("owner list = %d rows, want 1", len(mine))
	}
	admins, err := env.service.ListByUser(admin)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(admins) != 0 {
		t.Fatalf("admin list = %d rows, want 0", len(admins))
	}

	// And the owner can manage it.
	if _, err := env.service.Update(context.Background(), owner, created.ID,
		cloud.Params{"angle": 90}); err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if err := env.service.Delete(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}

// An empty or unrecognized parameter set is a caller error, rejected
// before anything goes remote.
func TestCreateTransformEmptyParams(t *testing.T) {
	env := mustTestService(t)
	owner := env.mustUser(t, "alice", model.RoleUser)
	photo := env.mustPhoto(t, owner)

	_, err := env.service.Create(context.Background(), owner, photo.ID, cloud.Params{})
	assertCode(t, err, platformservice.ErrorCodeValidation)

	_, err = env.service.Create(context.Background(), owner, photo.ID, cloud.Params{"bogus": 1})
	assertCode(t, err, platformservice.ErrorCodeValidation)

	if len(env.gateway.TransformCalls) != 0 || len(env.gateway.StoreCalls) != 0 {
		t.Fatalf("gateway touched for invalid params: transform=%d store=%d",
			len(env.gateway.TransformCalls), len(env.gateway.StoreCalls))
	}
	transforms, listErr := env.transformStore.ListByUserID(owner.ID)
	if listErr != nil {
		t.Fatalf("list: %v", listErr)
	}
	if len(transforms) != 0 {
		t.Fatalf("transform rows = %d, want 0", len(transforms))
	}
}

func TestUpdateTransformEmptyParams(t *testing.T) {
	env := mustTestService(t)
	owner := env.mustUser(t, "alice", model.RoleUser)
	photo := env.mustPhoto(t, owner)

	created, err := env.service.Create(context.Background(), owner, photo.ID, sepia)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = env.service.Update(context.Background(), owner, created.ID, cloud.Params{})
	assertCode(t, err, platformservice.ErrorCodeValidation)

	if len(env.gateway.RetransformCalls) != 0 {
		t.Fatalf("retransform calls = %d, want 0", len(env.gateway.RetransformCalls))
	}
}

func TestCreateTransformSourceAuthz(t *testing.T) {
	env := mustTestService(t)
	owner := env.mustUser(t, "alice", model.RoleUser)
	stranger := env.mustUser(t, "bob", model.RoleUser)
	admin := env.mustUser(t, "carol", model.RoleAdmin)
	photo := env.mustPhoto(t, owner)

	_, err := env.service.Create(context.Background(), stranger, photo.ID, sepia)
	assertCode(t, err, platformservice.ErrorCodeForbidden)

	if _, err := env.service.Create(context.Background(), admin, photo.ID, sepia); err != nil {
		t.Fatalf("admin create on another's photo: %v", err)
	}
}

// A failure after the transformed asset exists does not delete it again;
// the remote side keeps whatever was created before the error.
func TestCreateTransformNoRemoteCleanup(t *testing.T) {
	env := mustTestService(t)
	owner := env.mustUser(t, "alice", model.RoleUser)
	photo := env.mustPhoto(t, owner)

	env.gateway.StoreErr = errors.New("qr upload rejected")
	_, err := env.service.Create(context.Background(), owner, photo.ID, sepia)
	assertCode(t, err, platformservice.ErrorCodeUpstream)

	if len(env.gateway.TransformCalls) != 1 {
		t.Fatalf("transform calls = %d, want 1", len(env.gateway.TransformCalls))
	}
	if len(env.gateway.DeleteCalls) != 0 {
		t.Fatalf("delete calls = %v, want none", env.gateway.DeleteCalls)
	}

	transforms, listErr := env.transformStore.ListByUserID(owner.ID)
	if listErr != nil {
		t.Fatalf("list: %v", listErr)
	}
	if len(transforms) != 0 {
		t.Fatalf("transform rows = %d, want 0", len(transforms))
	}
}

func TestUpdateTransformKeepsAssetID(t *testing.T) {
	env := mustTestService(t)
	owner := env.mustUser(t, "alice", model.RoleUser)
	photo := env.mustPhoto(t, owner)

	created, err := env.service.Create(context.Background(), owner, photo.ID, sepia)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	oldQR := created.QRCodeCloudID

	updated, err := env.service.Update(context.Background(), owner, created.ID,
		cloud.Params{"width": 100, "height": 100, "crop": "fill"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CloudID != created.CloudID {
		t.Fatal("update must keep the transformed asset id")
	}
	if updated.URL == created.URL {
		t.Fatal("update must rewrite the delivery URL")
	}
	if updated.QRCodeCloudID == oldQR {
		t.Fatal("update must upload a fresh qr asset")
	}

	if len(env.gateway.RetransformCalls) != 1 {
		t.Fatalf("retransform calls = %d, want 1", len(env.gateway.RetransformCalls))
	}
}

func TestDeleteTransformRemovesBothAssets(t *testing.T) {
	env := mustTestService(t)
	owner := env.mustUser(t, "alice", model.RoleUser)
	photo := env.mustPhoto(t, owner)

	created, err := env.service.Create(context.Background(), owner, photo.ID, sepia)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := env.service.Delete(context.Background(), owner, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(env.gateway.DeleteCalls) != 2 {
		t.Fatalf("delete calls = %v, want both assets", env.gateway.DeleteCalls)
	}

	_, err = env.service.Get(owner, created.ID)
	assertCode(t, err, platformservice.ErrorCodeNotFound)
}

func TestDeleteTransformRemoteFailureKeepsRow(t *testing.T) {
	env := mustTestService(t)
	owner := env.mustUser(t, "alice", model.RoleUser)
	photo := env.mustPhoto(t, owner)

	created, err := env.service.Create(context.Background(), owner, photo.ID, sepia)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	env.gateway.DeleteErr = errors.New("gateway down")
	err = env.service.Delete(context.Background(), owner, created.ID)
	assertCode(t, err, platformservice.ErrorCodeUpstream)

	env.gateway.DeleteErr = nil
	if _, err := env.service.Get(owner, created.ID); err != nil {
		t.Fatalf("row should survive a failed remote delete: %v", err)
	}
}

// The record's own denormalized owner gates reads even when the source
// photo is long gone.
func TestGetTransformRowOwnerAuthz(t *testing.T) {
	env := mustTestService(t)
	owner := env.mustUser(t, "alice", model.RoleUser)
	stranger := env.mustUser(t, "bob", model.RoleUser)
	photo := env.mustPhoto(t, owner)

	created, err := env.service.Create(context.Background(), owner, photo.ID, sepia)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := env.photoStore.Delete(photo); err != nil {
		t.Fatalf("delete source photo: %v", err)
	}

	// The transform row survives the source photo's deletion.
	got, err := env.service.Get(owner, created.ID)
	if err != nil {
		t.Fatalf("owner get after source deletion: %v", err)
	}
	if got.PhotoID != photo.ID {
		t.Fatalf("transform photo id = %d, want %d", got.PhotoID, photo.ID)
	}

	_, err = env.service.Get(stranger, created.ID)
	assertCode(t, err, platformservice.ErrorCodeForbidden)
}

func TestGetQRCodeAndList(t *testing.T) {
	env := mustTestService(t)
	owner := env.mustUser(t, "alice", model.RoleUser)
	other := env.mustUser(t, "bob", model.RoleUser)
	photo := env.mustPhoto(t, owner)

	created, err := env.service.Create(context.Background(), owner, photo.ID, sepia)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	url, err := env.service.GetQRCode(owner, created.ID)
	if err != nil {
		t.Fatalf("qr code: %v", err)
	}
	if url != created.QRCodeURL {
		t.Fatalf("qr url = %s, want %s", url, created.QRCodeURL)
	}

	mine, err := env.service.ListByUser(owner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("owner list = %d rows, want 1", len(mine))
	}

	theirs, err := env.service.ListByUser(other)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(theirs) != 0 {
		t.Fatalf("other list = %d rows, want 0", len(theirs))
	}
}
