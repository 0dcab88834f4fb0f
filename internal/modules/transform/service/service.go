package service

import (
	"bytes"
	"context"
	"log"

	"github.com/Kostiantyn78/ImageHub/internal/model"
	"github.com/Kostiantyn78/ImageHub/internal/modules/transform/repo"
	"github.com/Kostiantyn78/ImageHub/internal/platform/cloud"
	platformservice "github.com/Kostiantyn78/ImageHub/internal/platform/service"
)

// AccessChecker is the ownership-or-admin predicate. Implemented by the
// photo module service so both registries share one rule.
type AccessChecker interface {
	HasAccess(userID, ownerID uint, role model.Role) bool
}

type Service struct {
	transformStore repo.TransformStore
	photoStore     repo.PhotoStore
	access         AccessChecker
	gateway        cloud.Gateway
}

func New(transformStore repo.TransformStore, photoStore repo.PhotoStore, access AccessChecker, gateway cloud.Gateway) *Service {
	return &Service{
		transformStore: transformStore,
		photoStore:     photoStore,
		access:         access,
		gateway:        gateway,
	}
}

// Create derives a transformed asset from a source photo, encodes the
// result URL as a QR image, uploads that as a second asset, and persists
// the linked record. A failure partway leaves any already-created remote
// assets in place; only the database row is all-or-nothing.
func (s *Service) Create(ctx context.Context, user *model.User, photoID uint, params cloud.Params) (*model.Transform, error) {
	photo, err := s.photoStore.FindByID(photoID)
	if err != nil {
		return nil, platformservice.NewInternalError("could not load photo")
	}
	if photo == nil {
		return nil, platformservice.NewNotFoundError("photo not found")
	}
	if !s.access.HasAccess(user.ID, photo.UserID, user.Role) {
		return nil, platformservice.NewForbiddenError("not enough permissions")
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}

	asset, err := s.gateway.Transform(ctx, photo.URL, params)
	if err != nil {
		if _, ok := platformservice.AsServiceError(err); ok {
			return nil, err
		}
		log.Printf("transform photo %d: %v", photoID, err)
		return nil, platformservice.NewUpstreamError("could not transform photo")
	}

	qrAsset, err := s.storeQRCode(ctx, photo.UserID, asset.URL)
	if err != nil {
		return nil, err
	}

	// The row inherits the source photo's ownership, not the caller's:
	// an admin transforming someone's photo creates an asset the photo
	// owner controls.
	transform := &model.Transform{
		PhotoID:       photo.ID,
		URL:           asset.URL,
		CloudID:       asset.CloudID,
		QRCodeURL:     qrAsset.URL,
		QRCodeCloudID: qrAsset.CloudID,
		UserID:        photo.UserID,
	}
	if err := s.transformStore.Create(transform); err != nil {
		log.Printf("persist transform for photo %d: %v", photoID, err)
		return nil, platformservice.NewInternalError("could not save transform")
	}
	return transform, nil
}

// Update re-derives the delivery URL from the already-stored transformed
// asset with new parameters, replaces the QR asset, and overwrites the
// record's URLs. The transformed asset id itself never changes.
func (s *Service) Update(ctx context.Context, user *model.User, transformID uint, params cloud.Params) (*model.Transform, error) {
	transform, err := s.getOwned(user, transformID)
	if err != nil {
		return nil, err
	}
	if err := validateParams(params); err != nil {
		return nil, err
	}

	url, err := s.gateway.Retransform(ctx, transform.CloudID, params)
	if err != nil {
		if _, ok := platformservice.AsServiceError(err); ok {
			return nil, err
		}
		log.Printf("retransform %d: %v", transformID, err)
		return nil, platformservice.NewUpstreamError("could not transform photo")
	}

	qrAsset, err := s.storeQRCode(ctx, transform.UserID, url)
	if err != nil {
		return nil, err
	}

	transform.URL = url
	transform.QRCodeURL = qrAsset.URL
	transform.QRCodeCloudID = qrAsset.CloudID
	if err := s.transformStore.Save(transform); err != nil {
		return nil, platformservice.NewInternalError("could not save transform")
	}
	return transform, nil
}

// Delete removes both remote assets, then the row. A remote failure keeps
// the row so the pair stays deletable later.
func (s *Service) Delete(ctx context.Context, user *model.User, transformID uint) error {
	transform, err := s.getOwned(user, transformID)
	if err != nil {
		return err
	}

	if err := s.gateway.Delete(ctx, transform.CloudID); err != nil {
		log.Printf("delete transformed asset %s: %v", transform.CloudID, err)
		return platformservice.NewUpstreamError("could not delete transform")
	}
	if transform.QRCodeCloudID != "" {
		if err := s.gateway.Delete(ctx, transform.QRCodeCloudID); err != nil {
			log.Printf("delete qr asset %s: %v", transform.QRCodeCloudID, err)
			return platformservice.NewUpstreamError("could not delete transform")
		}
	}

	if err := s.transformStore.Delete(transform); err != nil {
		return platformservice.NewInternalError("could not delete transform")
	}
	return nil
}

func (s *Service) Get(user *model.User, transformID uint) (*model.Transform, error) {
	return s.getOwned(user, transformID)
}

// GetQRCode returns the stored QR asset URL for a transform.
func (s *Service) GetQRCode(user *model.User, transformID uint) (string, error) {
	transform, err := s.getOwned(user, transformID)
	if err != nil {
		return "", err
	}
	return transform.QRCodeURL, nil
}

func (s *Service) ListByUser(user *model.User) ([]model.Transform, error) {
	transforms, err := s.transformStore.ListByUserID(user.ID)
	if err != nil {
		return nil, platformservice.NewInternalError("could not list transforms")
	}
	return transforms, nil
}

// getOwned authorizes against the record's own denormalized owner, not
// the source photo (which may be gone).
func (s *Service) getOwned(user *model.User, transformID uint) (*model.Transform, error) {
	transform, err := s.transformStore.FindByID(transformID)
	if err != nil {
		return nil, platformservice.NewInternalError("could not load transform")
	}
	if transform == nil {
		return nil, platformservice.NewNotFoundError("transform not found")
	}
	if !s.access.HasAccess(user.ID, transform.UserID, user.Role) {
		return nil, platformservice.NewForbiddenError("not enough permissions")
	}
	return transform, nil
}

// validateParams rejects a parameter set with no recognized transformation
// before anything goes remote.
func validateParams(params cloud.Params) error {
	if _, err := params.Chain(); err != nil {
		return platformservice.NewValidationError("at least one transformation parameter must be specified")
	}
	return nil
}

func (s *Service) storeQRCode(ctx context.Context, userID uint, url string) (*cloud.Asset, error) {
	png, err := cloud.EncodeQRCode(url)
	if err != nil {
		log.Printf("encode qr code: %v", err)
		return nil, platformservice.NewInternalError("could not encode qr code")
	}
	asset, err := s.gateway.Store(ctx, bytes.NewReader(png), cloud.QRCodeFolder(userID))
	if err != nil {
		log.Printf("store qr code: %v", err)
		return nil, platformservice.NewUpstreamError("could not store qr code")
	}
	return asset, nil
}
