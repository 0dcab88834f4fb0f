package cloud

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Kostiantyn78/ImageHub/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryGateway implements Gateway against the Cloudinary upload API.
type CloudinaryGateway struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryGateway(cfg config.CloudinaryConfig) (*CloudinaryGateway, error) {
	if cfg.Name == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary credentials are not configured")
	}
	cld, err := cloudinary.NewFromParams(cfg.Name, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryGateway{cld: cld}, nil
}

func (c *CloudinaryGateway) Store(ctx context.Context, file io.Reader, folder string) (*Asset, error) {
	res, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   folder,
		PublicID: uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}
	if res.Error.Message != "" {
		return nil, errors.New(res.Error.Message)
	}
	return &Asset{URL: res.SecureURL, CloudID: res.PublicID}, nil
}

func (c *CloudinaryGateway) Transform(ctx context.Context, sourceURL string, params Params) (*Asset, error) {
	chain, err := params.Chain()
	if err != nil {
		return nil, err
	}
	// Uploading the source URL with an incoming transformation stores the
	// already-transformed derivative as a new asset.
	res, err := c.cld.Upload.Upload(ctx, sourceURL, uploader.UploadParams{
		Folder:         "imagehub/transformed",
		PublicID:       uuid.NewString(),
		Transformation: chain,
	})
	if err != nil {
		return nil, err
	}
	if res.Error.Message != "" {
		return nil, errors.New(res.Error.Message)
	}
	return &Asset{URL: res.SecureURL, CloudID: res.PublicID}, nil
}

func (c *CloudinaryGateway) Retransform(ctx context.Context, cloudID string, params Params) (string, error) {
	chain, err := params.Chain()
	if err != nil {
		return "", err
	}
	img, err := c.cld.Image(cloudID)
	if err != nil {
		return "", err
	}
	img.Transformation = chain
	url, err := img.String()
	if err != nil {
		return "", err
	}
	return url, nil
}

func (c *CloudinaryGateway) Delete(ctx context.Context, cloudID string) error {
	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: cloudID})
	if err != nil {
		return err
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("destroy %s: %s", cloudID, res.Result)
	}
	return nil
}
