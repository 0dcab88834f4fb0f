package modules

import (
	"github.com/Kostiantyn78/ImageHub/internal/mail"
	"github.com/Kostiantyn78/ImageHub/internal/modules/auth"
	"github.com/Kostiantyn78/ImageHub/internal/modules/comment"
	commentrepo "github.com/Kostiantyn78/ImageHub/internal/modules/comment/repo"
	"github.com/Kostiantyn78/ImageHub/internal/modules/photo"
	photorepo "github.com/Kostiantyn78/ImageHub/internal/modules/photo/repo"
	"github.com/Kostiantyn78/ImageHub/internal/modules/transform"
	transformrepo "github.com/Kostiantyn78/ImageHub/internal/modules/transform/repo"
	"github.com/Kostiantyn78/ImageHub/internal/modules/user"
	userrepo "github.com/Kostiantyn78/ImageHub/internal/modules/user/repo"
	"github.com/Kostiantyn78/ImageHub/internal/platform/cloud"

	"gorm.io/gorm"
)

type AppModules struct {
	Auth      *auth.Module
	User      *user.Module
	Photo     *photo.Module
	Transform *transform.Module
	Comment   *comment.Module
}

// New wires repositories and modules by hand. The photo service doubles
// as the photo counter for profiles and the access predicate for
// transforms.
func New(db *gorm.DB, gateway cloud.Gateway, mailer mail.Sender) *AppModules {
	userStore := userrepo.NewUserRepository(db)
	photoStore := photorepo.NewPhotoRepository(db)
	tagStore := photorepo.NewTagRepository(db)
	transformStore := transformrepo.NewTransformRepository(db)
	commentStore := commentrepo.NewCommentRepository(db)

	photoModule := photo.New(photoStore, tagStore, gateway)

	return &AppModules{
		Auth:      auth.New(userStore, mailer),
		User:      user.New(userStore, photoModule.Service, gateway),
		Photo:     photoModule,
		Transform: transform.New(transformStore, photoStore, photoModule.Service, gateway),
		Comment:   comment.New(commentStore, photoStore),
	}
}
