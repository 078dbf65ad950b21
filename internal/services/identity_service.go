package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/devharu/snaptag/backend/internal/models"
	"github.com/devharu/snaptag/backend/internal/repositories"
	"github.com/devharu/snaptag/backend/pkg/storage"
)

// FileUpload is a binary blob handed in by the transport layer.
type FileUpload struct {
	Data        []byte
	Filename    string
	ContentType string
}

// IdentityService handles registration and login against the user relation.
// The phone number alone authenticates; there is no password or OTP step.
type IdentityService struct {
	users    repositories.UserRepository
	issuer   *TokenIssuer
	uploader storage.MediaUploader
}

// NewIdentityService creates a new IdentityService
func NewIdentityService(users repositories.UserRepository, issuer *TokenIssuer, uploader storage.MediaUploader) *IdentityService {
	return &IdentityService{
		users:    users,
		issuer:   issuer,
		uploader: uploader,
	}
}

// Register creates a new user for the phone number and issues a token pair.
// A known phone fails with ErrAlreadyRegistered; the unique index on phone
// turns a concurrent duplicate insert into the same error. If issuance
// fails the user row is kept and the call fails with ErrTokenNotGenerated.
func (s *IdentityService) Register(ctx context.Context, req models.RegisterRequest) (models.TokenPair, error) {
	_, err := s.users.GetUserByPhone(ctx, req.PhoneNumber)
	if err == nil {
		return models.TokenPair{}, models.ErrAlreadyRegistered
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return models.TokenPair{}, err
	}

	user := &models.User{
		Phone:       req.PhoneNumber,
		UserName:    req.Username,
		UserTitle:   req.Usertitle,
		UserPicPath: req.ProfilePath,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.TokenPair{}, models.ErrAlreadyRegistered
		}
		return models.TokenPair{}, err
	}

	return s.issuer.Issue(ctx, user.ID)
}

// Login issues a token pair for an existing phone number.
func (s *IdentityService) Login(ctx context.Context, phone string) (models.TokenPair, error) {
	user, err := s.users.GetUserByPhone(ctx, phone)
	if err != nil {
		return models.TokenPair{}, err
	}

	return s.issuer.Issue(ctx, user.ID)
}

// Refresh rotates the user's refresh token into a fresh pair.
func (s *IdentityService) Refresh(ctx context.Context, userID uint, refreshToken string) (models.TokenPair, error) {
	return s.issuer.Rotate(ctx, userID, refreshToken)
}

// SetProfilePicture uploads the blob and points the user's profile-picture
// URL at it.
func (s *IdentityService) SetProfilePicture(ctx context.Context, userID uint, file FileUpload) (string, error) {
	if userID == 0 || len(file.Data) == 0 {
		return "", models.ErrContentMissing
	}

	url, err := s.uploader.Upload(ctx, file.Data, file.Filename, file.ContentType)
	if err != nil {
		return "", err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}

	user.UserPicPath = &url
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return url, nil
}

// GetUserInfo returns the user's public profile fields.
func (s *IdentityService) GetUserInfo(ctx context.Context, userID uint) (*models.User, error) {
	return s.users.GetUserByID(ctx, userID)
}
