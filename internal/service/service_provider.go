package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/store"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

// ProfileImageBucket holds provider avatars and cover images.
const ProfileImageBucket = "profiles"

type providerService struct {
	providers store.ProviderRepository
	users     store.UserRepository
	objects   store.ObjectStorage
	ids       *utils.UUIDGenerator
	now       clock
	logger    *logger.Logger
}

func NewProviderService(providers store.ProviderRepository, users store.UserRepository, objects store.ObjectStorage, log *logger.Logger) ProviderService {
	return &providerService{
		providers: providers,
		users:     users,
		objects:   objects,
		ids:       utils.NewUUIDGenerator(),
		now:       systemClock,
		logger:    log,
	}
}

// ListProviders reads the public directory. State codes are matched upper case.
func (s *providerService) ListProviders(ctx context.Context, filter models.ProviderFilter) ([]models.Provider, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.State = strings.ToUpper(strings.TrimSpace(filter.State))
	return s.providers.ListProviders(ctx, filter)
}

func (s *providerService) GetProfile(ctx context.Context, userID string) (models.Provider, error) {
	return s.providers.GetProviderByUser(ctx, userID)
}

// SaveProfile creates the profile on first save and updates it afterwards.
// A new profile is named after the user's display name, or email when the
// user has none. When the avatar changes, the user metadata follows.
func (s *providerService) SaveProfile(ctx context.Context, update models.ProviderUpdate) (models.Provider, error) {
	log := logger.FromContext(ctx)

	current, err := s.providers.GetProviderByUser(ctx, update.UserID)
	exists := err == nil
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return models.Provider{}, err
	}

	id, name := current.ID, current.Name
	if !exists {
		user, err := s.users.FindUserByID(ctx, update.UserID)
		if err != nil {
			return models.Provider{}, fmt.Errorf("load profile owner: %w", err)
		}
		id, name = s.ids.Generate(), user.DisplayNameOrEmail()
	}
	if update.State != nil {
		state := strings.ToUpper(strings.TrimSpace(*update.State))
		update.State = &state
	}

	saved, err := s.providers.UpsertProvider(ctx, id, name, update)
	if err != nil {
		return models.Provider{}, err
	}

	if update.AvatarURL != nil && (!exists || *update.AvatarURL != current.AvatarURL) {
		if _, err = s.users.UpdateUserMetadata(ctx, update.UserID, models.UserMetadataUpdate{AvatarURL: update.AvatarURL}); err != nil {
			log.Err(err).Str("func", "providerService.SaveProfile").Str("user_id", update.UserID).Msg("failed to sync avatar to user metadata")
		}
	}

	return saved, nil
}

// UploadImage stores an avatar or cover image under
// {userID}/{kind}-{unixMillis}.{ext} and returns its public URL.
func (s *providerService) UploadImage(ctx context.Context, userID string, kind models.ImageKind, file FileUpload) (models.UploadedFile, error) {
	if kind != models.ImageAvatar && kind != models.ImageCover {
		return models.UploadedFile{}, fmt.Errorf("%w: image type %q", ErrValidation, kind)
	}

	ext, err := imageExtension(file)
	if err != nil {
		return models.UploadedFile{}, err
	}

	uploaded, err := s.objects.Put(ctx, store.Object{
		Bucket:      ProfileImageBucket,
		Key:         fmt.Sprintf("%s/%s-%d.%s", userID, kind, s.now().UnixMilli(), ext),
		ContentType: file.ContentType,
		Size:        file.Size,
		Body:        file.Body,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "providerService.UploadImage").Str("user_id", userID).Msg("image upload failed")
		return models.UploadedFile{}, fmt.Errorf("upload image: %w", err)
	}

	return uploaded, nil
}
