package service

import (
	"context"
	"log/slog"

	"github.com/bqviet86/cmict-server/internal/model"
	"github.com/bqviet86/cmict-server/internal/ports"
	"github.com/bqviet86/cmict-server/internal/util"
)

type UserService struct {
	userRepository ports.UserRepository
	cache          ports.CacheRepository
	media          ports.MediaService
	db             ports.Transactor
}

func NewUserService(
	userRepository ports.UserRepository,
	cache ports.CacheRepository,
	media ports.MediaService,
	db ports.Transactor,
) *UserService {
	return &UserService{
		userRepository: userRepository,
		cache:          cache,
		media:          media,
		db:             db,
	}
}

// GetMe : сначала Redis, при промахе БД с записью в кэш.
// Ошибки Redis не мешают ответу
func (s *UserService) GetMe(ctx context.Context, uuid string) (*model.User, error) {
	cached, err := s.cache.GetUser(ctx, uuid)
	if err != nil {
		slog.Warn("[UserService] кэш недоступен", slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	user, err := s.userRepository.FindByUUID(ctx, s.db.Executor(), uuid)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetUser(ctx, user); err != nil {
		slog.Warn("[UserService] не удалось сохранить пользователя в кэш", slog.Any("error", err))
	}

	return user, nil
}

func (s *UserService) UpdateMe(ctx context.Context, uuid string, input model.UpdateProfileInput) (*model.User, error) {
	user, err := s.userRepository.UpdateProfile(ctx, s.db.Executor(), uuid, input)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, uuid)
	return user, nil
}

// UpdateAvatar загружает картинку в S3 и сохраняет её URL в профиле
func (s *UserService) UpdateAvatar(ctx context.Context, uuid string, file model.UploadFile) (*model.User, error) {
	uploaded, err := s.media.UploadImages(ctx, []model.UploadFile{file})
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.UpdateAvatar(ctx, s.db.Executor(), uuid, uploaded[0].URL)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, uuid)
	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, username string) (*model.User, error) {
	return s.userRepository.FindByUsername(ctx, s.db.Executor(), username)
}

func (s *UserService) ListUsers(ctx context.Context, filter model.UserFilter) (*model.UserPage, error) {
	users, total, err := s.userRepository.ListUsers(ctx, s.db.Executor(), filter)
	if err != nil {
		return nil, err
	}

	return &model.UserPage{
		Users:      users,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: filter.TotalPages(total),
	}, nil
}

func (s *UserService) UpdateIsActive(ctx context.Context, username string, isActive bool) (*model.User, error) {
	user, err := s.userRepository.UpdateIsActive(ctx, s.db.Executor(), username, isActive)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, user.UUID)
	return user, nil
}

func (s *UserService) invalidate(ctx context.Context, uuid string) {
	if err := s.cache.DeleteUser(ctx, uuid); err != nil {
		_ = util.LogError("[UserService] не удалось сбросить кэш пользователя", err)
	}
}
