package kv

import (
	"context"

	"furnishop/internal/domain/entity"
	"furnishop/internal/domain/repository"
	"furnishop/internal/errors"
	"furnishop/internal/infra/kvstore"
	"furnishop/internal/infra/persistence/model"
)

type sessionRepository struct {
	store kvstore.Store
}

// NewSessionRepository stores the active session under the "user" record.
func NewSessionRepository(store kvstore.Store) repository.SessionRepository {
	return &sessionRepository{store: store}
}

func (repo *sessionRepository) Load(ctx context.Context) (*entity.User, error) {
	var record *model.SessionModel
	if err := loadRecord(ctx, repo.store, model.SessionKey, &record); err != nil {
		return nil, err
	}
	// a stored JSON null means nobody is logged in
	if record == nil {
		return nil, repository.ErrRecordNotFound
	}

	return &entity.User{
		ID:    record.ID,
		Name:  record.Name,
		Email: record.Email,
		Role:  entity.Role(record.Role),
	}, nil
}

func (repo *sessionRepository) Save(ctx context.Context, user *entity.User) error {
	if user == nil {
		return repo.Delete(ctx)
	}

	return saveRecord(ctx, repo.store, model.SessionKey, model.SessionModel{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role.String(),
	})
}

func (repo *sessionRepository) Delete(ctx context.Context) error {
	return errors.Wrap(repo.store.Delete(ctx, model.SessionKey), "failed to delete session")
}
