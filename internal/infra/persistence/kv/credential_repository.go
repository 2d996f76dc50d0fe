package kv

import (
	"context"

	"furnishop/internal/domain/entity"
	"furnishop/internal/domain/repository"
	"furnishop/internal/infra/kvstore"
	"furnishop/internal/infra/persistence/model"
)

type credentialRepository struct {
	store kvstore.Store
}

// NewCredentialRepository stores the account registry under the "users" record.
func NewCredentialRepository(store kvstore.Store) repository.CredentialRepository {
	return &credentialRepository{store: store}
}

func (repo *credentialRepository) Load(ctx context.Context) ([]*entity.Credential, error) {
	var records []model.CredentialModel
	if err := loadRecord(ctx, repo.store, model.RegistryKey, &records); err != nil {
		return nil, err
	}

	credentials := make([]*entity.Credential, 0, len(records))
	for _, record := range records {
		credentials = append(credentials, toCredentialDomain(record))
	}

	return credentials, nil
}

func (repo *credentialRepository) Save(ctx context.Context, credentials []*entity.Credential) error {
	records := make([]model.CredentialModel, 0, len(credentials))
	for _, credential := range credentials {
		records = append(records, fromCredentialDomain(credential))
	}

	return saveRecord(ctx, repo.store, model.RegistryKey, records)
}
