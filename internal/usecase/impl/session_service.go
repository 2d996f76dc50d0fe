// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "furnishop/internal/delivery/context"
	"furnishop/internal/domain/entity"
	"furnishop/internal/domain/repository"
	"furnishop/internal/domain/service"
	"furnishop/internal/errors"
	"furnishop/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface. The registry and the
// session are cached in memory and written through on every change.
type sessionService struct {
	mu          sync.Mutex
	loaded      bool
	credentials []*entity.Credential
	current     *entity.User

	credentialRepo repository.CredentialRepository
	sessionRepo    repository.SessionRepository
	hasher         service.PasswordHasher
	ids            service.IDGenerator
	seeds          service.SeedProvider
	logger         *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	SessionRepo    repository.SessionRepository
	Hasher         service.PasswordHasher
	IDs            service.IDGenerator
	Seeds          service.SeedProvider
	Logger         *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		credentialRepo: params.CredentialRepo,
		sessionRepo:    params.SessionRepo,
		hasher:         params.Hasher,
		ids:            params.IDs,
		seeds:          params.Seeds,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Init reloads the registry and the session from the store.
func (srv *sessionService) Init(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.load(ctx)
}

func (srv *sessionService) ensureLoaded(ctx context.Context) error {
	if srv.loaded {
		return nil
	}

	return srv.load(ctx)
}

func (srv *sessionService) load(ctx context.Context) error {
	credentials, err := srv.credentialRepo.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		credentials, err = srv.seedRegistry(ctx)
		if err != nil {
			return err
		}
	case err != nil:
		return storageError(err, "load account registry")
	}

	current, err := srv.sessionRepo.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		current = nil
	case err != nil:
		return storageError(err, "load session")
	}

	srv.credentials = credentials
	srv.current = current
	srv.loaded = true

	srv.log(ctx).Debug("Session store loaded",
		slog.Int("accounts", len(credentials)),
		slog.Bool("logged_in", current != nil),
	)

	return nil
}

// seedRegistry writes the fixed accounts of a fresh registry, hashing their passwords.
func (srv *sessionService) seedRegistry(ctx context.Context) ([]*entity.Credential, error) {
	accounts := srv.seeds.Accounts()
	credentials := make([]*entity.Credential, 0, len(accounts))
	for _, account := range accounts {
		hash, err := srv.hasher.Hash(account.Password)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to hash seed account %s", account.Email)
		}
		credentials = append(credentials, &entity.Credential{
			ID:           account.ID,
			Name:         account.Name,
			Email:        account.Email,
			PasswordHash: hash,
			Role:         account.Role,
		})
	}

	if err := srv.credentialRepo.Save(ctx, credentials); err != nil {
		return nil, storageError(err, "seed account registry")
	}
	srv.log(ctx).Info("Account registry seeded", slog.Int("accounts", len(credentials)))

	return credentials, nil
}

func (srv *sessionService) findByEmail(email string) *entity.Credential {
	for _, credential := range srv.credentials {
		if credential.Email == email {
			return credential
		}
	}

	return nil
}

// Login establishes the session when email and password match a registered account.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (bool, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return false, err
	}

	credential := srv.findByEmail(input.Email)
	if credential == nil || !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Info("Login rejected")

		return false, nil
	}

	user := credential.Public()
	if err := srv.sessionRepo.Save(ctx, user); err != nil {
		return false, storageError(err, "save session")
	}
	srv.current = user

	srv.log(ctx).Info("User logged in", slog.Int64("user_id", user.ID), slog.String("role", user.Role.String()))

	return true, nil
}

// Signup registers a new user account and logs it in. A taken email reports false.
func (srv *sessionService) Signup(ctx context.Context, input usecase.SignupInput) (bool, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return false, err
	}

	if srv.findByEmail(input.Email) != nil {
		srv.log(ctx).Info("Signup rejected, email already registered")

		return false, nil
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return false, errors.Wrap(err, "failed to hash password")
	}

	credential := &entity.Credential{
		ID:           srv.ids.NextID(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
	}

	registry := make([]*entity.Credential, 0, len(srv.credentials)+1)
	registry = append(registry, srv.credentials...)
	registry = append(registry, credential)
	if err := srv.credentialRepo.Save(ctx, registry); err != nil {
		return false, storageError(err, "save account registry")
	}
	srv.credentials = registry

	user := credential.Public()
	if err := srv.sessionRepo.Save(ctx, user); err != nil {
		return false, storageError(err, "save session")
	}
	srv.current = user

	srv.log(ctx).Info("User signed up", slog.Int64("user_id", user.ID))

	return true, nil
}

// Logout clears the session and its persisted record.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.sessionRepo.Delete(ctx); err != nil {
		return storageError(err, "delete session")
	}

	if srv.current != nil {
		srv.log(ctx).Info("User logged out", slog.Int64("user_id", srv.current.ID))
	}
	srv.current = nil

	return nil
}

// CurrentUser returns the logged-in user, or nil. Load failures are logged and read as logged out.
func (srv *sessionService) CurrentUser(ctx context.Context) *entity.User {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		srv.log(ctx).Error("Failed to load session", slog.Any("error", err))

		return nil
	}

	return srv.current.Clone()
}

func (srv *sessionService) IsAdmin(ctx context.Context) bool {
	return srv.CurrentUser(ctx).IsAdmin()
}

// ListUsers returns every account without its password.
func (srv *sessionService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0, len(srv.credentials))
	for _, credential := range srv.credentials {
		users = append(users, credential.Public())
	}

	return users, nil
}
