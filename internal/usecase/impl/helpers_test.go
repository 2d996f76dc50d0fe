package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"furnishop/config"
	"furnishop/internal/domain/entity"
	"furnishop/internal/domain/service"
	"furnishop/internal/infra/auth"
	"furnishop/internal/infra/idgen"
	"furnishop/internal/infra/kvstore"
	"furnishop/internal/infra/payment"
	"furnishop/internal/infra/persistence/kv"
	"furnishop/internal/infra/seed"
	"furnishop/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(strictTransitions bool) *config.Config {
	return &config.Config{
		Orders: &config.OrdersConfig{StrictTransitions: strictTransitions},
	}
}

// capturePublisher records published events.
type capturePublisher struct {
	mu     sync.Mutex
	events []*service.OrderEvent
	err    error
}

func (p *capturePublisher) PublishOrderEvent(_ context.Context, event *service.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return p.err
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) Events() []*service.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.OrderEvent(nil), p.events...)
}

// testEnv wires every service over one in-memory store, the way the application does.
type testEnv struct {
	store     kvstore.Store
	seeds     service.SeedProvider
	ids       service.IDGenerator
	publisher *capturePublisher
	session   usecase.SessionUsecase
	cart      usecase.CartUsecase
	orders    usecase.OrderUsecase
	catalog   usecase.CatalogUsecase
	checkout  usecase.CheckoutUsecase
	dashboard usecase.DashboardUsecase
}

func newTestStore(t *testing.T) kvstore.Store {
	t.Helper()

	store, err := kvstore.Open(config.StoreConfig{Driver: config.StoreDriverMem, Namespace: "furnishop"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func newTestSeeds(t *testing.T) service.SeedProvider {
	t.Helper()

	seeds, err := seed.NewProvider()
	require.NoError(t, err)

	return seeds
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	return newTestEnvWith(t, newTestStore(t), newTestSeeds(t), false)
}

// newTestEnvWith builds a fresh set of services, as a restarted process would, over store.
func newTestEnvWith(t *testing.T, store kvstore.Store, seeds service.SeedProvider, strict bool) *testEnv {
	t.Helper()

	logger := newDiscardLogger()
	env := &testEnv{
		store:     store,
		seeds:     seeds,
		ids:       idgen.New(),
		publisher: &capturePublisher{},
	}

	env.session = NewSessionService(SessionServiceParams{
		CredentialRepo: kv.NewCredentialRepository(store),
		SessionRepo:    kv.NewSessionRepository(store),
		Hasher:         auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		IDs:            env.ids,
		Seeds:          seeds,
		Logger:         logger,
	})
	env.cart = NewCartService(kv.NewCartRepository(store), logger)
	env.orders = NewOrderService(OrderServiceParams{
		Repo:      kv.NewOrderRepository(store),
		IDs:       env.ids,
		Publisher: env.publisher,
		Config:    newTestConfig(strict),
		Logger:    logger,
	})
	env.catalog = NewCatalogService(CatalogServiceParams{
		Repo:   kv.NewCatalogRepository(store),
		Seeds:  seeds,
		IDs:    env.ids,
		Logger: logger,
	})
	env.checkout = NewCheckoutService(CheckoutServiceParams{
		Session: env.session,
		Cart:    env.cart,
		Orders:  env.orders,
		Payment: payment.NewSimulatedProcessor(0, logger),
		Logger:  logger,
	})
	env.dashboard = NewDashboardService(env.session, env.catalog, env.orders)

	ctx := context.Background()
	require.NoError(t, env.session.Init(ctx))
	require.NoError(t, env.cart.Init(ctx))
	require.NoError(t, env.orders.Init(ctx))
	require.NoError(t, env.catalog.Init(ctx))

	return env
}

func (env *testEnv) product(t *testing.T, id int64) entity.Product {
	t.Helper()

	p, ok, err := env.catalog.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.True(t, ok, "product %d not in catalog", id)

	return p
}

func (env *testEnv) login(t *testing.T, email, password string) {
	t.Helper()

	ok, err := env.session.Login(context.Background(), usecase.LoginInput{Email: email, Password: password})
	require.NoError(t, err)
	require.True(t, ok)
}
