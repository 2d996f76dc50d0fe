package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"furnishop/config"
	"furnishop/internal/domain/entity"
	"furnishop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

func testInfra(t *testing.T) fx.Option {
	t.Helper()

	cfg := &config.Config{
		Store:    config.StoreConfig{Driver: config.StoreDriverFile, Dir: t.TempDir(), Namespace: "furnishop"},
		Auth:     &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		Checkout: &config.CheckoutConfig{},
		Orders:   &config.OrdersConfig{},
	}

	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(func() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }),
	)
}

func execute(t *testing.T, infra fx.Option, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(infra)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestProductsList(t *testing.T) {
	out, err := execute(t, testInfra(t), "products", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Nordic Lounge Chair")
	assert.Contains(t, out, "Rattan Lounge Set")
	assert.Contains(t, out, "12 products (seed)")
}

func TestUsersListAndStats(t *testing.T) {
	infra := testInfra(t)

	out, err := execute(t, infra, "users", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "admin@furnishop.com")
	assert.Contains(t, out, "john@example.com")
	assert.NotContains(t, out, "$2a$")

	out, err = execute(t, infra, "stats")
	require.NoError(t, err)
	assert.Equal(t, "products: 12\norders: 0\nusers: 2\n", out)
}

func TestOrdersSetStatus(t *testing.T) {
	infra := testInfra(t)

	var placed *entity.Order
	err := newRunner(infra)(context.Background(), func(ctx context.Context, s *stores) error {
		var err error
		placed, err = s.orders.PlaceOrder(ctx, usecase.PlaceOrderInput{
			UserID:        2,
			Items:         []entity.CartItem{{Product: entity.Product{ID: 5, Name: "Walnut Nightstand", Price: 249}, Quantity: 1}},
			Total:         298,
			PaymentMethod: entity.PaymentMethodCOD,
			Address:       "1 Main St",
		})

		return err
	})
	require.NoError(t, err)
	id := strconv.FormatInt(placed.ID, 10)

	out, err := execute(t, infra, "orders", "set-status", id, "Shipped")
	require.NoError(t, err)
	assert.Equal(t, "order "+id+" is now Shipped\n", out)

	out, err = execute(t, infra, "orders", "list", "--user", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], id)
	assert.Contains(t, lines[1], "Shipped")

	out, err = execute(t, infra, "orders", "list", "--user", "1")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 1)
}

func TestOrdersSetStatus_Errors(t *testing.T) {
	infra := testInfra(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "bad id", args: []string{"orders", "set-status", "abc", "Shipped"}, wantErr: `invalid order id "abc"`},
		{name: "bad status", args: []string{"orders", "set-status", "1", "Lost"}, wantErr: `invalid status "Lost"`},
		{name: "unknown order", args: []string{"orders", "set-status", "42", "Shipped"}, wantErr: "order 42 not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, infra, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
