package storage

import (
	"context"
	"fmt"
	"time"

	"eightbitbar/internal/domain/admindashboard"
	"eightbitbar/internal/domain/bookings"
	"eightbitbar/internal/domain/carts"
	"eightbitbar/internal/domain/giftcards"
	"eightbitbar/internal/domain/orders"
	"eightbitbar/internal/domain/paymentsrepo"
	"eightbitbar/internal/domain/products"
	"eightbitbar/internal/domain/rooms"
	"eightbitbar/internal/domain/users"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Sales struct {
	Carts    *carts.Repository
	Orders   *orders.Repository
	Payments *paymentsrepo.Repository
}

type Container struct {
	pool      *pgxpool.Pool // set so WithSalesTx can open transactions
	orderGen  *orders.OrderNumberGenerator
	Users     users.Store
	Rooms     rooms.Store
	Bookings  bookings.Store
	Products  products.Store
	GiftCards giftcards.Store
	Dashboard admindashboard.Store
	Sales     Sales
}

type Config struct {
	OrderNumberSecret string
	CartTTL           time.Duration
}

func NewContainer(db *pgxpool.Pool, cfg Config) *Container {
	gen := orders.NewOrderNumberGenerator(cfg.OrderNumberSecret)
	ttl := cfg.CartTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Container{
		pool:      db,
		orderGen:  gen,
		Users:     users.NewRepository(db),
		Rooms:     rooms.NewRepository(db),
		Bookings:  bookings.NewRepository(db),
		Products:  products.NewRepository(db),
		GiftCards: giftcards.NewRepository(db),
		Dashboard: admindashboard.NewRepository(db),
		Sales: Sales{
			Carts:    carts.NewRepositoryWithTTL(db, ttl),
			Orders:   orders.NewRepository(db, gen),
			Payments: paymentsrepo.NewRepository(db),
		},
	}
}

// SalesTx is a temporary, tx-scoped set of repos for atomic units of work.
// Gift cards are included because checkout applies card balance in the same
// transaction that creates the order.
type SalesTx struct {
	Carts     *carts.Repository
	Orders    *orders.Repository
	Payments  *paymentsrepo.Repository
	GiftCards *giftcards.Repository
}

// WithSalesTx runs a sales unit-of-work atomically.
func (c *Container) WithSalesTx(ctx context.Context, fn func(s *SalesTx) error) error {
	if c.pool == nil {
		return fmt.Errorf("storage container pool is nil")
	}

	tx, err := c.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback(ctx) // safe even if already committed
	}()

	s := &SalesTx{
		Carts:     carts.NewRepository(tx),
		Orders:    orders.NewRepository(tx, c.orderGen),
		Payments:  paymentsrepo.NewRepository(tx),
		GiftCards: giftcards.NewRepository(tx),
	}

	if err := fn(s); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
