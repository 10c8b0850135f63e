package app

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/velora-jewels/storefront-go/internal/diag"
	"github.com/velora-jewels/storefront-go/internal/domain/cart"
	"github.com/velora-jewels/storefront-go/internal/domain/category"
	"github.com/velora-jewels/storefront-go/internal/domain/checkout"
	"github.com/velora-jewels/storefront-go/internal/domain/notification"
	"github.com/velora-jewels/storefront-go/internal/domain/order"
	"github.com/velora-jewels/storefront-go/internal/domain/payment"
	"github.com/velora-jewels/storefront-go/internal/domain/product"
	"github.com/velora-jewels/storefront-go/internal/domain/user"
	"github.com/velora-jewels/storefront-go/internal/gateway"
	"github.com/velora-jewels/storefront-go/internal/rest"
	"github.com/velora-jewels/storefront-go/internal/session"
)

// Storefront bundles the fully wired client: one gateway per backend family,
// typed service clients on top, and the session/cart/notification state
// containers with their lifecycle hooks connected.
type Storefront struct {
	Session       *session.Manager
	Cart          *cart.Container
	Notifications *notification.Container

	Products   product.Catalog
	Categories category.Directory
	Orders     order.Service
	Payments   payment.Service
	Users      user.Directory
}

// New wires the storefront from configuration. It is the single dependency
// injection point: containers are created here and bound to the session
// lifecycle, so a sign-in loads the cart and notifications and a sign-out
// (voluntary or forced by a 401) tears both down.
func New(cfg *Config) (*Storefront, error) {
	store, err := session.NewFileStore(cfg.StateDir)
	if err != nil {
		return nil, errors.Wrap(err, "create session store")
	}

	// The session manager is created after the gateways but the gateways need
	// its token; close over the variable to break the cycle.
	var sess *session.Manager
	tokens := gateway.TokenFunc(func() string {
		if sess == nil {
			return ""
		}
		return sess.Token()
	})
	onUnauthorized := func() {
		if sess != nil {
			sess.HandleUnauthorized()
		}
	}

	urls := cfg.BackendURLs()
	clients := make(map[string]*gateway.Client, len(urls))
	for name, baseURL := range urls {
		client, err := gateway.New(gateway.Config{
			BaseURL:        baseURL,
			Timeout:        cfg.RequestTimeout,
			Tokens:         tokens,
			OnUnauthorized: onUnauthorized,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "create %s gateway", name)
		}
		clients[name] = client
	}

	sess = session.NewManager(rest.NewAuthClient(clients["auth"]), store)

	cartContainer := cart.NewContainer(rest.NewCartClient(clients["cart"]))
	notifContainer := notification.NewContainer(rest.NewNotificationsClient(clients["notifications"]))

	sess.OnSignIn(func(ctx context.Context, u user.User) {
		if err := cartContainer.HandleSignIn(ctx, u.ID); err != nil {
			zctx.From(ctx).Warn("Loading cart failed", zap.Error(err))
		}
		if err := notifContainer.HandleSignIn(ctx, u.ID); err != nil {
			zctx.From(ctx).Warn("Loading notifications failed", zap.Error(err))
		}
	})
	sess.OnSignOut(func() {
		cartContainer.HandleSignOut()
		notifContainer.HandleSignOut()
	})

	return &Storefront{
		Session:       sess,
		Cart:          cartContainer,
		Notifications: notifContainer,
		Products:      rest.NewProductsClient(clients["products"]),
		Categories:    rest.NewCategoriesClient(clients["categories"]),
		Orders:        rest.NewOrdersClient(clients["orders"]),
		Payments:      rest.NewPaymentsClient(clients["payments"]),
		Users:         rest.NewUsersClient(clients["users"]),
	}, nil
}

// CheckoutTotals derives display totals from the currently loaded cart.
func (s *Storefront) CheckoutTotals() checkout.Totals {
	c := s.Cart.Cart()
	if c == nil {
		return checkout.Calculate(nil)
	}
	return checkout.Calculate(c.Items)
}

// Run wires the storefront, probes the configured backends, restores any
// saved session, and fetches an initial snapshot of the catalog. It is the
// entry point for the CLI.
func Run(ctx context.Context, lg *zap.Logger, _ *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("base_url", cfg.BaseURL))

	urls := cfg.BackendURLs()
	for _, result := range diag.CheckBackends(ctx, cfg.RequestTimeout, urls) {
		if result.Healthy() {
			lg.Debug("Backend reachable",
				zap.String("backend", result.Name),
				zap.Duration("latency", result.Latency),
			)
			continue
		}
		lg.Warn("Backend unreachable",
			zap.String("backend", result.Name),
			zap.String("base_url", result.BaseURL),
			zap.Error(result.Err),
		)
	}

	sf, err := New(cfg)
	if err != nil {
		return errors.Wrap(err, "wire storefront")
	}
	sf.Session.SetRedirect(func(path string) {
		lg.Info("Session expired, sign in again", zap.String("path", path))
	})

	restored, err := sf.Session.Restore(ctx)
	if err != nil {
		return errors.Wrap(err, "restore session")
	}

	categories, err := sf.Categories.List(ctx)
	if err != nil {
		return errors.Wrap(err, "fetch categories")
	}
	lg.Info("Catalog taxonomy loaded", zap.Int("categories", len(categories)))

	listing, err := sf.Products.List(ctx, product.ListQuery{Page: 1, Limit: 12})
	if err != nil {
		return errors.Wrap(err, "fetch products")
	}
	lg.Info("Catalog loaded",
		zap.Int("products", len(listing.Products)),
		zap.Int("total", listing.Total),
		zap.Int("total_pages", listing.TotalPages),
	)

	if restored {
		u := sf.Session.User()
		totals := sf.CheckoutTotals()
		lg.Info("Session active",
			zap.String("email", u.Email),
			zap.Int("cart_items", sf.Cart.ItemCount()),
			zap.String("cart_total", totals.Total.StringFixed(2)),
			zap.Int("unread_notifications", sf.Notifications.UnreadCount()),
		)
	} else {
		lg.Info("No saved session")
	}

	return nil
}
