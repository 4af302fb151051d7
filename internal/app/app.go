package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	adminhandler "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers/admin"
	authhandler "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers/auth"
	carthandler "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers/cart"
	menuhandler "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers/menu"
	orderhandler "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers/order"
	recommendhandler "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/handlers/recommend"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/routes"
	authservice "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service/auth"
	cartservice "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service/cart"
	menuservice "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service/menu"
	orderservice "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service/order"
	recommendservice "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service/recommend"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/config"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/sl"
)

// Storage is everything the app needs from the database layer.
type Storage interface {
	authservice.UserStorage
	menuservice.MenuStorage
	cartservice.CartStorage
	orderservice.OrderStorage
	recommendservice.MenuLister
}

type App struct {
	log     *slog.Logger
	port    int
	storage Storage

	authService *authservice.AuthService
	menuService *menuservice.MenuService

	server *http.Server
}

func New(log *slog.Logger, port int, storage Storage, publisher orderservice.Publisher) *App {
	authSvc := authservice.New(log, storage)
	menuSvc := menuservice.New(log, storage)
	cartSvc := cartservice.New(log, storage)
	recommendSvc := recommendservice.New(log, storage)
	orderSvc := orderservice.New(log, storage, publisher, recommendSvc)

	router := routes.New(
		authSvc,
		authhandler.New(log, authSvc),
		menuhandler.New(log, menuSvc),
		carthandler.New(log, cartSvc),
		orderhandler.New(log, orderSvc),
		adminhandler.New(log, orderSvc),
		recommendhandler.New(log, recommendSvc),
	)

	mux := http.NewServeMux()
	router.Register(mux)

	return &App{
		log:         log,
		port:        port,
		storage:     storage,
		authService: authSvc,
		menuService: menuSvc,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		},
	}
}

// Bootstrap seeds the demo users and menu images before serving.
func (a *App) Bootstrap(ctx context.Context, seed config.SeedConfig) error {
	const op = "app.Bootstrap"

	if seed.DemoUsers {
		if err := a.authService.EnsureDemoUsers(ctx); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if seed.ImagesDir != "" {
		if err := a.seedMenuImages(ctx, seed.ImagesDir); err != nil {
			// missing images are not fatal; the app can serve without them
			a.log.Warn("Failed to seed menu images", sl.Err(err))
		}
	}

	return nil
}

// seedMenuImages loads {id}.jpg files from dir into menu items that have no
// image yet (the layout the imagefetch tool produces).
func (a *App) seedMenuImages(ctx context.Context, dir string) error {
	items, err := a.storage.ListMenu(ctx, "")
	if err != nil {
		return err
	}

	for _, item := range items {
		if item.HasImage {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("%d.jpg", item.Id)))
		if err != nil {
			continue
		}
		if err := a.menuService.SetImage(ctx, item.Id, raw); err != nil {
			a.log.Warn("Failed to set seeded image", "id", item.Id, sl.Err(err))
		}
	}

	return nil
}

func (a *App) MustRun() {
	if err := a.Run(); err != nil {
		panic(err)
	}
}

func (a *App) Run() error {
	const op = "app.Run"

	a.log.Info("http server started", "port", a.port)
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *App) Stop(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}
