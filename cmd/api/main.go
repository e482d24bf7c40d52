package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventaripro/internal/application/inventory"
	"github.com/jhoicas/inventaripro/internal/application/query"
	"github.com/jhoicas/inventaripro/internal/domain/repository"
	"github.com/jhoicas/inventaripro/internal/infrastructure/jsonfile"
	"github.com/jhoicas/inventaripro/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/inventaripro/internal/interfaces/http"
	"github.com/jhoicas/inventaripro/internal/store"
	"github.com/jhoicas/inventaripro/pkg/config"
	"github.com/jhoicas/inventaripro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	var snapshots repository.SnapshotStore
	switch cfg.Storage.Driver {
	case "json":
		snapshots, err = jsonfile.NewStore(cfg.Storage.Path)
	default:
		snapshots, err = sqlite.NewStore(cfg.Storage.Path)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento local")
	}
	defer func() { _ = snapshots.Close() }()

	products, err := snapshots.LoadProducts()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar productos")
	}
	movements, err := snapshots.LoadMovements()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar movimientos")
	}
	log.Info().
		Int("productos", len(products)).
		Int("movimientos", len(movements)).
		Msg("estado restaurado")

	inventoryStore := store.NewInventoryStore(products)
	ledger := store.NewLedger(movements)

	// Un único mutex serializa motor y consultas sobre el mismo estado.
	var mu sync.Mutex
	engine := inventory.NewMovementEngine(
		&mu, inventoryStore, ledger, snapshots,
		inventory.NewLogNotifier(log.Component("inventario")), cfg.Inventory.DefaultActor,
	)
	queries := query.NewService(&mu, inventoryStore, ledger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Engine:  engine,
		Queries: queries,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
