// Package cmd assembles the application: config, logger, persistence,
// services, controllers, and the HTTP server lifecycle.
package cmd

import (
	"context"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"shopapi/api"
	"shopapi/api/health"
	apiorder "shopapi/api/order"
	apipayment "shopapi/api/payment"
	apiproduct "shopapi/api/product"
	apiuser "shopapi/api/user"
	orderapp "shopapi/application/order"
	paymentapp "shopapi/application/payment"
	productapp "shopapi/application/product"
	userapp "shopapi/application/user"
	"shopapi/config"
	orderdomain "shopapi/domain/order"
	productdomain "shopapi/domain/product"
	userdomain "shopapi/domain/user"
	infrapayment "shopapi/infrastructure/payment"
	"shopapi/infrastructure/persistence/memory"
	"shopapi/infrastructure/persistence/mongodb"
	"shopapi/pkg/logger"
)

// App is the assembled application.
type App struct {
	cfg    *config.Config
	server *http.Server
	client *mongo.Client // nil with the memory store
}

// NewApp builds the application from config.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	var (
		products productdomain.Repository
		orders   orderdomain.Repository
		users    userdomain.Repository
		tx       orderapp.Transactor
		client   *mongo.Client
		pinger   health.Pinger
	)

	switch cfg.Database.Type {
	case "memory":
		logger.Info("using in-memory persistence")
		products = memory.NewProductRepository()
		orders = memory.NewOrderRepository()
		users = memory.NewUserRepository()
		tx = memory.NewTransactor()
	default:
		var err error
		client, err = mongodb.Connect(ctx, &cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}

		db := client.Database(cfg.Database.Database)
		products = mongodb.NewProductRepository(db)
		orders = mongodb.NewOrderRepository(db)
		users = mongodb.NewUserRepository(db)
		tx = mongodb.NewTransactor(client)
		pinger = health.PingerFunc(func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		})
	}

	productService := productapp.NewService(products,
		cfg.Catalog.ResultsPerPage, cfg.Catalog.AdminResultsPerPage)
	orderService := orderapp.NewService(orders, products, tx, cfg.Fulfillment.Transactional)
	userService := userapp.NewService(users)
	paymentService := paymentapp.NewService(infrapayment.NewProviderGateway(cfg.Payment))

	router := api.NewRouter(cfg,
		health.NewController(cfg, pinger),
		apiproduct.NewController(productService),
		apiorder.NewController(orderService),
		apiuser.NewController(userService),
		apipayment.NewController(paymentService),
	)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &App{cfg: cfg, server: server, client: client}, nil
}

// Run serves HTTP until the server is shut down.
func (a *App) Run() error {
	logger.Info("server starting",
		zap.String("addr", a.server.Addr),
		zap.String("env", a.cfg.App.Env))

	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes the store connection.
func (a *App) Shutdown(ctx context.Context) error {
	logger.Info("server shutting down")

	if err := a.server.Shutdown(ctx); err != nil {
		return err
	}
	if a.client != nil {
		if err := a.client.Disconnect(ctx); err != nil {
			return err
		}
	}
	return nil
}
