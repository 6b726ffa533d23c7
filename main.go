package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"api_vendas/api"
	"api_vendas/internal/auth"
	"api_vendas/internal/config"
	"api_vendas/internal/customers"
	"api_vendas/internal/products"
	"api_vendas/internal/sales"
	"api_vendas/internal/storage"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(fmt.Errorf("error loading configuration: %v", err))
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Errorf("error creating logger: %v", err))
	}
	defer logger.Sync()

	var (
		customersStorage customers.Storage
		productsStorage  products.Storage
		salesStorage     sales.Storage
		usersStorage     auth.Storage
		txManager        storage.TxManager
	)

	switch cfg.Storage.Driver {
	case "postgres":
		db, err := storage.NewConnection(
			cfg.Storage.Host, cfg.Storage.Port,
			cfg.Storage.User, cfg.Storage.Password, cfg.Storage.Name,
		)
		if err != nil {
			logger.Fatal("failed to connect to postgres", zap.Error(err))
		}
		defer db.Close()

		customersStorage = customers.NewPGStorage(db)
		productsStorage = products.NewPGStorage(db)
		salesStorage = sales.NewPGStorage(db)
		usersStorage = auth.NewPGStorage(db)
		txManager = storage.NewSQLTxManager(db)
		logger.Info("using postgres storage", zap.String("db", cfg.Storage.Name))
	default:
		mem := storage.NewMemoryDB()
		customersLocal := customers.NewLocalStorage(mem)
		productsLocal := products.NewLocalStorage(mem)

		customersStorage = customersLocal
		productsStorage = productsLocal
		salesStorage = sales.NewLocalStorage(mem, productsLocal, customersLocal)
		usersStorage = auth.NewLocalStorage(mem)
		txManager = storage.NewMemoryTxManager(mem)
		logger.Info("using in-memory storage")
	}

	svcs := api.Services{
		Sales:     sales.NewService(salesStorage, txManager, logger, cfg.Ledger.StrictStock),
		Products:  products.NewService(productsStorage, logger),
		Customers: customers.NewService(customersStorage, logger),
		Auth:      auth.NewService(usersStorage, logger, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
	}

	r := gin.Default()
	api.InitRoutes(r, logger, svcs)

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
