package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bigcommerce-carecloud-sync/internal/client"
	"bigcommerce-carecloud-sync/internal/config"
	"bigcommerce-carecloud-sync/internal/repository"
	"bigcommerce-carecloud-sync/internal/server"
	"bigcommerce-carecloud-sync/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitSqliteClient(cfg.DatabasePath)
	bigcommerceClient := client.NewBigCommerceClient(&cfg.BigCommerce)
	carecloudClient := client.NewCareCloudClient(&cfg.CareCloud)

	tokenStore := repository.NewFileTokenStore(cfg.TokenFile)
	syncEventRepo := repository.NewSyncEventRepository(db)

	tokenProvider := service.NewTokenProvider(tokenStore, carecloudClient)
	customerService := service.NewCustomerService(
		bigcommerceClient,
		carecloudClient,
		tokenProvider,
		cfg.CareCloud.CustomerSourceID,
	)
	orderService := service.NewOrderService(
		bigcommerceClient,
		carecloudClient,
		tokenProvider,
		&cfg.CareCloud,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(customerService, orderService, syncEventRepo)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
