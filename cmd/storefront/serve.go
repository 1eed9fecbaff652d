package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/lainecomfort/storefront/internal/adapter/handler"
	"github.com/lainecomfort/storefront/internal/adapter/notify"
	"github.com/lainecomfort/storefront/internal/adapter/storage"
	"github.com/lainecomfort/storefront/internal/config"
	"github.com/lainecomfort/storefront/internal/core/service"
)

func productCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "product",
		Short: "run the product HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.FromEnv()

			db := mustOpenDB(cfg.Product.DatabaseDSN)
			defer db.Close()

			productStore := storage.NewProductStore(db)
			productService := service.NewProductService(productStore)
			server := handler.NewProductServer(productService, cfg.FrontendOrigin)

			runServer("product", server, cfg.Product.Port)
		},
	}
}

func orderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "run the order HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.FromEnv()

			db := mustOpenDB(cfg.Order.DatabaseDSN)
			defer db.Close()

			orderStore := storage.NewOrderStore(db)
			orderService := service.NewOrderService(orderStore)

			emailSender := notify.NewSMTPSender(notify.SMTPConfig{
				Host:     cfg.Mail.Host,
				Port:     cfg.Mail.Port,
				Username: cfg.Mail.Username,
				Password: cfg.Mail.Password,
				From:     cfg.Mail.From,
			})
			smsSender := notify.NewHTTPSMSSender(notify.SMSConfig{
				MessageURL: cfg.SMS.MessageURL,
				AccountSID: cfg.SMS.AccountSID,
				AuthToken:  cfg.SMS.AuthToken,
				From:       cfg.SMS.From,
			})
			dispatcher := service.NewNotificationDispatcher(emailSender, smsSender, cfg.Mail.To, cfg.SMS.To)

			server := handler.NewOrderServer(orderService, dispatcher)

			runServer("order", server, cfg.Order.Port)
		},
	}
}

type server interface {
	ListenAndServe(port int) error
	Shutdown(ctx context.Context) error
}

func runServer(name string, srv server, port int) {
	go func() {
		log.Printf("%s server listening on :%d", name, port)
		if err := srv.ListenAndServe(port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("%s server error: %v", name, err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("%s server shutdown: %v", name, err)
	}
	log.Printf("%s server stopped", name)
}

func mustOpenDB(dsn string) *sqlx.DB {
	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("failed to open mysql: %v", err)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}
	log.Println("connected to mysql")

	return db
}
