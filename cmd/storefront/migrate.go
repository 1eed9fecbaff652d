package main

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/lainecomfort/storefront/internal/config"
)

const versionTimeFormat = "20060102150405"

func createMigrationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-create [service] [name]",
		Short: "create sql migrations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := time.Now().Format(versionTimeFormat)
			svc, err := serviceConfig(args[0])
			if err != nil {
				return err
			}
			name := args[1]

			up := fmt.Sprintf("%s/%s_%s.up.sql", svc.MigrationDir, version, name)
			down := fmt.Sprintf("%s/%s_%s.down.sql", svc.MigrationDir, version, name)

			if err := os.WriteFile(up, []byte{}, 0644); err != nil {
				return err
			}
			if err := os.WriteFile(down, []byte{}, 0644); err != nil {
				return err
			}

			fmt.Println("Created SQL up script:", up)
			fmt.Println("Created SQL down script:", down)
			return nil
		},
	}
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-up [service]",
		Short: "migrate one service's database all the way up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := serviceConfig(args[0])
			if err != nil {
				return err
			}

			m, err := migrate.New(
				fmt.Sprintf("file://%s", svc.MigrationDir),
				fmt.Sprintf("mysql://%s", svc.DatabaseDSN),
			)
			if err != nil {
				return err
			}

			err = m.Up()
			if err == migrate.ErrNoChange {
				fmt.Println("No change in migration")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Println("Migrated up")
			return nil
		},
	}
}

func serviceConfig(name string) (config.ServiceConfig, error) {
	cfg := config.FromEnv()
	switch name {
	case cfg.Product.Name:
		return cfg.Product, nil
	case cfg.Order.Name:
		return cfg.Order, nil
	}
	return config.ServiceConfig{}, fmt.Errorf("unknown service %q", name)
}
