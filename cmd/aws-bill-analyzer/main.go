package main

import (
	"fmt"
	"os"

	"github.com/diillson/aws-bill-analyzer-go/internal/adapter/driven/catalog"
	"github.com/diillson/aws-bill-analyzer-go/internal/adapter/driven/config"
	"github.com/diillson/aws-bill-analyzer-go/internal/adapter/driven/export"
	"github.com/diillson/aws-bill-analyzer-go/internal/adapter/driving/cli"
	"github.com/diillson/aws-bill-analyzer-go/internal/application/usecase"
	"github.com/diillson/aws-bill-analyzer-go/pkg/console"
	"github.com/diillson/aws-bill-analyzer-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	billingRepo := catalog.NewCatalogRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	billingUseCase := usecase.NewBillingUseCase(
		billingRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetBillingUseCase(billingUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
