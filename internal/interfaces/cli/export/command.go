package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	dealershipapp "dubhub/internal/application/dealership"
	exportapp "dubhub/internal/application/export"
	resourceapp "dubhub/internal/application/resource"
	taskapp "dubhub/internal/application/task"
	ticketapp "dubhub/internal/application/ticket"
	"dubhub/internal/infrastructure/config"
	"dubhub/internal/infrastructure/storage"
	"dubhub/internal/shared/logger"
)

var (
	env    string
	format string
	outDir string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [entities]",
		Short: "Export collections to CSV or XLSX files",
		Long: `Export stored collections to dated spreadsheet files.

Entities may be any of: tickets, dealerships, resources, tasks.
With no arguments all four collections are exported.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: csv or xlsx (default from config)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from config)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if format != "" {
		cfg.Export.Format = format
	}
	if outDir != "" {
		cfg.Export.Dir = outDir
	}
	switch cfg.Export.Format {
	case exportapp.FormatCSV, exportapp.FormatXLSX:
	default:
		return fmt.Errorf("unsupported export format: %s", cfg.Export.Format)
	}

	entities := args
	if len(entities) == 0 {
		entities = []string{"tickets", "dealerships", "resources", "tasks"}
	}

	driver, err := storage.New(&cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer driver.Close()

	log := logger.NewLogger()
	exporter := exportapp.NewService(&cfg.Export, log)

	for _, entity := range entities {
		table, err := buildTable(strings.ToLower(entity), driver, log)
		if err != nil {
			return err
		}

		path, err := exporter.WriteFile(table, cfg.Export.Format)
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", entity, err)
		}
		fmt.Printf("exported %d %s to %s\n", len(table.Rows), entity, path)
	}

	return nil
}

func buildTable(entity string, driver storage.Driver, log logger.Interface) (exportapp.Table, error) {
	switch entity {
	case "tickets":
		svc, err := ticketapp.NewService(driver, log)
		if err != nil {
			return exportapp.Table{}, err
		}
		return exportapp.TicketTable(svc.All()), nil
	case "dealerships":
		svc, err := dealershipapp.NewService(driver, log)
		if err != nil {
			return exportapp.Table{}, err
		}
		return exportapp.DealershipTable(svc.All()), nil
	case "resources":
		svc, err := resourceapp.NewService(driver, log)
		if err != nil {
			return exportapp.Table{}, err
		}
		return exportapp.ResourceTable(svc.All()), nil
	case "tasks":
		svc, err := taskapp.NewService(driver, log)
		if err != nil {
			return exportapp.Table{}, err
		}
		return exportapp.TaskTable(svc.All()), nil
	default:
		return exportapp.Table{}, fmt.Errorf("unknown entity: %s", entity)
	}
}
