package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dubhub/internal/domain/dealership"
	"dubhub/internal/domain/resource"
	"dubhub/internal/domain/task"
	"dubhub/internal/domain/ticket"
	"dubhub/internal/infrastructure/config"
	"dubhub/internal/infrastructure/storage"
	"dubhub/internal/shared/logger"
)

var (
	env   string
	force bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate storage with sample data",
		Long: `Write the built-in sample collections to storage.

Existing collections are left untouched unless --force is given.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite collections that already hold data")

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

	driver, err := storage.New(&cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer driver.Close()

	collections := []struct {
		key  string
		data any
	}{
		{storage.KeyTickets, ticket.Seed()},
		{storage.KeyDealerships, dealership.Seed()},
		{storage.KeyResources, resource.Seed()},
		{storage.KeyTasks, task.Seed()},
	}

	for _, col := range collections {
		_, exists, err := driver.Load(col.key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", col.key, err)
		}
		if exists && !force {
			fmt.Printf("skipping %s: already populated (use --force to overwrite)\n", col.key)
			continue
		}

		raw, err := json.Marshal(col.data)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", col.key, err)
		}
		if err := driver.Save(col.key, raw); err != nil {
			return fmt.Errorf("failed to write %s: %w", col.key, err)
		}
		fmt.Printf("seeded %s\n", col.key)
	}

	return nil
}
