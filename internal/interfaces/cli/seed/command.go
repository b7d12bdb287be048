package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"atgs/internal/infrastructure/config"
	"atgs/internal/infrastructure/database"
	"atgs/internal/infrastructure/persistence/seeds"
	"atgs/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with development data",
		Long:  `Populate an empty database with a fixed user roster and randomized test tickets. Does nothing when data already exists.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	runner := seeds.NewRunner(database.Get(), rng, logger.NewLogger())

	if err := runner.Run(context.Background()); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	logger.Info("seeding complete")
	return nil
}
