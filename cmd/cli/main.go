package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/lockerdesk/cmd/cli/commands"
	"github.com/jakechorley/lockerdesk/internal/config"
	"github.com/jakechorley/lockerdesk/pkg/clients/lockerapi"
	"github.com/jakechorley/lockerdesk/pkg/core/services"
	"github.com/jakechorley/lockerdesk/pkg/core/store"
	"github.com/jakechorley/lockerdesk/pkg/utils/logging"
)

var (
	env string
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Lockerdesk CLI - Track lockers and who they are assigned to",
		Long:  `A CLI tool for registering lockers and people and assigning available lockers, backed by the locker administration API.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.ViewCmd(app))
	rootCmd.AddCommand(commands.ListLockersCmd(app))
	rootCmd.AddCommand(commands.ListPeopleCmd(app))
	rootCmd.AddCommand(commands.AddLockerCmd(app))
	rootCmd.AddCommand(commands.AddPersonCmd(app))
	rootCmd.AddCommand(commands.AssignCmd(app))
	rootCmd.AddCommand(commands.RefreshCmd(app))
	rootCmd.AddCommand(commands.ExportCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, gateway and the session store, then does
// the startup fetch. A failed fetch aborts the command with the error.
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded", zap.String("api_base_url", app.Cfg.APIBaseURL))

	app.Gateway = lockerapi.New(app.Cfg.APIBaseURL, app.Logger)
	app.Store = store.New()

	if _, err := services.RefreshState(app.Ctx, app.Gateway, app.Store, app.Logger); err != nil {
		return fmt.Errorf("initial fetch failed: %w", err)
	}

	return nil
}
