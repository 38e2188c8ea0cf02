package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	logger2 "gitlab.com/bhajan-roster.net/internal/global/logger"
)

var envName string

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Weekly bhajan session slot roster",
	Long: `roster accepts one song per deity slot for each weekly session and
serves the planner list in performance order.

Configuration comes from the environment; --env NAME loads NAME.env first.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return InitReader(envName)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envName, "env", "", "load variables from <env>.env before starting")
	rootCmd.AddCommand(serveCmd, migrateCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger2.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// InitReader loads <environment>.env when an environment name is given.
func InitReader(environment string) error {
	if environment == "" {
		return nil
	}
	if err := godotenv.Load(environment + ".env"); err != nil {
		return fmt.Errorf("error loading %s.env file: %w", environment, err)
	}
	return nil
}
