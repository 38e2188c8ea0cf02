package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/bhajan-roster.net/internal/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export YYYY-MM-DD",
	Short: "Print the shareable roster of a session",
	Args:  cobra.ExactArgs(1),
	RunE:  export,
}

func export(cmd *cobra.Command, args []string) error {
	date, err := domain.ParseSessionDate(args[0])
	if err != nil {
		return err
	}

	a, err := buildApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	text, err := a.sessionService.Export(cmd.Context(), date)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), text)
	return err
}
