package main

import (
	"encoding/json"
	"fmt"

	"github.com/evomind/evomind-api/internal/billing"
	"github.com/spf13/cobra"
)

const configFlag = "config"

// newRootCmd builds the evomind-api command tree. Running the root command
// without a subcommand serves the API.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "evomind-api",
		Short:        "EvoMind demo API server",
		Long:         `Serves the EvoMind /api/v1 HTTP API backed by an in-memory store.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.PersistentFlags().String(configFlag, "", "path to a YAML config file (default: ./config.yaml if present)")
	root.AddCommand(newServeCmd(), newEstimateCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return err
	}

	cfg, l, err := initializeApp(configPath)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, l)
	if err != nil {
		l.Error("Failed to initialize application", "error", err)
		return err
	}

	return app.Run(cmd.Context())
}

// newEstimateCmd prices a usage profile offline, without starting the server.
func newEstimateCmd() *cobra.Command {
	var usage billing.Usage

	cmd := &cobra.Command{
		Use:     "estimate",
		Short:   "Print the cost estimate for a usage profile",
		Example: `  evomind-api estimate --sources 10 --conflicts 3 --tokens 1000 --rounds 6 --agent-trains 1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			estimate, err := billing.Estimate(usage)
			if err != nil {
				return fmt.Errorf("cannot estimate cost: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(estimate)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&usage.SourceCount, "sources", 0, "number of information sources")
	flags.Float64Var(&usage.ConflictCheckCount, "conflicts", 0, "number of conflict checks")
	flags.Float64Var(&usage.SummaryTokens, "tokens", 0, "summary tokens")
	flags.Float64Var(&usage.DiscussionRounds, "rounds", 0, "discussion rounds")
	flags.Float64Var(&usage.AgentTrainCount, "agent-trains", 0, "agent training runs")

	return cmd
}
