package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arx-os/georesolve/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "georesolve",
		Short: "Spatial constraint resolution engine for floor-plan geometry",
	}

	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(optimizeCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveCmd() *cobra.Command {
	var maxIterations int
	var tolerance float64

	cmd := &cobra.Command{
		Use:   "resolve [project-path]",
		Short: "Resolve a placement plan and emit a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runResolve(args[0], maxIterations, tolerance)
		},
	}

	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "override the plan's iteration cap")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "override the plan's convergence tolerance")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a placement plan without resolving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func optimizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "optimize [project-path]",
		Short: "Resolve a plan, then optimize object placement stochastically",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runOptimize(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the HTTP API server",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			srv := server.New(args[0], port)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
