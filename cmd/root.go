package cmd

import (
	"os"

	log "github.com/jensneuse/abstractlogger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "graph-vis",
	Short: "graph-vis turns GraphQL introspection data into a type relationship diagram",
	Long: `graph-vis reads a GraphQL introspection document (from a file or a live endpoint),
walks the type references reachable from the query root and emits either the raw
relationship graph or a positioned, styled diagram as JSON.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func logger() log.Logger {
	if !verbose {
		return log.NoopLogger
	}

	zapLogger, err := zap.NewDevelopmentConfig().Build()
	if err != nil {
		panic(err)
	}

	return log.NewZapLogger(zapLogger, log.DebugLevel)
}
