package cmd

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/Atwolf/graph-vis/pkg/diagram"
	"github.com/Atwolf/graph-vis/pkg/introspection"
	"github.com/Atwolf/graph-vis/pkg/typegraph"
)

var (
	extractOutFile   string
	extractGraphOnly bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:     "extract <introspection.json>",
	Short:   "extract builds a diagram from an introspection JSON file",
	Example: "graph-vis extract schema.json > diagram.json",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		doc, err := introspection.ParseJSON(bytes.NewReader(data))
		if err != nil {
			return err
		}

		graph, err := typegraph.NewExtractor(typegraph.WithLogger(logger())).Extract(doc)
		if err != nil {
			return err
		}

		var out interface{} = diagram.Project(graph, diagram.DefaultConfig())
		if extractGraphOnly {
			out = graph
		}

		return writeJSON(cmd, extractOutFile, out)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractOutFile, "out", "o", "", "write output to file instead of stdout")
	extractCmd.Flags().BoolVar(&extractGraphOnly, "graph", false, "emit the raw type graph instead of the positioned diagram")
}

func writeJSON(cmd *cobra.Command, outFile string, value interface{}) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	encoded = append(encoded, '\n')

	if outFile != "" {
		return os.WriteFile(outFile, encoded, 0644)
	}
	_, err = cmd.OutOrStdout().Write(encoded)
	return err
}
