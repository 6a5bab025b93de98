package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Atwolf/graph-vis/pkg/client"
	"github.com/Atwolf/graph-vis/pkg/diagram"
	"github.com/Atwolf/graph-vis/pkg/typegraph"
)

var (
	fetchOutFile   string
	fetchGraphOnly bool
	fetchRaw       bool
	fetchHeaders   []string
	fetchTimeout   time.Duration
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:     "fetch <endpoint-url>",
	Short:   "fetch introspects a live GraphQL endpoint and builds a diagram",
	Example: `graph-vis fetch https://api.example.com/graphql -H "Authorization: Bearer ..." > diagram.json`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		options := []client.Option{
			client.WithLogger(logger()),
		}
		for _, header := range fetchHeaders {
			key, value, found := strings.Cut(header, ":")
			if !found {
				return fmt.Errorf("fetch: invalid header %q, expected \"Key: Value\"", header)
			}
			options = append(options, client.WithHeader(strings.TrimSpace(key), strings.TrimSpace(value)))
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
		defer cancel()

		doc, err := client.New(args[0], options...).FetchIntrospection(ctx)
		if err != nil {
			return err
		}

		if fetchRaw {
			return writeJSON(cmd, fetchOutFile, doc)
		}

		graph, err := typegraph.NewExtractor(typegraph.WithLogger(logger())).Extract(doc)
		if err != nil {
			return err
		}

		var out interface{} = diagram.Project(graph, diagram.DefaultConfig())
		if fetchGraphOnly {
			out = graph
		}

		return writeJSON(cmd, fetchOutFile, out)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVarP(&fetchOutFile, "out", "o", "", "write output to file instead of stdout")
	fetchCmd.Flags().BoolVar(&fetchGraphOnly, "graph", false, "emit the raw type graph instead of the positioned diagram")
	fetchCmd.Flags().BoolVar(&fetchRaw, "raw", false, "dump the introspection document without building a graph")
	fetchCmd.Flags().StringArrayVarP(&fetchHeaders, "header", "H", nil, "additional request header, repeatable (\"Key: Value\")")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 30*time.Second, "request timeout")
}
