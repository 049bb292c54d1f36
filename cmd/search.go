package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"vortex-source/model"
)

type searchArgs struct {
	Runner string
	Query  string
	Page   int
}

var sArgs searchArgs

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search a runner's directory and print the results as JSON",
	Long:  "Search a runner's directory and print the results as JSON",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&sArgs.Runner, "runner", "r", "vortexscans", "runner id")
	searchCmd.Flags().StringVarP(&sArgs.Query, "query", "q", "", "search query")
	searchCmd.Flags().IntVarP(&sArgs.Page, "page", "p", 1, "page number")
	RootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	registry := buildRegistry("")
	src := registry.Get(sArgs.Runner)
	if src == nil {
		return fmt.Errorf("unknown runner: %v", sArgs.Runner)
	}

	result, err := src.GetDirectory(cmd.Context(), model.DirectoryRequest{
		Query: sArgs.Query,
		Page:  sArgs.Page,
	})
	if err != nil {
		return fmt.Errorf("failed to search: %v", err)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %v", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
