package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"vortex-source/model"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the descriptors of all registered runners",
	Long:  "Print the descriptors of all registered runners",
	RunE:  runInfo,
}

func init() {
	RootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	registry := buildRegistry("")

	infos := make([]model.RunnerInfo, 0)
	for _, name := range registry.Names() {
		infos = append(infos, registry.Get(name).Info())
	}

	jsonBytes, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal runner info: %v", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
