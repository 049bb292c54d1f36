package cmd

import (
	"github.com/spf13/cobra"

	"vortex-source/prefs"
	"vortex-source/source"
	"vortex-source/source/vortex"
)

var RootCmd = &cobra.Command{
	Use:   "vortex-source",
	Short: "Content source adapter for VortexScans",
	Long:  "Content source adapter for VortexScans: browse, search and read series through a uniform runner contract",
}

// buildRegistry wires every known runner. redisAddr empty means
// preferences stay in process memory.
func buildRegistry(redisAddr string) *source.Registry {
	registry := source.NewRegistry()

	var store prefs.Store = prefs.NewMemoryStore()
	if redisAddr != "" {
		store = prefs.NewRedisStore(redisAddr, "vortexscans")
	}
	registry.Register("vortexscans", vortex.New(vortex.WithPreferenceStore(store)))

	return registry
}
