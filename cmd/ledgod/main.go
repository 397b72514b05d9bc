package main

import (
	"fmt"
	"os"

	"github.com/sigreer/ledgod/internal/config"
	"github.com/sigreer/ledgod/internal/logging"
	"github.com/sigreer/ledgod/internal/npem"
	"github.com/sigreer/ledgod/internal/sysfs"
	"github.com/sigreer/ledgod/internal/version"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "ledgod",
	Short: "Drive-bay LED management tool",
	Long: `ledgod manages drive-bay status indicators (locate, fail, rebuild, etc.)
on enclosures that expose Native PCIe Enclosure Management through the
kernel's LED class interface. It discovers capable enclosure ports,
reads and sets indicator patterns, and keeps a transition history.`,
	Version: version.Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/ledgod/config.yaml)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(historyCmd)
}

// loadBackend loads config and builds the NPEM backend over the real
// sysfs with a logger at the configured level.
func loadBackend() (*config.Config, *npem.Backend) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg, npem.New(sysfs.OS{}, logging.New(cfg.LogLevel))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
