package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sigreer/ledgod/internal/cntrl"
	"github.com/sigreer/ledgod/internal/db"
	"github.com/sigreer/ledgod/internal/ibpi"
	"github.com/sigreer/ledgod/internal/npem"
	"github.com/spf13/cobra"
)

var locateCmd = &cobra.Command{
	Use:   "locate <enclosure-path>",
	Short: "Flash the locate indicator for an enclosure slot",
	Long: `Flash the locate indicator to help find a drive bay physically.

Modes:
  (default)    Turn locate on for --timeout, then turn it off
  --on         Turn locate on and exit (for external app control)
  --off        Turn locate off

Interrupting a timed locate (Ctrl-C) still turns the indicator off.`,
	Args: cobra.ExactArgs(1),
	Run:  runLocate,
}

func init() {
	locateCmd.Flags().DurationP("timeout", "t", 0, "locate duration (default from config, 30s)")
	locateCmd.Flags().Bool("on", false, "Turn locate on and exit immediately")
	locateCmd.Flags().Bool("off", false, "Turn locate off")
}

func runLocate(cmd *cobra.Command, args []string) {
	path := args[0]
	timeout, _ := cmd.Flags().GetDuration("timeout")
	turnOn, _ := cmd.Flags().GetBool("on")
	turnOff, _ := cmd.Flags().GetBool("off")

	cfg, backend := loadBackend()
	if timeout <= 0 {
		timeout = cfg.LocateTimeout()
	}

	record := func(old, new ibpi.Pattern) {
		if database, err := db.New(cfg.Database); err == nil {
			database.RecordTransition(path, string(cntrl.TypeKernelNPEM), old.String(), new.String())
			database.Close()
		}
	}

	fail := func(err error) {
		if errors.Is(err, npem.ErrInvalidState) {
			fmt.Fprintf(os.Stderr, "Error: %s does not support the locate pattern\n", path)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	switch {
	case turnOff:
		old := backend.GetState(path)
		if err := backend.SetState(path, ibpi.PatternLocateOff); err != nil {
			fail(err)
		}
		record(old, ibpi.PatternLocateOff)
		fmt.Printf("Locate OFF for %s\n", path)

	case turnOn:
		old := backend.GetState(path)
		if err := backend.SetState(path, ibpi.PatternLocate); err != nil {
			fail(err)
		}
		record(old, ibpi.PatternLocate)
		fmt.Printf("Locate ON for %s\n", path)

	default:
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		old := backend.GetState(path)
		fmt.Printf("Locate ON for %s (%s, Ctrl-C to stop)\n", path, timeout)
		start := time.Now()
		if err := backend.Locate(ctx, path, timeout); err != nil {
			fail(err)
		}
		record(old, ibpi.PatternLocateOff)
		fmt.Printf("Locate OFF after %s\n", time.Since(start).Round(time.Second))
	}
}
