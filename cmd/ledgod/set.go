package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sigreer/ledgod/internal/cntrl"
	"github.com/sigreer/ledgod/internal/db"
	"github.com/sigreer/ledgod/internal/ibpi"
	"github.com/sigreer/ledgod/internal/npem"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <enclosure-path> <pattern>",
	Short: "Set the indicator pattern of an enclosure slot",
	Long: `Set the indicator pattern of an enclosure slot.

Patterns: ` + strings.Join(ibpi.Names(), ", ") + `

The pattern must be advertised as supported by the enclosure, except for
normal and locate_off, which always succeed so other indicators can be
cleared on enclosures without a dedicated OK LED.`,
	Args: cobra.ExactArgs(2),
	Run:  runSet,
}

func init() {
	setCmd.Flags().Bool("json", false, "Output as JSON")
}

func runSet(cmd *cobra.Command, args []string) {
	path := args[0]
	jsonOut, _ := cmd.Flags().GetBool("json")

	pattern, err := ibpi.Parse(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nValid patterns: %s\n", err, strings.Join(ibpi.Names(), ", "))
		os.Exit(1)
	}

	cfg, backend := loadBackend()

	oldState := backend.GetState(path)
	if err := backend.SetState(path, pattern); err != nil {
		resp := StateResponse{Slot: path, State: oldState.String(), Present: backend.IsPresent(path)}
		if errors.Is(err, npem.ErrInvalidState) {
			resp.Error = fmt.Sprintf("enclosure does not support pattern %s", pattern)
		} else {
			resp.Error = err.Error()
		}
		if jsonOut {
			json.NewEncoder(os.Stdout).Encode(resp)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", resp.Error)
		}
		os.Exit(1)
	}

	// Record the transition (best-effort - history must not block control)
	if database, err := db.New(cfg.Database); err == nil {
		database.RecordTransition(path, string(cntrl.TypeKernelNPEM), oldState.String(), pattern.String())
		database.Close()
	}

	resp := StateResponse{Slot: path, State: pattern.String(), Present: true}
	if jsonOut {
		json.NewEncoder(os.Stdout).Encode(resp)
	} else {
		fmt.Printf("%s set to %s\n", path, pattern)
	}
}
