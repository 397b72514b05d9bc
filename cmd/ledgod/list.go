package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/sigreer/ledgod/internal/cntrl"
	"github.com/sigreer/ledgod/internal/slot"
	"github.com/sigreer/ledgod/internal/sysfs"
	"github.com/spf13/cobra"
)

// SlotInfo is the JSON row for one discovered slot
type SlotInfo struct {
	Slot   string `json:"slot"`
	Type   string `json:"type"`
	Device string `json:"device,omitempty"`
	Size   string `json:"size,omitempty"`
	State  string `json:"state"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered enclosure slots and their indicator state",
	Run: func(cmd *cobra.Command, args []string) {
		jsonOut, _ := cmd.Flags().GetBool("json")
		cfg, backend := loadBackend()

		devices := cntrl.Discover(cfg.ScanRoots, cfg.Enclosures, cntrl.TypeKernelNPEM, backend.IsPresent)

		var slots []*slot.Slot
		for _, d := range devices {
			if s := backend.NewSlot(&d); s != nil {
				slots = append(slots, s)
			}
		}

		rows := make([]SlotInfo, 0, len(slots))
		for _, s := range slots {
			info := SlotInfo{
				Slot:   s.ID,
				Type:   string(s.Type),
				Device: s.BlockDevice,
				State:  s.GetState().String(),
			}
			if s.BlockDevice != "" {
				if bytes := sysfs.DeviceSize(s.BlockDevice); bytes > 0 {
					info.Size = humanize.IBytes(uint64(bytes))
				}
			}
			rows = append(rows, info)
		}

		if jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			enc.Encode(rows)
			return
		}

		if len(rows) == 0 {
			fmt.Println("No NPEM-capable enclosures found.")
			return
		}

		fmt.Printf("%-44s %-12s %-10s %-10s %s\n", "SLOT", "TYPE", "DEVICE", "SIZE", "STATE")
		for _, r := range rows {
			device := r.Device
			if device == "" {
				device = "-"
			}
			size := r.Size
			if size == "" {
				size = "-"
			}
			fmt.Printf("%-44s %-12s %-10s %-10s %s\n", r.Slot, r.Type, device, size, colorState(r.State))
		}
	},
}

func init() {
	listCmd.Flags().Bool("json", false, "Output as JSON")
}

// colorState wraps a state name in ANSI color when stdout is a terminal
func colorState(state string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return state
	}
	switch state {
	case "normal", "oneshot_normal":
		return "\033[32m" + state + "\033[0m"
	case "locate":
		return "\033[36m" + state + "\033[0m"
	case "rebuild", "pfa", "degraded", "hotspare":
		return "\033[33m" + state + "\033[0m"
	case "failed_drive", "failed_array":
		return "\033[31m" + state + "\033[0m"
	default:
		return state
	}
}
