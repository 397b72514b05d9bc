package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// StateResponse is the JSON response for get and set
type StateResponse struct {
	Slot    string `json:"slot"`
	State   string `json:"state"`
	Present bool   `json:"present"`
	Error   string `json:"error,omitempty"`
}

var getCmd = &cobra.Command{
	Use:   "get <enclosure-path>",
	Short: "Read the current indicator pattern of an enclosure slot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		jsonOut, _ := cmd.Flags().GetBool("json")
		_, backend := loadBackend()

		resp := StateResponse{
			Slot:    path,
			State:   backend.GetState(path).String(),
			Present: backend.IsPresent(path),
		}

		if jsonOut {
			json.NewEncoder(os.Stdout).Encode(resp)
			return
		}

		if !resp.Present {
			fmt.Fprintf(os.Stderr, "Warning: %s does not expose NPEM LED nodes\n", path)
		}
		fmt.Println(resp.State)
	},
}

func init() {
	getCmd.Flags().Bool("json", false, "Output as JSON")
}
