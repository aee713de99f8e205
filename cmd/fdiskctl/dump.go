package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var (
		output   string
		jsonMode bool
	)

	cmd := &cobra.Command{
		Use:   "dump <device>",
		Short: "Dump the partition table as an sfdisk-compatible script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0], output, jsonMode)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the script to a file instead of stdout")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Emit JSON instead of sfdisk syntax")
	return cmd
}

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func runDump(device, output string, jsonMode bool) error {
	cxt, err := openContext(device, false)
	if err != nil {
		return err
	}
	defer cxt.Close()

	dp, err := cxt.NewScript()
	if err != nil {
		return err
	}
	if err := dp.Compose(); err != nil {
		return err
	}
	if jsonMode {
		if err := dp.EnableJSON(true); err != nil {
			return err
		}
	}

	if output != "" {
		return dp.WriteFile(output)
	}

	// The native writer only targets stdio streams, so stdout goes
	// through a temporary file.
	tmp := filepath.Join(os.TempDir(), fmt.Sprintf("fdiskctl-dump-%d", os.Getpid()))
	defer os.Remove(tmp)
	if err := dp.WriteFile(tmp); err != nil {
		return err
	}
	body, err := os.ReadFile(tmp)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(body)
	return err
}
