package main

import (
	"github.com/spf13/cobra"
)

func newApplyCmd() *cobra.Command {
	var headersOnly bool

	cmd := &cobra.Command{
		Use:   "apply <device> <script>",
		Short: "Apply an sfdisk script to a device",
		Long: `Apply reads an sfdisk-compatible script file, replaces the device's
partition table with its contents and writes the result to disk.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(args[0], args[1], headersOnly)
		},
	}
	cmd.Flags().BoolVar(&headersOnly, "headers-only", false,
		"Apply only the script headers (label, identifier), not the partitions")
	return cmd
}

func init() {
	rootCmd.AddCommand(newApplyCmd())
}

func runApply(device, scriptPath string, headersOnly bool) error {
	cxt, err := openContext(device, true)
	if err != nil {
		return err
	}
	defer cxt.Close()

	dp, err := cxt.NewScriptFromFile(scriptPath)
	if err != nil {
		return err
	}

	if headersOnly {
		err = cxt.ApplyScriptHeaders(dp)
	} else {
		err = cxt.ApplyScript(dp)
	}
	if err != nil {
		return err
	}
	if err := cxt.Write(); err != nil {
		return err
	}
	printInfo("Applied %s to %s\n", scriptPath, device)
	return nil
}
