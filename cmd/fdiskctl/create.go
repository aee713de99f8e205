package main

import (
	"github.com/spf13/cobra"

	"github.com/fdiskit/fdiskit/fdisk"
)

func newCreateCmd() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "create <device>",
		Short: "Create a new partition table on a device",
		Long: `Create replaces whatever is on the device with an empty partition
table of the requested kind and writes it to disk. Existing data on the
device becomes unreachable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args[0], label)
		},
	}
	cmd.Flags().StringVar(&label, "label", "gpt", "Label kind: dos, gpt, bsd, sgi or sun")
	return cmd
}

func init() {
	rootCmd.AddCommand(newCreateCmd())
}

func runCreate(device, label string) error {
	kind, err := fdisk.ParseLabelKind(label)
	if err != nil {
		return err
	}

	cxt, err := openContext(device, true)
	if err != nil {
		return err
	}
	defer cxt.Close()

	printVerbose("Creating %s label on %s\n", kind, device)
	if err := cxt.CreateLabel(kind); err != nil {
		return err
	}
	if err := cxt.Write(); err != nil {
		return err
	}
	printInfo("Created %s partition table on %s\n", kind, device)
	return nil
}
