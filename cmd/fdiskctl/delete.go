package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "delete <device> [partno...]",
		Short: "Delete partitions from a device",
		Long: `Delete removes the named partitions (1-based numbers, as printed by
list) and writes the table. With --all every partition is removed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args[0], args[1:], all)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Delete every partition")
	return cmd
}

func init() {
	rootCmd.AddCommand(newDeleteCmd())
}

func runDelete(device string, nums []string, all bool) error {
	if !all && len(nums) == 0 {
		return fmt.Errorf("delete needs partition numbers or --all")
	}

	cxt, err := openContext(device, true)
	if err != nil {
		return err
	}
	defer cxt.Close()

	if all {
		if err := cxt.DeleteAllPartitions(); err != nil {
			return err
		}
	} else {
		for _, s := range nums {
			n, err := strconv.ParseUint(s, 10, 32)
			if err != nil || n == 0 {
				return fmt.Errorf("bad partition number %q", s)
			}
			if err := cxt.DeletePartition(uint(n - 1)); err != nil {
				return err
			}
			printVerbose("Deleted partition %d\n", n)
		}
	}
	return cxt.Write()
}
