package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fdiskit/fdiskit/fdisk"
)

func newListCmd() *cobra.Command {
	var freespace bool

	cmd := &cobra.Command{
		Use:   "list <device>",
		Short: "List the partitions on a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args[0], freespace)
		},
	}
	cmd.Flags().BoolVar(&freespace, "free", false, "List free space instead of partitions")
	return cmd
}

func init() {
	rootCmd.AddCommand(newListCmd())
}

func runList(device string, freespace bool) error {
	cxt, err := openContext(device, false)
	if err != nil {
		return err
	}
	defer cxt.Close()

	if err := printDiskSummary(cxt); err != nil {
		return err
	}
	if !cxt.HasLabel() {
		printInfo("Disk has no recognized partition table.\n")
		return nil
	}

	var table *fdisk.Table
	if freespace {
		table, err = cxt.Freespaces()
	} else {
		table, err = cxt.Partitions()
	}
	if err != nil {
		return err
	}
	return printTable(cxt, table, freespace)
}

func printDiskSummary(cxt *fdisk.Context) error {
	size, err := cxt.SizeInBytes()
	if err != nil {
		return err
	}
	sectors, err := cxt.SectorCount()
	if err != nil {
		return err
	}
	printInfo("Disk %s: %d bytes, %d sectors\n", cxt.DeviceName(), size, sectors)

	if model, ok := cxt.DeviceModel(); ok {
		printInfo("Disk model: %s\n", model)
	}
	if cxt.HasLabel() {
		lb, err := cxt.Label()
		if err != nil {
			return err
		}
		name, err := lb.Name()
		if err != nil {
			return err
		}
		printInfo("Disklabel type: %s\n", name)
		if id, err := cxt.DiskLabelID(); err == nil && id != "" {
			printInfo("Disk identifier: %s\n", id)
		}
	}
	return nil
}

// printTable renders one row per entry using the library's field
// formatter so size units follow the configured display settings.
func printTable(cxt *fdisk.Context, table *fdisk.Table, freespace bool) error {
	if table.IsEmpty() {
		return nil
	}

	fields := []fdisk.FieldID{
		fdisk.FieldDevice, fdisk.FieldStart, fdisk.FieldEnd,
		fdisk.FieldSectors, fdisk.FieldSize, fdisk.FieldType, fdisk.FieldName,
	}
	header := "Device\tStart\tEnd\tSectors\tSize\tType\tName"
	if freespace {
		fields = []fdisk.FieldID{
			fdisk.FieldStart, fdisk.FieldEnd, fdisk.FieldSectors, fdisk.FieldSize,
		}
		header = "Start\tEnd\tSectors\tSize"
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)

	it, err := table.Iterate(fdisk.Forward)
	if err != nil {
		return err
	}
	defer it.Free()
	for {
		pa, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		for i, id := range fields {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			s, err := cxt.PartitionToString(pa, id)
			if err != nil {
				s = "-"
			}
			fmt.Fprint(w, s)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
