package main

import (
	"github.com/spf13/cobra"

	"github.com/fdiskit/fdiskit/fdisk"
)

func newAddCmd() *cobra.Command {
	var (
		size   uint64
		start  uint64
		number uint
		ptype  string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "add <device>",
		Short: "Add a partition to a device",
		Long: `Add appends one partition to the device's existing partition table
and writes the result. Any field left unset follows the label's default:
next free number, first free start sector, remaining space.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := fdisk.NewPartitionBuilder()
			if cmd.Flags().Changed("size") {
				b.SizeInSectors(size)
			}
			if cmd.Flags().Changed("start") {
				b.StartSector(start)
			}
			if cmd.Flags().Changed("number") {
				b.Number(number)
			}
			if name != "" {
				b.Name(name)
			}
			return runAdd(args[0], b, ptype)
		},
	}
	cmd.Flags().Uint64Var(&size, "size", 0, "Partition size in sectors (default rest of disk)")
	cmd.Flags().Uint64Var(&start, "start", 0, "First sector (default first free)")
	cmd.Flags().UintVarP(&number, "number", "n", 0, "Partition number (default next free)")
	cmd.Flags().StringVarP(&ptype, "type", "t", "", "Partition type: hex code, GUID or alias")
	cmd.Flags().StringVar(&name, "name", "", "Partition name (GPT only)")
	return cmd
}

func init() {
	rootCmd.AddCommand(newAddCmd())
}

func runAdd(device string, b *fdisk.PartitionBuilder, ptype string) error {
	cxt, err := openContext(device, true)
	if err != nil {
		return err
	}
	defer cxt.Close()

	if ptype != "" {
		lb, err := cxt.Label()
		if err != nil {
			return err
		}
		t, err := lb.ParsePartType(ptype)
		if err != nil {
			return err
		}
		b.Type(t)
	}

	pa, err := b.Build(cxt)
	if err != nil {
		return err
	}
	partno, err := cxt.AddPartition(pa)
	if err != nil {
		return err
	}
	if err := cxt.Write(); err != nil {
		return err
	}
	printInfo("Created partition %d on %s\n", partno+1, device)
	return nil
}
