package inspect

import (
	"fmt"
	"os"

	"github.com/pranav271103/FileZipper/pkg"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var InspectCmd = &cobra.Command{
	Use:   "inspect [container]",
	Short: "View a FileZipper container",
	Long:  "Inspect the header of a FileZipper container without decompressing it.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := args[0]
		quiet, _ := cmd.Flags().GetBool("quiet")

		f, err := os.Open(input)
		if err != nil {
			fmt.Printf("Error inspecting container %s: %s\n", input, err)
			os.Exit(1)
		}
		defer f.Close()

		c, err := pkg.DecodeContainer(f)
		if err != nil {
			fmt.Printf("Error inspecting container %s: %s\n", input, err)
			os.Exit(1)
		}

		fmt.Printf("Container %s:\n", input)
		fmt.Printf("\tFormat version: %d\n", pkg.FormatVersion)
		fmt.Printf("\tOriginal size: %s (%d bytes)\n", humanize.Bytes(c.OriginalSize), c.OriginalSize)
		fmt.Printf("\tBody size: %d bytes\n", len(c.Body))
		fmt.Printf("\tPad bits: %d\n", c.PadBits)
		fmt.Printf("\tAlphabet size: %d\n", c.Freqs.Distinct())
		fmt.Printf("\tChecksum: %016x\n", c.Checksum)

		if quiet {
			return
		}

		fmt.Println("\tFrequencies:")
		for _, sym := range c.Freqs.Symbols() {
			fmt.Printf("\t\t0x%02x: %d\n", sym, c.Freqs[sym])
		}
	},
}

func init() {
	InspectCmd.Flags().BoolP("quiet", "Q", false, "Suppress the per-symbol frequency listing")
}
