package decompress

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pranav271103/FileZipper/pkg"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	output string
	quiet  bool
)

var DecompressCmd = &cobra.Command{
	Use:   "decompress [input]",
	Short: "Decompress a FileZipper container",
	Long:  "Decompress a FileZipper container back into the exact original file.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := args[0]

		if !quiet {
			fmt.Printf("Decompressing %s...\n", input)
		}

		start := time.Now()
		f, err := os.Open(input)
		if err != nil {
			fmt.Printf("Error decompressing file %s: %s\n", input, err)
			os.Exit(1)
		}
		container, err := pkg.DecodeContainer(f)
		f.Close()
		if err != nil {
			fmt.Printf("Error decompressing file %s: %s\n", input, err)
			os.Exit(1)
		}
		readTime := time.Since(start)

		start = time.Now()
		data, err := pkg.Decompress(container)
		if err != nil {
			fmt.Printf("Error decompressing file %s: %s\n", input, err)
			os.Exit(1)
		}
		decompressTime := time.Since(start)

		out := output
		if out == "" {
			out = defaultOutput(input)
		}

		start = time.Now()
		if err := os.WriteFile(out, data, 0644); err != nil {
			fmt.Printf("Error writing output file %s: %s\n", out, err)
			os.Exit(1)
		}
		writeTime := time.Since(start)

		if quiet {
			return
		}

		fmt.Printf("  Reading time: %s\n", readTime)
		fmt.Printf("  Decompression time: %s\n", decompressTime)
		fmt.Printf("  Writing time: %s\n", writeTime)
		fmt.Println("\nDecompression completed successfully!")
		fmt.Printf("  Output file: %s\n", out)
		fmt.Printf("  Decompressed size: %s\n", humanize.Bytes(uint64(len(data))))
	},
}

// defaultOutput strips a .huff extension, or appends .decompressed when the
// input is not named *.huff.
func defaultOutput(input string) string {
	if strings.HasSuffix(input, ".huff") {
		return strings.TrimSuffix(input, ".huff")
	}
	return input + ".decompressed"
}

func init() {
	DecompressCmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: input without .huff)")
	DecompressCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress output")
}
