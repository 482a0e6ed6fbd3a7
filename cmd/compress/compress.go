package compress

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pranav271103/FileZipper/pkg"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	output  string
	quiet   bool
	workers int
)

var CompressCmd = &cobra.Command{
	Use:   "compress [input]",
	Short: "Compress a file using Huffman coding",
	Long:  "Compress a single file into a FileZipper container using static Huffman coding.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := args[0]

		if !quiet {
			fmt.Printf("Compressing %s...\n", input)
		}

		start := time.Now()
		data, err := os.ReadFile(input)
		if err != nil {
			fmt.Printf("Error compressing file %s: %s\n", input, err)
			os.Exit(1)
		}
		readTime := time.Since(start)

		start = time.Now()
		container, err := pkg.CompressWithOptions(data, pkg.CompressOptions{Workers: workers})
		if err != nil {
			fmt.Printf("Error compressing file %s: %s\n", input, err)
			os.Exit(1)
		}
		encoded := pkg.EncodeContainer(container)
		compressTime := time.Since(start)

		out := output
		if out == "" {
			out = defaultOutput(input)
		}

		start = time.Now()
		if err := os.WriteFile(out, encoded, 0644); err != nil {
			fmt.Printf("Error writing output file %s: %s\n", out, err)
			os.Exit(1)
		}
		writeTime := time.Since(start)

		if quiet {
			return
		}

		stats := pkg.ComputeStats(uint64(len(data)), uint64(len(encoded)))
		fmt.Printf("  Reading time: %s\n", readTime)
		fmt.Printf("  Compression time: %s\n", compressTime)
		fmt.Printf("  Writing time: %s\n", writeTime)
		fmt.Println("\nCompression completed successfully!")
		fmt.Printf("  Output file: %s\n", out)
		fmt.Printf("  Original size: %s\n", humanize.Bytes(stats.OriginalSize))
		fmt.Printf("  Compressed size: %s\n", humanize.Bytes(stats.CompressedSize))
		fmt.Printf("  Compression ratio: %.2f:1\n", stats.Ratio)
		fmt.Printf("  Space saved: %.2f%%\n", stats.SpaceSaving)
	},
}

// defaultOutput places the container next to the input, swapping the
// extension for .huff.
func defaultOutput(input string) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), stem+".huff")
}

func init() {
	CompressCmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: <input stem>.huff)")
	CompressCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress output")
	CompressCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of frequency-counting workers (0 = sequential)")
}
