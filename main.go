package main

import (
	compress "github.com/pranav271103/FileZipper/cmd/compress"
	decompress "github.com/pranav271103/FileZipper/cmd/decompress"
	inspect "github.com/pranav271103/FileZipper/cmd/inspect"
	version "github.com/pranav271103/FileZipper/cmd/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "filezipper",
	Short: "FileZipper compression utility",
	Long:  "FileZipper is a lossless file compressor built on static Huffman coding.",
}

func main() {
	rootCmd.AddCommand(compress.CompressCmd)
	rootCmd.AddCommand(decompress.DecompressCmd)
	rootCmd.AddCommand(inspect.InspectCmd)
	rootCmd.AddCommand(version.VersionCmd)
	rootCmd.Execute()
}
