package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "View FileZipper's version",
	Long:  "Display the version of FileZipper installed on your system.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("FileZipper version 1.0.0")
		fmt.Println("Huffman container format version 1")

		return nil
	},
}
