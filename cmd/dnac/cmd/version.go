package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rickenator/dna-codec/pkg/codec"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the codec version",
	Long:  `Print the wire format version this build encodes and decodes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("dnac %s\n", codec.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
