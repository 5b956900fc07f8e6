/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rickenator/dna-codec/pkg/codec"
	"github.com/rickenator/dna-codec/pkg/config"
	"github.com/rickenator/dna-codec/pkg/dnafile"
)

var (
	cfgFile string
	cfg     *config.Config
	dna     *codec.Codec

	encodeMessage  string
	decodeSequence string
	encodeFilePath string
	decodeFilePath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dnac",
	Short: "dnac - DNA sequence transcoder",
	Long: `dnac converts text and files into DNA nucleotide sequences and back.
Payloads are framed between fixed promoter and terminator markers so
that corrupted or foreign sequences are rejected instead of being
decoded into garbage.

Examples:
  dnac -e "HELLO WORLD"
  dnac -d ATGCATGC...GGCCGGCC
  dnac -i notes.txt
  dnac -o notes.txt.dna`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfiguration()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Exactly one mode flag is set here; cobra enforces the group
		switch {
		case cmd.Flags().Changed("encode"):
			return runEncode(cmd, encodeMessage)
		case cmd.Flags().Changed("decode"):
			return runDecode(cmd, decodeSequence)
		case cmd.Flags().Changed("encode-file"):
			return runEncodeFile(cmd, encodeFilePath)
		default:
			return runDecodeFile(cmd, decodeFilePath)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.config/dnac/config.yaml)")

	rootCmd.Flags().StringVarP(&encodeMessage, "encode", "e", "", "Encode a message into a DNA sequence")
	rootCmd.Flags().StringVarP(&decodeSequence, "decode", "d", "", "Decode a DNA sequence into a message")
	rootCmd.Flags().StringVarP(&encodeFilePath, "encode-file", "i", "", "Encode a file into <path>.dna")
	rootCmd.Flags().StringVarP(&decodeFilePath, "decode-file", "o", "", "Decode a .dna file back into the original file")

	rootCmd.MarkFlagsMutuallyExclusive("encode", "decode", "encode-file", "decode-file")
	rootCmd.MarkFlagsOneRequired("encode", "decode", "encode-file", "decode-file")
}

// loadConfiguration resolves the config file, configures logging, and
// builds the process-wide codec. A missing default config falls back to
// defaults; an explicit --config that does not exist is an error.
func loadConfiguration() error {
	path := cfgFile
	if path == "" {
		path = config.GetDefaultConfigPath()
	}

	switch {
	case config.ConfigExists(path):
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", path, err)
		}
		cfg = loaded
	case cfgFile != "":
		return fmt.Errorf("config file does not exist: %s", cfgFile)
	default:
		cfg = config.DefaultConfig()
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if cfg.Logging.Level != "" {
		level, err := logrus.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
		}
		logrus.SetLevel(level)
	}

	var err error
	dna, err = codec.New(cfg.CodecConfig())
	if err != nil {
		return fmt.Errorf("failed to build codec: %w", err)
	}

	return nil
}

func runEncode(cmd *cobra.Command, message string) error {
	sequence, err := dna.EncodeString(message)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	cmd.Printf("%s || Encoded: %s\n", codec.Version, sequence)
	return nil
}

func runDecode(cmd *cobra.Command, sequence string) error {
	message, err := dna.DecodeString(sequence)
	if err != nil {
		if p, perr := dna.Decode(sequence); perr == nil && p.Kind == codec.KindFile {
			return fmt.Errorf("sequence carries the file %q, use --decode-file to recover it: %w", p.Name, err)
		}
		return fmt.Errorf("failed to decode sequence: %w", err)
	}

	cmd.Printf("Decoded: %s\n", message)
	return nil
}

func runEncodeFile(cmd *cobra.Command, path string) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	// The path as given becomes the stored name, so decoding restores
	// the file in the same place
	sequence, err := dna.EncodeFile(path, contents)
	if err != nil {
		return fmt.Errorf("failed to encode file: %w", err)
	}

	outPath := dnafile.EncodedPath(path)
	if err := dnafile.WriteSequence(outPath, sequence); err != nil {
		return err
	}

	cmd.Printf("Encoded to file: %s\n", outPath)
	return nil
}

func runDecodeFile(cmd *cobra.Command, path string) error {
	sequence, err := dnafile.ReadSequence(path)
	if err != nil {
		return err
	}

	name, contents, err := dna.DecodeFile(sequence)
	if err != nil {
		return fmt.Errorf("failed to decode sequence file: %w", err)
	}

	if err := os.WriteFile(name, contents, 0644); err != nil {
		return fmt.Errorf("failed to write decoded file: %w", err)
	}

	cmd.Printf("Decoded to file: %s\n", name)
	return nil
}
