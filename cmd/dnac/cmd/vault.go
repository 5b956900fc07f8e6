package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/hokaccha/go-prettyjson"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/rickenator/dna-codec/pkg/dnafile"
	"github.com/rickenator/dna-codec/pkg/vault"
)

var noConfirm bool

// vaultCmd represents the vault command
var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage the sequence vault",
	Long: `Store, list, retrieve, and remove encoded sequences in the local vault.

Sequences are verified against the configured markers before storage,
so the vault never holds data that cannot be decoded.`,
}

var vaultPutCmd = &cobra.Command{
	Use:   "put <name> [sequence]",
	Short: "Store a sequence in the vault",
	Long: `Store an encoded sequence under a human-readable name.

The sequence can be given as an argument or read from a .dna file.

Examples:
  dnac vault put greeting ATGCATGC...GGCCGGCC
  dnac vault put notes --file notes.txt.dna`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		fromFile, _ := cmd.Flags().GetString("file")

		var sequence string
		switch {
		case len(args) == 2 && fromFile != "":
			return fmt.Errorf("give either a sequence argument or --file, not both")
		case len(args) == 2:
			sequence = args[1]
		case fromFile != "":
			var err error
			sequence, err = dnafile.ReadSequence(fromFile)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("a sequence argument or --file is required")
		}

		archive, err := openVault()
		if err != nil {
			return err
		}
		defer archive.Close()

		entry, err := archive.Put(name, sequence)
		if err != nil {
			return fmt.Errorf("failed to store sequence: %w", err)
		}

		cmd.Printf("Stored '%s' as %s (%d nucleotides)\n", name, entry.ID, entry.Nucleotides)
		return nil
	},
}

var vaultGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Retrieve a vault entry",
	Long:  `Retrieve and display a vault entry by its ID.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := openVault()
		if err != nil {
			return err
		}
		defer archive.Close()

		entry, err := archive.Get(args[0])
		if err != nil {
			return err
		}

		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		if pretty, err := prettyjson.Format(data); err == nil {
			data = pretty
		}
		cmd.Println(string(data))

		return nil
	},
}

var vaultLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List vault entries",
	Long:  `List all entries in the vault.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := openVault()
		if err != nil {
			return err
		}
		defer archive.Close()

		entries, err := archive.List()
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			cmd.Println("No entries found")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		defer w.Flush()

		fmt.Fprintln(w, "ID\tNAME\tNUCLEOTIDES\tCREATED")
		for _, entry := range entries {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				entry.ID,
				entry.Name,
				entry.Nucleotides,
				entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		return nil
	},
}

var vaultRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a vault entry",
	Long:  `Remove a vault entry by its ID.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		if !noConfirm {
			prompt := promptui.Prompt{
				Label:     fmt.Sprintf("Delete entry %q", id),
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				return fmt.Errorf("aborted, exiting")
			}
		}

		archive, err := openVault()
		if err != nil {
			return err
		}
		defer archive.Close()

		if err := archive.Delete(id); err != nil {
			return err
		}

		cmd.Printf("Deleted entry '%s'\n", id)
		return nil
	},
}

// openVault opens the configured vault; callers must Close it.
func openVault() (*vault.Vault, error) {
	archive, err := vault.Open(cfg.Vault.Path, dna, cfg.Vault.EntryEncoding)
	if err != nil {
		return nil, fmt.Errorf("failed to open vault: %w", err)
	}
	return archive, nil
}

func init() {
	rootCmd.AddCommand(vaultCmd)

	vaultPutCmd.Flags().String("file", "", "Read the sequence from a .dna file")
	vaultRmCmd.Flags().BoolVar(&noConfirm, "noconfirm", false, "Do not prompt for confirmation")

	vaultCmd.AddCommand(vaultPutCmd)
	vaultCmd.AddCommand(vaultGetCmd)
	vaultCmd.AddCommand(vaultLsCmd)
	vaultCmd.AddCommand(vaultRmCmd)
}
