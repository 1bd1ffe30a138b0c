package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var flagTerm string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived snapshot files, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStorage(cfg)
			if err != nil {
				return err
			}
			files, err := store.ListSnapshots(flagTerm)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(os.Stdout, "No snapshots found.")
				return nil
			}
			for _, f := range files {
				fmt.Fprintln(os.Stdout, f)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagTerm, "term", "", "Filter by term code")
	return cmd
}
