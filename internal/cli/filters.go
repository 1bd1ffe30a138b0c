package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jmcpheron/ccc-schedule-collector/internal/filter"
	"github.com/spf13/cobra"
)

func newFiltersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Manage saved filter presets",
		Long: `Lists and deletes the named filter presets saved with
'info --save-preset'. Presets live alongside the snapshot archive in the
data directory.`,
	}
	cmd.AddCommand(newFiltersListCmd())
	cmd.AddCommand(newFiltersDeleteCmd())
	return cmd
}

func newFiltersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved filter presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := loadPresets()
			if err != nil {
				return err
			}
			list := presets.List()
			if len(list) == 0 {
				fmt.Println("No saved presets.")
				return nil
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tUPDATED\tCRITERIA")
			for _, p := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, p.UpdatedAt.Format("2006-01-02"), describeFilter(p))
			}
			return tw.Flush()
		},
	}
}

func newFiltersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved filter preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := loadPresets()
			if err != nil {
				return err
			}
			if !presets.Remove(args[0]) {
				return fmt.Errorf("unknown preset %q", args[0])
			}
			if err := presets.Save(); err != nil {
				return err
			}
			fmt.Printf("Deleted preset %q.\n", args[0])
			return nil
		},
	}
}

func describeFilter(p *filter.Preset) string {
	f := p.Filter
	var parts []string
	if len(f.Subjects) > 0 {
		parts = append(parts, fmt.Sprintf("subjects=%v", f.Subjects))
	}
	if f.TitleQuery != "" {
		parts = append(parts, "title~"+f.TitleQuery)
	}
	if f.Instructor != "" {
		parts = append(parts, "instructor~"+f.Instructor)
	}
	if len(f.Days) > 0 {
		parts = append(parts, fmt.Sprintf("days=%v", f.Days))
	}
	if f.StartAfter > 0 {
		parts = append(parts, fmt.Sprintf("after=%02d:%02d", f.StartAfter/60, f.StartAfter%60))
	}
	if f.StartBefore > 0 {
		parts = append(parts, fmt.Sprintf("before=%02d:%02d", f.StartBefore/60, f.StartBefore%60))
	}
	if len(f.Deliveries) > 0 {
		parts = append(parts, fmt.Sprintf("delivery=%v", f.Deliveries))
	}
	if f.OpenOnly {
		parts = append(parts, "open")
	}
	if f.ZeroTextbookOnly {
		parts = append(parts, "ztc")
	}
	if f.MaxUnits > 0 {
		parts = append(parts, fmt.Sprintf("units<=%.1f", f.MaxUnits))
	}
	if len(parts) == 0 {
		return "(matches everything)"
	}
	out := parts[0]
	for _, part := range parts[1:] {
		out += ", " + part
	}
	return out
}
