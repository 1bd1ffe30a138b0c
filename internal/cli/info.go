package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmcpheron/ccc-schedule-collector/internal/filter"
	"github.com/jmcpheron/ccc-schedule-collector/internal/schedule"
	"github.com/spf13/cobra"
)

const presetsFile = "filter_presets.json"

func newInfoCmd() *cobra.Command {
	var (
		flagSubject    string
		flagInstructor string
		flagCRN        string
		flagTitle      string
		flagDays       string
		flagAfter      string
		flagBefore     string
		flagDelivery   string
		flagOpen       bool
		flagZTC        bool
		flagMaxUnits   float64
		flagPreset     string
		flagSavePreset string
		flagFormat     string
	)

	cmd := &cobra.Command{
		Use:   "info <snapshot-file|latest>",
		Short: "Show courses from an archived snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshotArg(args[0])
			if err != nil {
				return err
			}
			format, err := parseFormat(flagFormat)
			if err != nil {
				return err
			}

			f, err := buildFilter(flagPreset, flagSubject, flagInstructor, flagTitle,
				flagDays, flagAfter, flagBefore, flagDelivery, flagOpen, flagZTC, flagMaxUnits)
			if err != nil {
				return err
			}
			if flagSavePreset != "" {
				if err := savePreset(flagSavePreset, f); err != nil {
					return err
				}
			}

			sections := f.Apply(snap.Sections)
			if flagCRN != "" {
				var matched []schedule.Section
				for i := range sections {
					if sections[i].CRN == flagCRN {
						matched = append(matched, sections[i])
					}
				}
				sections = matched
			}
			if len(sections) == 0 {
				fmt.Fprintln(os.Stdout, "No courses found matching criteria.")
				return nil
			}

			if format == FormatTable {
				fmt.Fprintf(os.Stdout, "\nSchedule: %s (collected %s)\nShowing %d of %d courses\n\n",
					snap.Term, snap.CollectedAt.Format("2006-01-02 15:04 MST"), len(sections), len(snap.Sections))
			}
			return writeSections(os.Stdout, sections, format)
		},
	}

	cmd.Flags().StringVarP(&flagSubject, "subject", "s", "", "Filter by subject code (comma-separated)")
	cmd.Flags().StringVarP(&flagInstructor, "instructor", "i", "", "Filter by instructor name (substring)")
	cmd.Flags().StringVarP(&flagCRN, "crn", "c", "", "Filter by CRN")
	cmd.Flags().StringVar(&flagTitle, "title", "", "Filter by course title (substring)")
	cmd.Flags().StringVar(&flagDays, "days", "", "Meeting days, e.g. MWF or TR")
	cmd.Flags().StringVar(&flagAfter, "after", "", "Meetings starting at or after this time, e.g. 5pm")
	cmd.Flags().StringVar(&flagBefore, "before", "", "Meetings starting before this time, e.g. noon as 12pm")
	cmd.Flags().StringVar(&flagDelivery, "delivery", "", "Delivery modes: in-person, hybrid, online (comma-separated)")
	cmd.Flags().BoolVar(&flagOpen, "open", false, "Only open sections")
	cmd.Flags().BoolVar(&flagZTC, "ztc", false, "Only zero-textbook-cost sections")
	cmd.Flags().Float64Var(&flagMaxUnits, "max-units", 0, "Maximum credit value")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "Start from a saved filter preset")
	cmd.Flags().StringVar(&flagSavePreset, "save-preset", "", "Save the resulting filter under this name")
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "table", "Output format: table, json, or csv")

	return cmd
}

// buildFilter assembles the section filter from a preset base plus flag
// overrides.
func buildFilter(preset, subject, instructor, title, days, after, before, delivery string, open, ztc bool, maxUnits float64) (*filter.Filter, error) {
	f := filter.New()
	if preset != "" {
		presets, err := loadPresets()
		if err != nil {
			return nil, err
		}
		p, ok := presets.Get(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		f = p.Filter
	}

	if subject != "" {
		for _, s := range strings.Split(subject, ",") {
			if s = strings.TrimSpace(s); s != "" {
				f.Subjects = append(f.Subjects, s)
			}
		}
	}
	if instructor != "" {
		f.Instructor = instructor
	}
	if title != "" {
		f.TitleQuery = title
	}
	if days != "" {
		parsed, err := filter.ParseDays(days)
		if err != nil {
			return nil, err
		}
		f.Days = parsed
	}
	if after != "" {
		min, err := filter.ParseTime(after)
		if err != nil {
			return nil, err
		}
		f.StartAfter = min
	}
	if before != "" {
		min, err := filter.ParseTime(before)
		if err != nil {
			return nil, err
		}
		f.StartBefore = min
	}
	if delivery != "" {
		parsed, err := filter.ParseDeliveries(delivery)
		if err != nil {
			return nil, err
		}
		f.Deliveries = parsed
	}
	if open {
		f.OpenOnly = true
	}
	if ztc {
		f.ZeroTextbookOnly = true
	}
	if maxUnits > 0 {
		f.MaxUnits = maxUnits
	}
	return f, nil
}

func presetsPath() (string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg.Storage.DataDir, presetsFile), nil
}

func loadPresets() (*filter.Presets, error) {
	path, err := presetsPath()
	if err != nil {
		return nil, err
	}
	return filter.LoadPresets(path)
}

func savePreset(name string, f *filter.Filter) error {
	presets, err := loadPresets()
	if err != nil {
		return err
	}
	presets.Set(name, f)
	return presets.Save()
}
