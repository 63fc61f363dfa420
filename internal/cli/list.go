package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/devops-elearning/coursekit/internal/catalog"
	"github.com/devops-elearning/coursekit/internal/config"
	"github.com/spf13/cobra"
)

var (
	listPath string
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List scaffolded courses",
	Long:  `List all courses found under <path>/content/courses/.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listPath, "path", "", "Base path (default from config, current directory)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a discovered course for display.
type listEntry struct {
	catalog.Summary
	Error string `json:"error,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	basePath := resolveBasePath(listPath)
	summaries, err := catalog.Discover(basePath)
	if err != nil {
		return fmt.Errorf("discovering courses: %w", err)
	}

	entries := make([]listEntry, 0, len(summaries))
	for _, s := range summaries {
		e := listEntry{Summary: s}
		if s.Err != nil {
			e.Error = s.Err.Error()
		}
		entries = append(entries, e)
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No courses found.")
		return nil
	}
	return printListTable(cmd, entries)
}

// resolveBasePath returns flagVal or the configured content path.
func resolveBasePath(flagVal string) string {
	if flagVal != "" {
		return flagVal
	}
	return config.Get(config.KeyPath)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tDIFFICULTY\tVERSION\tLESSONS\tQUIZZES")
	for _, e := range entries {
		if e.Error != "" {
			fmt.Fprintf(w, "%s\t(error: %s)\t-\t-\t-\t-\t-\n", e.ID, e.Error)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			e.ID, dash(e.Title), dash(e.Category), dash(e.Difficulty), dash(e.Version), e.Lessons, e.Quizzes)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
