package cli

import (
	"errors"
	"fmt"

	"github.com/devops-elearning/coursekit/internal/catalog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var validatePath string

var validateCmd = &cobra.Command{
	Use:   "validate <id>",
	Short: "Check a scaffolded course for problems",
	Long: `Validate a course's metadata.json and quizzes against their schemas and
confirm that every scaffolded lesson and quiz file is present.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validatePath, "path", "", "Base path (default from config, current directory)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	id := args[0]
	if err := validate.Var(id, "required,slug"); err != nil {
		return fmt.Errorf("invalid course id %q: must match pattern [a-z0-9][a-z0-9-]*", id)
	}

	report, err := catalog.Check(resolveBasePath(validatePath), id)
	if err != nil {
		if errors.Is(err, catalog.ErrCourseNotFound) {
			return fmt.Errorf("course %q not found; run '%s create --id %s' first", id, rootCmd.Name(), id)
		}
		return err
	}

	out := cmd.OutOrStdout()
	if report.OK() {
		fmt.Fprintf(out, "OK %s (%s)\n", id, report.CoursePath)
		return nil
	}

	log.Debug().Int("findings", len(report.Findings)).Str("course", id).Msg("validation failed")
	for _, f := range report.Findings {
		fmt.Fprintf(out, "  %s: %s\n", f.File, f.Message)
	}
	return fmt.Errorf("course %s has %d problem(s)", id, len(report.Findings))
}
