package cli

import (
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"

	"github.com/devops-elearning/coursekit/internal/config"
	"github.com/devops-elearning/coursekit/internal/course"
	"github.com/devops-elearning/coursekit/internal/manifest"
	"github.com/devops-elearning/coursekit/internal/scaffold"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

const rule = "--------------------------------------------------"

// createOptions holds the resolved inputs of the create command. Field
// names reported by the validator are the flag names.
type createOptions struct {
	ID         string `flag:"id" validate:"required,slug"`
	Title      string `flag:"title" validate:"required"`
	Category   string `flag:"category" validate:"required"`
	Difficulty string `flag:"difficulty" validate:"required"`
	Instructor string `flag:"instructor"`
	Duration   string `flag:"duration"`
	BasePath   string `flag:"path" validate:"required"`
	From       string `flag:"from"`
}

var createFlags createOptions

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("flag")
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
	return v
}

func init() {
	f := createCmd.Flags()
	f.StringVar(&createFlags.ID, "id", "", "Course ID, e.g. kubernetes-basics (required)")
	f.StringVar(&createFlags.Title, "title", "", "Course title (required)")
	f.StringVar(&createFlags.Category, "category", "", "Course category (default from config, DevOps)")
	f.StringVar(&createFlags.Difficulty, "difficulty", "", "Difficulty level (default from config, Intermediate)")
	f.StringVar(&createFlags.Instructor, "instructor", "", "Instructor name (default from config)")
	f.StringVar(&createFlags.Duration, "duration", "", "Total course duration (default from config)")
	f.StringVar(&createFlags.BasePath, "path", "", "Base path (default from config, current directory)")
	f.StringVar(&createFlags.From, "from", "", "YAML course definition to seed metadata from")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Scaffold a new course",
	Long: `Create the directory structure for a new course with sample metadata,
lessons, and quizzes under <path>/content/courses/<id>/.

Examples:
  coursekit create --id kubernetes-basics --title "Kubernetes Basics"
  coursekit create --id terraform-intro --title "Terraform Intro" --category IaC --difficulty Beginner
  coursekit create --id k8s-basics --title "Kubernetes Basics" --from course.yaml`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	opts, metaOpts, err := resolveCreateOptions(createFlags)
	if err != nil {
		return err
	}

	meta := course.NewMetadata(opts.ID, opts.Title, metaOpts)
	log.Debug().Str("id", meta.ID).Str("path", opts.BasePath).Msg("scaffolding course")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Creating course: %s\n", meta.Title)
	fmt.Fprintf(out, "Course ID: %s\n", meta.ID)
	fmt.Fprintln(out, rule)

	result, err := scaffold.Generate(meta, opts.BasePath)
	if err != nil {
		return err
	}

	printCreateResult(out, result)
	return nil
}

// resolveCreateOptions merges flags, the optional definition file, and
// config defaults, then validates the result. Precedence is
// flag > definition > config > built-in default.
func resolveCreateOptions(flags createOptions) (createOptions, course.Options, error) {
	opts := flags
	var metaOpts course.Options

	if opts.From != "" {
		if err := validate.Var(opts.From, "file"); err != nil {
			return opts, metaOpts, formatValidationErrors(err)
		}
		def, err := manifest.ParseDefinition(opts.From)
		if err != nil {
			return opts, metaOpts, err
		}
		metaOpts = def.Options()
		if opts.ID == "" {
			opts.ID = def.ID
		}
		if opts.Title == "" {
			opts.Title = def.Title
		}
	}

	opts.Category = pick(opts.Category, metaOpts.Category, config.KeyCategory)
	opts.Difficulty = pick(opts.Difficulty, metaOpts.Difficulty, config.KeyDifficulty)
	opts.Instructor = pick(opts.Instructor, metaOpts.Instructor, config.KeyInstructor)
	opts.Duration = pick(opts.Duration, metaOpts.Duration, config.KeyDuration)
	if opts.BasePath == "" {
		opts.BasePath = config.Get(config.KeyPath)
	}

	if err := validate.Struct(opts); err != nil {
		return opts, metaOpts, formatValidationErrors(err)
	}

	metaOpts.Category = opts.Category
	metaOpts.Difficulty = opts.Difficulty
	metaOpts.Instructor = opts.Instructor
	metaOpts.Duration = opts.Duration
	return opts, metaOpts, nil
}

// pick returns the first non-empty of the flag value and the definition
// value, falling back to the config key.
func pick(flagVal, defVal, configKey string) string {
	if flagVal != "" {
		return flagVal
	}
	if defVal != "" {
		return defVal
	}
	return config.Get(configKey)
}

// formatValidationErrors converts validator errors to one line per flag.
func formatValidationErrors(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, formatFieldError(e))
	}
	return fmt.Errorf("invalid options:\n  %s", strings.Join(msgs, "\n  "))
}

func formatFieldError(e validator.FieldError) string {
	field := "--" + e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "slug":
		return fmt.Sprintf("%s %q must match pattern [a-z0-9][a-z0-9-]*", field, e.Value())
	case "file":
		return fmt.Sprintf("%q is not a readable file", e.Value())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

func printCreateResult(out io.Writer, result *scaffold.Result) {
	for _, e := range result.Entries {
		fmt.Fprintf(out, "Created %s: %s\n", e.Kind, e.Path)
	}
	fmt.Fprintln(out, rule)

	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, "Warnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Course structure created successfully!")
	fmt.Fprintf(out, "Course location: %s\n", result.CoursePath)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Add your video files to the videos/ directory")
	fmt.Fprintln(out, "  2. Edit the lesson content in the lessons/ directory")
	fmt.Fprintln(out, "  3. Customize the metadata.json file")
	fmt.Fprintln(out, "  4. Create interactive labs in the labs/ directory")
	fmt.Fprintln(out, "  5. Upload content using the admin interface")
}
