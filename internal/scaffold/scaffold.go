package scaffold

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/devops-elearning/coursekit/internal/branding"
	"github.com/devops-elearning/coursekit/internal/course"
	"github.com/devops-elearning/coursekit/internal/manifest"
	"github.com/devops-elearning/coursekit/internal/platform"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Subdirectories created inside every course directory, in creation order.
const (
	LessonsDir     = "lessons"
	VideosDir      = "videos"
	LabsDir        = "labs"
	AssessmentsDir = "assessments"
	MetadataFile   = "metadata.json"
)

// Subdirs lists the course subdirectories in creation order.
var Subdirs = []string{LessonsDir, VideosDir, LabsDir, AssessmentsDir}

// Entry kinds recorded in a Result.
const (
	KindDirectory = "directory"
	KindMetadata  = "metadata"
	KindLesson    = "lesson"
	KindQuiz      = "quiz"
)

// Entry is one artifact written by Generate.
type Entry struct {
	Kind string
	Path string
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	CoursePath string
	Entries    []Entry
	Warnings   []string
}

// Files returns the paths of entries of the given kind, in creation order.
func (r *Result) Files(kind string) []string {
	var paths []string
	for _, e := range r.Entries {
		if e.Kind == kind {
			paths = append(paths, e.Path)
		}
	}
	return paths
}

func (r *Result) add(kind, path string) {
	r.Entries = append(r.Entries, Entry{Kind: kind, Path: path})
	log.Debug().Str("kind", kind).Str("path", path).Msg("scaffolded")
}

// lessonData holds the variables available to the lesson template.
type lessonData struct {
	ID       string
	Title    string
	QuizFile string
}

// CoursesRoot returns <basePath>/content/courses.
func CoursesRoot(basePath string) string {
	return filepath.Join(basePath, filepath.FromSlash(branding.ContentRoot()))
}

// CoursePath returns <basePath>/content/courses/<id>.
func CoursePath(basePath, id string) string {
	return filepath.Join(CoursesRoot(basePath), id)
}

// LessonFile returns the file name of a lesson document.
func LessonFile(lessonID string) string {
	return lessonID + ".md"
}

// QuizFile returns the file name of a lesson's quiz.
func QuizFile(lessonID string) string {
	return course.QuizID(lessonID) + ".json"
}

// Generate creates the course tree for meta under basePath. Directories that
// already exist are reused and files that already exist are overwritten, so
// running it twice leaves the same tree behind.
func Generate(meta *course.Metadata, basePath string) (*Result, error) {
	tmpl, err := template.New("lesson.md.tmpl").
		Delims("[[", "]]").
		ParseFS(templateFS, "templates/lesson.md.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing lesson template: %w", err)
	}

	coursePath := CoursePath(basePath, meta.ID)
	result := &Result{CoursePath: coursePath}

	if _, err := os.Stat(filepath.Join(coursePath, MetadataFile)); err == nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("course %s already existed; scaffolded files were overwritten", meta.ID))
	}

	dirs := []string{coursePath}
	for _, sub := range Subdirs {
		dirs = append(dirs, filepath.Join(coursePath, sub))
	}
	for _, dir := range dirs {
		if err := platform.EnsureDir(dir, platform.DirPerm); err != nil {
			return nil, err
		}
		result.add(KindDirectory, dir)
	}

	metaPath := filepath.Join(coursePath, MetadataFile)
	if err := writeJSON(metaPath, meta); err != nil {
		return nil, err
	}
	result.add(KindMetadata, metaPath)

	for _, lesson := range meta.ScaffoldLessons() {
		var buf bytes.Buffer
		data := lessonData{ID: lesson.ID, Title: lesson.Title, QuizFile: QuizFile(lesson.ID)}
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("rendering lesson %s: %w", lesson.ID, err)
		}

		lessonPath := filepath.Join(coursePath, LessonsDir, LessonFile(lesson.ID))
		if err := platform.WriteFileAtomic(lessonPath, buf.Bytes(), platform.FilePerm); err != nil {
			return nil, err
		}
		result.add(KindLesson, lessonPath)

		quizPath := filepath.Join(coursePath, AssessmentsDir, QuizFile(lesson.ID))
		if err := writeJSON(quizPath, course.SampleQuiz(lesson.ID)); err != nil {
			return nil, err
		}
		result.add(KindQuiz, quizPath)
	}

	result.Warnings = append(result.Warnings, validateWritten(result)...)
	return result, nil
}

// writeJSON encodes v with two-space indentation and writes it atomically.
// HTML characters are written as is so authors can edit the file by hand.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	return platform.WriteFileAtomic(path, buf.Bytes(), platform.FilePerm)
}

// validateWritten checks every JSON document in result against its schema
// and returns one warning per issue.
func validateWritten(result *Result) []string {
	var warnings []string
	check := func(kind manifest.Kind, path string) {
		res, err := manifest.ValidateFile(kind, path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Could not validate %s: %v", filepath.Base(path), err))
			return
		}
		for _, issue := range res.Issues {
			warnings = append(warnings, filepath.Base(path)+": "+issue.String())
		}
	}

	for _, p := range result.Files(KindMetadata) {
		check(manifest.KindMetadata, p)
	}
	for _, p := range result.Files(KindQuiz) {
		check(manifest.KindQuiz, p)
	}
	return warnings
}
