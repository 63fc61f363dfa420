// Package catalog discovers scaffolded courses under a content root and
// checks them for completeness. It is the read side of the scaffolder:
// everything it inspects was written by the scaffold package.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/devops-elearning/coursekit/internal/manifest"
	"github.com/devops-elearning/coursekit/internal/scaffold"
	"github.com/rs/zerolog/log"
)

// ErrCourseNotFound is returned by Check when the course has no metadata.json.
var ErrCourseNotFound = errors.New("course not found")

// Summary describes one course found on disk.
type Summary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Version    string `json:"version"`
	Lessons    int    `json:"lessons"`
	Quizzes    int    `json:"quizzes"`
	Path       string `json:"path"`
	Err        error  `json:"-"`
}

// Discover walks <basePath>/content/courses/* and returns one Summary per
// directory holding a metadata.json, sorted by id. Courses whose metadata
// cannot be parsed are returned with Err set. A missing content root yields
// an empty slice.
func Discover(basePath string) ([]Summary, error) {
	root := scaffold.CoursesRoot(basePath)
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return []Summary{}, nil
		}
		return nil, fmt.Errorf("reading course root %s: %w", root, err)
	}

	summaries := []Summary{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		coursePath := filepath.Join(root, entry.Name())
		metaPath := filepath.Join(coursePath, scaffold.MetadataFile)
		if _, err := os.Stat(metaPath); err != nil {
			continue
		}

		s := Summary{ID: entry.Name(), Path: coursePath}
		meta, err := manifest.ParseMetadata(metaPath)
		if err != nil {
			log.Debug().Err(err).Str("course", entry.Name()).Msg("skipping unreadable metadata")
			s.Err = err
			summaries = append(summaries, s)
			continue
		}

		if meta.ID != "" {
			s.ID = meta.ID
		}
		s.Title = meta.Title
		s.Category = meta.Category
		s.Difficulty = meta.Difficulty
		s.Version = meta.Version
		s.Lessons = countFiles(filepath.Join(coursePath, scaffold.LessonsDir), ".md")
		s.Quizzes = countFiles(filepath.Join(coursePath, scaffold.AssessmentsDir), "-quiz.json")
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ID < summaries[j].ID
	})
	return summaries, nil
}

// countFiles counts regular files in dir whose names end with suffix.
func countFiles(dir, suffix string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			n++
		}
	}
	return n
}

// Finding is a single problem reported by Check.
type Finding struct {
	File    string // path relative to the course directory
	Message string
}

// Report is the outcome of checking one course.
type Report struct {
	CoursePath string
	Findings   []Finding
}

// OK reports whether the course has no findings.
func (r *Report) OK() bool {
	return len(r.Findings) == 0
}

func (r *Report) add(file, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{File: file, Message: fmt.Sprintf(format, args...)})
}

// Check validates one course: metadata against its schema, the version as
// semver, and the presence and validity of every scaffold lesson and quiz.
// Problems are collected as findings; the error return is reserved for a
// missing course or an unreadable metadata file.
func Check(basePath, id string) (*Report, error) {
	coursePath := scaffold.CoursePath(basePath, id)
	metaPath := filepath.Join(coursePath, scaffold.MetadataFile)
	if _, err := os.Stat(metaPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, id)
		}
		return nil, fmt.Errorf("checking %s: %w", metaPath, err)
	}

	report := &Report{CoursePath: coursePath}

	res, err := manifest.ValidateFile(manifest.KindMetadata, metaPath)
	if err != nil {
		return nil, err
	}
	for _, issue := range res.Issues {
		report.add(scaffold.MetadataFile, "%s", issue.String())
	}

	meta, err := manifest.ParseMetadata(metaPath)
	if err != nil {
		// Schema-valid but type-incompatible metadata; nothing further to check.
		report.add(scaffold.MetadataFile, "%v", err)
		return report, nil
	}

	if meta.ID != id {
		report.add(scaffold.MetadataFile, "id %q does not match directory %q", meta.ID, id)
	}
	if meta.Version != "" {
		if _, err := semver.StrictNewVersion(meta.Version); err != nil {
			report.add(scaffold.MetadataFile, "version %q is not semantic: %v", meta.Version, err)
		}
	}

	for _, lesson := range meta.ScaffoldLessons() {
		lessonRel := filepath.Join(scaffold.LessonsDir, scaffold.LessonFile(lesson.ID))
		if _, err := os.Stat(filepath.Join(coursePath, lessonRel)); err != nil {
			report.add(lessonRel, "lesson document is missing")
		}

		quizRel := filepath.Join(scaffold.AssessmentsDir, scaffold.QuizFile(lesson.ID))
		quizPath := filepath.Join(coursePath, quizRel)
		if _, err := os.Stat(quizPath); err != nil {
			report.add(quizRel, "quiz is missing")
			continue
		}
		qres, err := manifest.ValidateFile(manifest.KindQuiz, quizPath)
		if err != nil {
			report.add(quizRel, "%v", err)
			continue
		}
		for _, issue := range qres.Issues {
			report.add(quizRel, "%s", issue.String())
		}
	}

	return report, nil
}
