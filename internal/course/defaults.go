package course

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Static defaults applied by NewMetadata.
const (
	DefaultCategory   = "DevOps"
	DefaultDifficulty = "Intermediate"
	DefaultDuration   = "8 hours"
	DefaultInstructor = "DevOps Expert"
	DefaultVersion    = "0.1.0"
)

// DefaultModules returns the fixed two-module outline. A fresh slice is
// returned on every call so callers may modify it.
func DefaultModules() []Module {
	return []Module{
		{
			ID:       "module-1",
			Title:    "Getting Started",
			Lessons:  []string{"01-introduction", "02-setup", "03-basics"},
			Duration: "3 hours",
		},
		{
			ID:       "module-2",
			Title:    "Advanced Topics",
			Lessons:  []string{"04-advanced", "05-best-practices", "06-project"},
			Duration: "5 hours",
		},
	}
}

// NewMetadata builds the course record for id and title, filling every
// field opts leaves empty from the static defaults.
func NewMetadata(id, title string, opts Options) *Metadata {
	m := &Metadata{
		ID:          id,
		Title:       title,
		Description: fmt.Sprintf("Comprehensive course on %s", title),
		Category:    DefaultCategory,
		Difficulty:  DefaultDifficulty,
		Duration:    DefaultDuration,
		Instructor:  DefaultInstructor,
		Version:     DefaultVersion,
		Tags:        TagsFromID(id),
		Prerequisites: []string{
			"Basic technical knowledge",
		},
		LearningObjectives: []string{
			fmt.Sprintf("Master %s fundamentals", title),
			"Apply best practices",
			"Build real-world projects",
		},
		Modules: DefaultModules(),
	}

	if opts.Description != "" {
		m.Description = opts.Description
	}
	if opts.Category != "" {
		m.Category = opts.Category
	}
	if opts.Difficulty != "" {
		m.Difficulty = opts.Difficulty
	}
	if opts.Duration != "" {
		m.Duration = opts.Duration
	}
	if opts.Instructor != "" {
		m.Instructor = opts.Instructor
	}
	if opts.Version != "" {
		m.Version = opts.Version
	}
	if len(opts.Tags) > 0 {
		m.Tags = opts.Tags
	}
	if len(opts.Prerequisites) > 0 {
		m.Prerequisites = opts.Prerequisites
	}
	if len(opts.LearningObjectives) > 0 {
		m.LearningObjectives = opts.LearningObjectives
	}
	if len(opts.Modules) > 0 {
		m.Modules = opts.Modules
	}

	return m
}

// TagsFromID splits a course slug on hyphens, dropping empty parts.
func TagsFromID(id string) []string {
	tags := []string{}
	for _, part := range strings.Split(id, "-") {
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// LessonTitle derives a display title from a lesson id,
// e.g. "05-best-practices" → "05 Best Practices".
func LessonTitle(id string) string {
	// Casers carry state, so each call gets its own.
	return cases.Title(language.English).String(strings.ReplaceAll(id, "-", " "))
}

// ScaffoldLessons returns the lessons of the first module. These are the
// lessons that receive placeholder documents and quizzes.
func (m *Metadata) ScaffoldLessons() []Lesson {
	if len(m.Modules) == 0 {
		return nil
	}
	ids := m.Modules[0].Lessons
	lessons := make([]Lesson, 0, len(ids))
	for _, id := range ids {
		lessons = append(lessons, Lesson{ID: id, Title: LessonTitle(id)})
	}
	return lessons
}

// QuizID returns the quiz identifier for a lesson ("<lesson>-quiz").
func QuizID(lessonID string) string {
	return lessonID + "-quiz"
}

// SampleQuiz returns the placeholder quiz for a lesson: one multiple-choice
// and one true/false question.
func SampleQuiz(lessonID string) *Quiz {
	return &Quiz{
		ID:    QuizID(lessonID),
		Title: "Quiz: " + LessonTitle(lessonID),
		Questions: []Question{
			{
				ID:       1,
				Type:     QuestionMultipleChoice,
				Question: "What is the main benefit of containerization?",
				Options: []string{
					"Faster execution",
					"Environment consistency",
					"Smaller file sizes",
					"Better graphics",
				},
				Correct:     1,
				Explanation: "Containerization provides environment consistency across different systems.",
			},
			{
				ID:          2,
				Type:        QuestionTrueFalse,
				Question:    "Docker containers share the host OS kernel.",
				Correct:     true,
				Explanation: "Unlike VMs, containers share the host OS kernel, making them more efficient.",
			},
		},
	}
}
