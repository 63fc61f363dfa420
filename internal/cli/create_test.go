package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devops-elearning/coursekit/internal/course"
)

func TestCreateDefaultCourse(t *testing.T) {
	base := sandbox(t)

	out, err := execute(t, "create", "--id", "k8s-basics", "--title", "Kubernetes Basics")
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	dir := coursePath(base, "k8s-basics")
	for _, sub := range []string{"lessons", "videos", "labs", "assessments"} {
		assertExists(t, filepath.Join(dir, sub))
	}
	for _, lesson := range []string{"01-introduction", "02-setup", "03-basics"} {
		assertExists(t, filepath.Join(dir, "lessons", lesson+".md"))
		assertExists(t, filepath.Join(dir, "assessments", lesson+"-quiz.json"))
	}

	data, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	if err != nil {
		t.Fatalf("reading metadata: %v", err)
	}
	var meta course.Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("decoding metadata: %v", err)
	}
	if meta.ID != "k8s-basics" || meta.Title != "Kubernetes Basics" {
		t.Errorf("metadata id/title = %q/%q", meta.ID, meta.Title)
	}
	if meta.Category != "DevOps" || meta.Difficulty != "Intermediate" {
		t.Errorf("category/difficulty = %q/%q, want DevOps/Intermediate", meta.Category, meta.Difficulty)
	}

	assertContains(t, out, "Creating course: Kubernetes Basics")
	assertContains(t, out, "Course ID: k8s-basics")
	assertContains(t, out, "Course structure created successfully!")
	assertContains(t, out, "Next steps:")
	if n := strings.Count(out, "Created quiz: "); n != 3 {
		t.Errorf("printed %d quizzes, want 3", n)
	}
}

func TestCreateFlagsOverrideDefaults(t *testing.T) {
	base := sandbox(t)

	_, err := execute(t, "create", "--id", "terraform-intro", "--title", "Terraform Intro",
		"--category", "IaC", "--difficulty", "Beginner", "--path", "site")
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(coursePath(filepath.Join(base, "site"), "terraform-intro"), "metadata.json"))
	if err != nil {
		t.Fatalf("reading metadata: %v", err)
	}
	var meta course.Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatal(err)
	}
	if meta.Category != "IaC" || meta.Difficulty != "Beginner" {
		t.Errorf("category/difficulty = %q/%q, want IaC/Beginner", meta.Category, meta.Difficulty)
	}
}

func TestCreateConfigDefaults(t *testing.T) {
	base := sandbox(t)
	t.Setenv("COURSEKIT_DEFAULTS_CATEGORY", "Cloud")

	if _, err := execute(t, "create", "--id", "aws-intro", "--title", "AWS Intro"); err != nil {
		t.Fatalf("create error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(coursePath(base, "aws-intro"), "metadata.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"category": "Cloud"`) {
		t.Errorf("metadata does not use configured category:\n%s", data)
	}
}

func TestCreateRerunOverwrites(t *testing.T) {
	base := sandbox(t)
	args := []string{"create", "--id", "k8s-basics", "--title", "Kubernetes Basics"}

	if _, err := execute(t, args...); err != nil {
		t.Fatalf("first create: %v", err)
	}
	lesson := filepath.Join(coursePath(base, "k8s-basics"), "lessons", "01-introduction.md")
	if err := os.WriteFile(lesson, []byte("edited"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	assertContains(t, out, "already existed")

	data, err := os.ReadFile(lesson)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) == "edited" {
		t.Error("lesson was not overwritten on rerun")
	}
}

func TestCreateFromDefinition(t *testing.T) {
	base := sandbox(t)
	def := `id: helm-charts
title: Helm Charts
category: Kubernetes
modules:
  - id: module-1
    title: Charts
    duration: 1 hour
    lessons:
      - 01-charts
`
	if err := os.WriteFile("course.yaml", []byte(def), 0644); err != nil {
		t.Fatal(err)
	}

	// --title on the command line wins over the definition.
	if _, err := execute(t, "create", "--from", "course.yaml", "--title", "Helm in Practice"); err != nil {
		t.Fatalf("create error: %v", err)
	}

	dir := coursePath(base, "helm-charts")
	assertExists(t, filepath.Join(dir, "lessons", "01-charts.md"))
	assertExists(t, filepath.Join(dir, "assessments", "01-charts-quiz.json"))

	data, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	if err != nil {
		t.Fatal(err)
	}
	var meta course.Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatal(err)
	}
	if meta.Title != "Helm in Practice" {
		t.Errorf("Title = %q, want flag value", meta.Title)
	}
	if meta.Category != "Kubernetes" {
		t.Errorf("Category = %q, want definition value", meta.Category)
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing id", []string{"--title", "Kubernetes Basics"}, "--id is required"},
		{"missing title", []string{"--id", "k8s-basics"}, "--title is required"},
		{"missing both", nil, "--id is required\n  --title is required"},
		{"bad slug", []string{"--id", "K8s Basics", "--title", "x"}, `--id "K8s Basics" must match`},
		{"leading dash", []string{"--id=-k8s", "--title", "x"}, "must match pattern"},
		{"missing definition", []string{"--from", "nope.yaml"}, `"nope.yaml" is not a readable file`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := sandbox(t)
			_, err := execute(t, append([]string{"create"}, tt.args...)...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
			if _, statErr := os.Stat(filepath.Join(base, "content")); !os.IsNotExist(statErr) {
				t.Error("content directory created despite invalid input")
			}
		})
	}
}

func TestCreateRejectsArgs(t *testing.T) {
	sandbox(t)
	if _, err := execute(t, "create", "k8s-basics"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}
