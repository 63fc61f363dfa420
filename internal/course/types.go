package course

// Metadata is the course record serialized to metadata.json.
type Metadata struct {
	ID                 string   `json:"id" yaml:"id"`
	Title              string   `json:"title" yaml:"title"`
	Description        string   `json:"description" yaml:"description"`
	Category           string   `json:"category" yaml:"category"`
	Difficulty         string   `json:"difficulty" yaml:"difficulty"`
	Duration           string   `json:"duration" yaml:"duration"`
	Instructor         string   `json:"instructor" yaml:"instructor"`
	Version            string   `json:"version" yaml:"version"`
	Tags               []string `json:"tags" yaml:"tags"`
	Prerequisites      []string `json:"prerequisites" yaml:"prerequisites"`
	LearningObjectives []string `json:"learningObjectives" yaml:"learningObjectives"`
	Modules            []Module `json:"modules" yaml:"modules"`
}

// Module groups an ordered list of lesson identifiers.
type Module struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Lessons  []string `json:"lessons" yaml:"lessons"`
	Duration string   `json:"duration" yaml:"duration"`
}

// Lesson is a single Markdown document within a course.
type Lesson struct {
	ID    string
	Title string
}

// Quiz is the assessment record written next to each lesson.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Question is one quiz item. Correct holds an option index for
// multiple-choice questions and a bool for true/false questions.
type Question struct {
	ID          int      `json:"id"`
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	Options     []string `json:"options,omitempty"`
	Correct     any      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Question type discriminators.
const (
	QuestionMultipleChoice = "multiple-choice"
	QuestionTrueFalse      = "true-false"
)

// Options overrides the static defaults. Empty fields keep the default.
type Options struct {
	Description        string
	Category           string
	Difficulty         string
	Duration           string
	Instructor         string
	Version            string
	Tags               []string
	Prerequisites      []string
	LearningObjectives []string
	Modules            []Module
}
