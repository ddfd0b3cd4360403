package models

type Subject string

const (
	SubjectScience     Subject = "Science"
	SubjectMaths       Subject = "Maths"
	SubjectEnglish     Subject = "English"
	SubjectHistory     Subject = "History"
	SubjectGeography   Subject = "Geography"
	SubjectComputer    Subject = "Computer"
	SubjectGeneralKnow Subject = "General Knowledge"
)

var ValidSubjects = map[Subject]bool{
	SubjectScience:     true,
	SubjectMaths:       true,
	SubjectEnglish:     true,
	SubjectHistory:     true,
	SubjectGeography:   true,
	SubjectComputer:    true,
	SubjectGeneralKnow: true,
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
	DifficultyExpert Difficulty = "EXPERT"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
	DifficultyExpert: true,
}

// OptionCount is the fixed number of answer choices (A-D) on every question.
const OptionCount = 4

// ── Core Structs ───────────────────────────────────────

// QuestionRecord is the canonical question shape, produced either by the
// response normalizer (isGenerated=true) or by manual entry. Options always
// holds exactly OptionCount entries in display order A-D.
type QuestionRecord struct {
	ID          string   `json:"id,omitempty"`
	Subject     string   `json:"subject"`
	Difficulty  string   `json:"difficulty"`
	ClassName   string   `json:"className"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Explanation string   `json:"explanation"`
	Topic       string   `json:"topic"`
	IsGenerated bool     `json:"isGenerated"`
}

// ServiceHealth is the transient result of the coarse liveness read against
// the model service. Computed fresh on every check, never stored.
type ServiceHealth struct {
	Reachable bool   `json:"reachable"`
	Detail    string `json:"detail"`
}

// ── Request Types ─────────────────────────────────────

// GenerationRequest describes the questions the user asked the model service
// to produce. Topic must be non-empty before a request is issued; count is
// clamped to 1..MaxGenerationCount by the handler, but the service is not
// trusted to honor it.
type GenerationRequest struct {
	Subject      Subject    `json:"subject"`
	Difficulty   Difficulty `json:"difficulty"`
	Class        string     `json:"class"`
	QuestionType string     `json:"question_type"`
	Count        int        `json:"count"`
	Topic        string     `json:"topic"`
}

// MaxGenerationCount is the largest batch the UI offers per request.
const MaxGenerationCount = 5

// QuestionTypeSingleChoice is the only question type the authoring tool emits.
const QuestionTypeSingleChoice = "SC"

type AddQuestionRequest struct {
	Subject     Subject    `json:"subject"`
	Difficulty  Difficulty `json:"difficulty"`
	ClassName   string     `json:"className"`
	Question    string     `json:"question"`
	Options     []string   `json:"options"`
	Explanation string     `json:"explanation"`
	Topic       string     `json:"topic"`
}

// ── Response Types ────────────────────────────────────

type GenerateQuestionsResponse struct {
	Questions []QuestionRecord `json:"questions"`
	Total     int              `json:"total"`
	Dropped   int              `json:"dropped"`
}

type QuestionListResponse struct {
	Questions []QuestionRecord `json:"questions"`
	Total     int              `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
