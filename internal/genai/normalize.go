package genai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/quizsmith/backend/internal/models"
)

// Deployments of the model service disagree on field names, so each logical
// field is an ordered alias list tried in sequence; first non-empty match
// wins.
var (
	questionAliases    = []string{"title_en", "title", "question"}
	optionsAliases     = []string{"options_en", "options"}
	subjectAliases     = []string{"category_type", "subject"}
	difficultyAliases  = []string{"difficulty_option", "difficulty"}
	explanationAliases = []string{"explination_description_en", "explanation", "explination"}
	topicAliases       = []string{"topic"}
	optionTextAliases  = []string{"option", "text"}
)

// DropReport records the items normalization discarded. The kept list is the
// public contract; the report exists so tests and a future UI can observe
// drop counts without changing it.
type DropReport struct {
	Dropped int
	Reasons []string
}

// Normalize maps raw model output items to canonical QuestionRecords. Pure
// and order-preserving: unusable items are dropped into the report, never
// aborting the batch. The caller decides what an empty result means.
func Normalize(raw []json.RawMessage, req models.GenerationRequest) ([]models.QuestionRecord, DropReport) {
	records := make([]models.QuestionRecord, 0, len(raw))
	var report DropReport

	for i, item := range raw {
		rec, reason := normalizeItem(gjson.ParseBytes(item), req)
		if reason != "" {
			report.Dropped++
			report.Reasons = append(report.Reasons, fmt.Sprintf("item %d: %s", i, reason))
			continue
		}
		records = append(records, rec)
	}
	return records, report
}

func normalizeItem(item gjson.Result, req models.GenerationRequest) (models.QuestionRecord, string) {
	q := item
	if fq := item.Get("final_question"); fq.Exists() {
		q = fq
	}
	if !q.Exists() || q.Type == gjson.Null {
		return models.QuestionRecord{}, "empty payload"
	}

	question := firstString(q, questionAliases)
	if question == "" {
		return models.QuestionRecord{}, "no question text"
	}

	return models.QuestionRecord{
		Subject:    fallback(firstString(q, subjectAliases), string(req.Subject), string(models.SubjectScience)),
		Difficulty: fallback(firstString(q, difficultyAliases), string(req.Difficulty), string(models.DifficultyEasy)),
		// className always reflects what the user asked for, never the item.
		ClassName:   fallback(req.Class, "10"),
		Question:    question,
		Options:     normalizeOptions(q),
		Explanation: firstString(q, explanationAliases),
		Topic:       fallback(firstString(q, topicAliases), req.Topic),
		IsGenerated: true,
	}, ""
}

// normalizeOptions always returns exactly OptionCount entries; missing or
// unusable slots get a placeholder so downstream display never index-faults.
func normalizeOptions(q gjson.Result) []string {
	src := firstResult(q, optionsAliases).Array()

	opts := make([]string, models.OptionCount)
	for i := range opts {
		text := ""
		if i < len(src) {
			text = optionText(src[i])
		}
		if text == "" {
			text = fmt.Sprintf("Option %d", i+1)
		}
		opts[i] = text
	}
	return opts
}

// optionText extracts display text from either a plain value or an object
// carrying the text under "option" or "text".
func optionText(el gjson.Result) string {
	if el.IsObject() {
		return firstString(el, optionTextAliases)
	}
	if !el.Exists() || el.Type == gjson.Null {
		return ""
	}
	return strings.TrimSpace(el.String())
}

func firstString(q gjson.Result, aliases []string) string {
	for _, key := range aliases {
		v := q.Get(key)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		if s := strings.TrimSpace(v.String()); s != "" {
			return s
		}
	}
	return ""
}

func firstResult(q gjson.Result, aliases []string) gjson.Result {
	for _, key := range aliases {
		if v := q.Get(key); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

func fallback(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
