package questions

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/questions.yaml
var defaultBankYAML []byte

// ErrInvalidBank is wrapped by every validation failure.
var ErrInvalidBank = errors.New("questions: invalid bank")

// yamlBank is the on-disk format of a question bank.
type yamlBank struct {
	Questions []yamlQuestion `yaml:"questions"`
}

type yamlQuestion struct {
	Category string   `yaml:"category"`
	Question string   `yaml:"question"`
	Choices  []string `yaml:"choices"`
	Answer   int      `yaml:"answer"`
}

// Parse decodes a YAML question bank and validates it.
func Parse(data []byte) ([]Question, error) {
	var yb yamlBank
	if err := yaml.Unmarshal(data, &yb); err != nil {
		return nil, fmt.Errorf("questions: yaml unmarshal: %w", err)
	}

	var problems []error
	qs := make([]Question, 0, len(yb.Questions))
	for i, yq := range yb.Questions {
		if len(yq.Choices) != ChoiceCount {
			problems = append(problems, fmt.Errorf("question %d has %d choices, expected %d", i, len(yq.Choices), ChoiceCount))
			continue
		}
		q := Question{
			Category: strings.TrimSpace(yq.Category),
			Prompt:   strings.TrimSpace(yq.Question),
			Answer:   yq.Answer,
		}
		copy(q.Choices[:], yq.Choices)
		qs = append(qs, q)
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBank, errors.Join(problems...))
	}

	if err := Validate(qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// Validate checks the structural rules every bank must satisfy:
// non-empty text, answer index in range, distinct choices and no duplicate prompts.
// All problems are reported together.
func Validate(qs []Question) error {
	if len(qs) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidBank)
	}

	var problems []error
	seen := make(map[string]int, len(qs))
	for i, q := range qs {
		if q.Category == "" {
			problems = append(problems, fmt.Errorf("question %d has no category", i))
		}
		if q.Prompt == "" {
			problems = append(problems, fmt.Errorf("question %d has empty question text", i))
		} else if first, dup := seen[q.Prompt]; dup {
			problems = append(problems, fmt.Errorf("question %d duplicates question %d: %q", i, first, q.Prompt))
		} else {
			seen[q.Prompt] = i
		}
		if q.Answer < 0 || q.Answer >= ChoiceCount {
			problems = append(problems, fmt.Errorf("question %d answer index %d out of range", i, q.Answer))
		}
		for j, c := range q.Choices {
			if strings.TrimSpace(c) == "" {
				problems = append(problems, fmt.Errorf("question %d choice %d is empty", i, j))
			}
			for k := j + 1; k < ChoiceCount; k++ {
				if c == q.Choices[k] {
					problems = append(problems, fmt.Errorf("question %d choices %d and %d are identical", i, j, k))
				}
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidBank, errors.Join(problems...))
	}
	return nil
}

// Default returns the embedded question bank.
func Default() ([]Question, error) {
	return Parse(defaultBankYAML)
}

// Load loads a question bank.
// Search order: customPath -> ~/.quiztennis/questions.yaml -> ./configs/questions.yaml -> embedded default
func Load(customPath string) ([]Question, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("questions: failed to read %s: %w", customPath, err)
		}
		qs, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("questions: %s: %w", customPath, err)
		}
		return qs, nil
	}

	// Files found on the search path are skipped when they fail to parse.
	if home, err := os.UserHomeDir(); err == nil {
		if data, err := os.ReadFile(filepath.Join(home, ".quiztennis", "questions.yaml")); err == nil {
			if qs, err := Parse(data); err == nil {
				return qs, nil
			}
		}
	}
	if data, err := os.ReadFile(filepath.Join("configs", "questions.yaml")); err == nil {
		if qs, err := Parse(data); err == nil {
			return qs, nil
		}
	}

	return Default()
}

// Categories returns the distinct categories in the bank, sorted.
func Categories(qs []Question) []string {
	set := make(map[string]struct{})
	for _, q := range qs {
		set[q.Category] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// CountByCategory returns how many questions each category holds.
func CountByCategory(qs []Question) map[string]int {
	counts := make(map[string]int)
	for _, q := range qs {
		counts[q.Category]++
	}
	return counts
}

// FilterCategory returns the questions whose category matches (case-insensitive).
// An empty category returns the bank unchanged.
func FilterCategory(qs []Question, category string) []Question {
	if category == "" {
		return qs
	}
	var out []Question
	for _, q := range qs {
		if strings.EqualFold(q.Category, category) {
			out = append(out, q)
		}
	}
	return out
}
