// Package questions provides the multiple-choice knowledge bank that gates
// the player's racket, plus the shuffled deck the match pulls from.
package questions

// ChoiceCount is the number of answer choices every question carries.
const ChoiceCount = 4

// Question is one multiple-choice knowledge check.
type Question struct {
	Category string
	Prompt   string
	Choices  [ChoiceCount]string
	Answer   int // Index of the correct choice, 0..3
}

// IsCorrect reports whether choice is the correct answer.
// Indices outside 0..3 are never correct.
func (q Question) IsCorrect(choice int) bool {
	if choice < 0 || choice >= ChoiceCount {
		return false
	}
	return choice == q.Answer
}

// CorrectText returns the text of the correct choice.
func (q Question) CorrectText() string {
	if q.Answer < 0 || q.Answer >= ChoiceCount {
		return ""
	}
	return q.Choices[q.Answer]
}
