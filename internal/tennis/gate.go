package tennis

import "github.com/vovakirdan/quiz-tennis/internal/questions"

// GateState is the question gate lifecycle.
type GateState int

const (
	GateIdle     GateState = iota // No question pending
	GateArmed                     // Question shown, countdown running
	GateResolved                  // Wrong or timed out, racket stays locked
)

// String returns the state name.
func (s GateState) String() string {
	switch s {
	case GateIdle:
		return "IDLE"
	case GateArmed:
		return "ARMED"
	case GateResolved:
		return "RESOLVED"
	default:
		return "UNKNOWN"
	}
}

// AnswerResult is how a question was resolved.
type AnswerResult int

const (
	ResultNone AnswerResult = iota
	ResultCorrect
	ResultWrong
	ResultTimeout
)

// String returns the result name.
func (r AnswerResult) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultCorrect:
		return "correct"
	case ResultWrong:
		return "wrong"
	case ResultTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// QuestionSource supplies questions one at a time. Shuffling and avoiding
// immediate repeats are the supplier's job. ok is false when the supply is
// exhausted.
type QuestionSource interface {
	Next() (q questions.Question, ok bool)
}

// GateSnapshot is a read-only copy of the gate.
type GateSnapshot struct {
	State     GateState
	Active    bool
	Locked    bool
	Remaining float64
	Limit     float64
	Result    AnswerResult
	Question  questions.Question
}

// Gate decides whether the player must answer before the racket may strike.
type Gate struct {
	limit    float64
	chance   float64
	source   QuestionSource
	state    GateState
	locked   bool
	remain   float64
	result   AnswerResult
	question questions.Question
}

// NewGate creates an idle gate. A nil source never arms.
func NewGate(limit, chance float64, source QuestionSource) *Gate {
	return &Gate{limit: limit, chance: chance, source: source}
}

// MaybeArm rolls once against the trigger probability. On success it pulls
// a question, starts the countdown and locks the racket. A failed roll or an
// exhausted supply leaves the gate idle and the racket free.
func (g *Gate) MaybeArm(rng Source) bool {
	if g.state != GateIdle || rng == nil {
		return false
	}
	roll := rng.Float64()
	if roll >= g.chance || g.source == nil {
		return false
	}
	q, ok := g.source.Next()
	if !ok {
		return false
	}
	g.state = GateArmed
	g.locked = true
	g.remain = g.limit
	g.result = ResultNone
	g.question = q
	return true
}

// Tick runs the countdown. Remaining time stops at exactly 0 for one tick;
// the following tick resolves as a timeout.
func (g *Gate) Tick(dt float64) AnswerResult {
	if g.state != GateArmed || !(dt > 0) {
		return ResultNone
	}
	if g.remain <= 0 {
		g.resolve(ResultTimeout)
		return ResultTimeout
	}
	g.remain = max(0, g.remain-dt)
	return ResultNone
}

// SubmitAnswer resolves an armed gate. Indices outside 0-3 count as wrong.
// Answers while the gate is not armed are ignored.
func (g *Gate) SubmitAnswer(choice int) AnswerResult {
	if g.state != GateArmed {
		return ResultNone
	}
	if g.question.IsCorrect(choice) {
		g.resolve(ResultCorrect)
		return ResultCorrect
	}
	g.resolve(ResultWrong)
	return ResultWrong
}

func (g *Gate) resolve(r AnswerResult) {
	g.result = r
	if r == ResultCorrect {
		g.state = GateIdle
		g.locked = false
		return
	}
	g.state = GateResolved
}

// Active reports whether a question is on screen.
func (g *Gate) Active() bool {
	return g.state == GateArmed
}

// Locked reports whether the player's racket may not strike.
func (g *Gate) Locked() bool {
	return g.locked
}

// Clear returns the gate to idle with the racket unlocked.
func (g *Gate) Clear() {
	g.state = GateIdle
	g.locked = false
	g.remain = 0
	g.result = ResultNone
	g.question = questions.Question{}
}

// Snapshot returns a copy of the gate state.
func (g *Gate) Snapshot() GateSnapshot {
	return GateSnapshot{
		State:     g.state,
		Active:    g.Active(),
		Locked:    g.locked,
		Remaining: g.remain,
		Limit:     g.limit,
		Result:    g.result,
		Question:  g.question,
	}
}
