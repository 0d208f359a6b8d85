package tennis

import (
	"fmt"
	"math"

	"github.com/vovakirdan/quiz-tennis/internal/core"
)

// Phase is the match state machine's current phase.
type Phase int

const (
	PhaseTitle         Phase = iota // Waiting for the first serve
	PhaseServing                    // Ball placed on the server's baseline
	PhaseCPUReturn                  // Ball travelling toward, or struck by, the opponent
	PhaseQuestionCheck              // Ball crossed the net toward the player
	PhaseQuestionTime               // Question on screen, ball in slow motion
	PhaseRally                      // Ball heading to the player, racket free
	PhasePointScored                // Point awarded, result on screen
	PhaseMatchOver                  // Terminal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "TITLE"
	case PhaseServing:
		return "SERVING"
	case PhaseCPUReturn:
		return "CPU_RETURN"
	case PhaseQuestionCheck:
		return "QUESTION_CHECK"
	case PhaseQuestionTime:
		return "QUESTION_TIME"
	case PhaseRally:
		return "RALLY"
	case PhasePointScored:
		return "POINT_SCORED"
	case PhaseMatchOver:
		return "MATCH_OVER"
	default:
		return "UNKNOWN"
	}
}

// Input is the player's input for one tick.
type Input struct {
	Move     int  // -1 left, 0 none, 1 right
	Serve    bool // Serve pressed this tick
	Answer   int  // Choice index, valid when Answered
	Answered bool
}

// Racket is a racket's lateral position. Only the player's racket is ever
// locked.
type Racket struct {
	Position float64
	Locked   bool
}

// EventKind identifies a match event.
type EventKind int

const (
	EventServe EventKind = iota
	EventStrike
	EventQuestionArmed
	EventAnswerCorrect
	EventAnswerWrong
	EventAnswerTimeout
	EventPoint
	EventGame
	EventTiebreak
	EventSet
	EventMatch
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventServe:
		return "serve"
	case EventStrike:
		return "strike"
	case EventQuestionArmed:
		return "question"
	case EventAnswerCorrect:
		return "correct"
	case EventAnswerWrong:
		return "wrong"
	case EventAnswerTimeout:
		return "timeout"
	case EventPoint:
		return "point"
	case EventGame:
		return "game"
	case EventTiebreak:
		return "tiebreak"
	case EventSet:
		return "set"
	case EventMatch:
		return "match"
	default:
		return "unknown"
	}
}

// PointReason explains why a point ended.
type PointReason int

const (
	ReasonNone PointReason = iota
	ReasonOpponentMissed
	ReasonPlayerMissed
	ReasonOut
	ReasonWrongAnswer
	ReasonTimeout
)

// String returns a short description of the reason.
func (r PointReason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonOpponentMissed:
		return "CPU missed"
	case ReasonPlayerMissed:
		return "missed the ball"
	case ReasonOut:
		return "out"
	case ReasonWrongAnswer:
		return "wrong answer"
	case ReasonTimeout:
		return "time's up"
	default:
		return "unknown"
	}
}

// Event is something that happened during a tick.
type Event struct {
	Kind   EventKind
	Side   Side
	Reason PointReason // Set for EventPoint
}

// String formats the event for logs.
func (e Event) String() string {
	if e.Kind == EventPoint {
		return fmt.Sprintf("%s %s (%s)", e.Kind, e.Side, e.Reason)
	}
	return fmt.Sprintf("%s %s", e.Kind, e.Side)
}

// Stats are running match statistics.
type Stats struct {
	PointsWon      [2]int
	QuestionsAsked int
	Correct        int
	Wrong          int
	TimedOut       int // Includes questions the ball outran
	Strikes        int
	LongestRally   int // Most strikes in a single point
}

// Match owns the whole simulation: phase, ball, rackets, gate and score.
// It is created at match start and discarded once the match is over.
// A Match is not safe for concurrent use.
type Match struct {
	cfg      Config
	rng      Source
	physics  *Physics
	opponent *Opponent
	gate     *Gate

	phase     Phase
	score     Score
	player    Racket
	cpu       Racket
	pause     float64
	rally     int
	rolled    bool // Question roll already taken this rally
	lastPoint Event
	stats     Stats
	elapsed   float64
	events    []Event
}

// NewMatch validates cfg and creates a match on the title screen. rng drives
// every random draw; source may be nil to play without questions.
func NewMatch(cfg Config, rng Source, source QuestionSource) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	m := &Match{
		cfg:      cfg,
		rng:      rng,
		physics:  NewPhysics(cfg.Physics(), rng),
		opponent: NewOpponent(cfg.OpponentMaxError, rng),
		gate:     NewGate(cfg.QuestionTimeLimit, cfg.QuestionChance, source),
		phase:    PhaseTitle,
		score:    NewScore(cfg.FirstServer),
		player:   Racket{Position: CourtCenter},
		cpu:      Racket{Position: CourtCenter},
	}
	m.physics.Reset(cfg.FirstServer)
	return m, nil
}

// Config returns the match configuration.
func (m *Match) Config() Config {
	return m.cfg
}

// Phase returns the current phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// Over reports whether the match has finished.
func (m *Match) Over() bool {
	return m.phase == PhaseMatchOver
}

// Tick advances the match by dt seconds. dt is clamped to MaxFrame; ticks
// with dt <= 0 and ticks after the match is over change nothing.
func (m *Match) Tick(dt float64, in Input) Snapshot {
	m.events = m.events[:0]
	if m.phase == PhaseMatchOver || !(dt > 0) {
		return m.Snapshot()
	}
	dt = math.Min(dt, m.cfg.MaxFrame)
	if m.phase != PhaseTitle {
		m.elapsed += dt
	}

	switch m.phase {
	case PhaseTitle:
		if in.Serve {
			m.startServe()
		}
	case PhaseServing:
		m.phase = PhaseCPUReturn
	case PhaseCPUReturn, PhaseQuestionTime, PhaseRally:
		m.substep(dt, in)
	case PhaseQuestionCheck:
		m.tickQuestionCheck()
	case PhasePointScored:
		m.pause -= dt
		if m.pause <= pauseEpsilon || in.Serve {
			m.startServe()
		}
	case PhaseMatchOver:
	}
	return m.Snapshot()
}

// pauseEpsilon absorbs the rounding left after subtracting frame times.
const pauseEpsilon = 1e-9

// substep splits dt so the ball moves at most half a strike window in depth
// per step. It stops early once the phase changes.
func (m *Match) substep(dt float64, in Input) {
	phase := m.phase
	travel := m.physics.EffectiveSpeed(phase == PhaseQuestionTime) * math.Abs(m.physics.Ball().DDepth) * dt
	n := max(1, int(math.Ceil(travel/(m.cfg.StrikeWindow/2))))
	step := dt / float64(n)

	for i := 0; i < n && m.phase == phase; i++ {
		switch phase {
		case PhaseCPUReturn:
			m.tickCPUReturn(step, in)
		case PhaseQuestionTime:
			m.tickQuestionTime(step, in)
			in.Answered = false
		case PhaseRally:
			m.tickRally(step, in)
		case PhaseTitle, PhaseServing, PhaseQuestionCheck, PhasePointScored, PhaseMatchOver:
		}
	}
}

func (m *Match) startServe() {
	m.phase = PhaseServing
	m.physics.Reset(m.score.Serving)
	m.player = Racket{Position: CourtCenter}
	m.cpu = Racket{Position: CourtCenter}
	m.gate.Clear()
	m.rally = 0
	m.rolled = false
	m.pause = 0
	m.emit(Event{Kind: EventServe, Side: m.score.Serving})
}

func (m *Match) tickCPUReturn(dt float64, in Input) {
	m.moveRackets(dt, in)
	ev := m.physics.Tick(dt, false)
	switch {
	case ev == BallCrossedNetTowardPlayer:
		m.phase = PhaseQuestionCheck
	case ev.Terminal():
		m.endRally(ev)
	default:
		m.tryStrike(SideOpponent)
	}
}

// tickQuestionCheck rolls for a question on the first crossing of a rally.
// Later crossings go straight to the rally without drawing.
func (m *Match) tickQuestionCheck() {
	if m.rolled {
		m.phase = PhaseRally
		return
	}
	m.rolled = true
	if m.gate.MaybeArm(m.rng) {
		m.stats.QuestionsAsked++
		m.phase = PhaseQuestionTime
		m.emit(Event{Kind: EventQuestionArmed, Side: SidePlayer})
		return
	}
	m.phase = PhaseRally
}

func (m *Match) tickQuestionTime(dt float64, in Input) {
	m.moveRackets(dt, in)

	var res AnswerResult
	if in.Answered {
		res = m.gate.SubmitAnswer(in.Answer)
	} else {
		res = m.gate.Tick(dt)
	}

	switch res {
	case ResultCorrect:
		m.stats.Correct++
		m.emit(Event{Kind: EventAnswerCorrect, Side: SidePlayer})
		m.phase = PhaseRally
		return
	case ResultWrong:
		m.stats.Wrong++
		m.emit(Event{Kind: EventAnswerWrong, Side: SidePlayer})
		m.scorePoint(SideOpponent, ReasonWrongAnswer)
		return
	case ResultTimeout:
		m.stats.TimedOut++
		m.emit(Event{Kind: EventAnswerTimeout, Side: SidePlayer})
		m.scorePoint(SideOpponent, ReasonTimeout)
		return
	case ResultNone:
	}

	if ev := m.physics.Tick(dt, true); ev.Terminal() {
		// The ball outran the question; it counts as unanswered.
		m.stats.TimedOut++
		m.gate.Clear()
		m.endRally(ev)
	}
}

func (m *Match) tickRally(dt float64, in Input) {
	m.moveRackets(dt, in)
	if ev := m.physics.Tick(dt, false); ev.Terminal() {
		m.endRally(ev)
		return
	}
	if m.tryStrike(SidePlayer) {
		m.phase = PhaseCPUReturn
	}
}

// moveRackets steers the player from input and the opponent toward the ball
// while it is coming its way, back to the centre otherwise.
func (m *Match) moveRackets(dt float64, in Input) {
	move := float64(core.Clamp(in.Move, -1, 1))
	m.player.Position = core.ClampF(m.player.Position+move*m.cfg.PlayerSpeed*dt, CourtMin, CourtMax)

	ball := m.physics.Ball()
	target := CourtCenter
	if ball.DDepth > 0 {
		target = m.opponent.ComputeTarget(ball.Lateral, m.cfg.OpponentSkill)
	}
	speed := m.cfg.OpponentMaxSpeed * (0.5 + 0.5*m.cfg.OpponentSkill)
	m.cpu.Position = m.opponent.Advance(m.cpu.Position, target, dt, speed)
}

// tryStrike hits the ball if it is in actor's window and within reach of the
// racket.
func (m *Match) tryStrike(actor Side) bool {
	racket := m.cpu
	if actor == SidePlayer {
		if m.gate.Locked() {
			return false
		}
		racket = m.player
	}
	if !m.physics.InStrikeWindow(actor) {
		return false
	}
	diff := m.physics.Ball().Lateral - racket.Position
	if math.Abs(diff) > m.cfg.RacketReach {
		return false
	}
	if !m.physics.BounceOffRacket(actor, diff*m.cfg.OffsetGain) {
		return false
	}
	m.rally++
	m.stats.Strikes++
	m.stats.LongestRally = max(m.stats.LongestRally, m.rally)
	m.emit(Event{Kind: EventStrike, Side: actor})
	return true
}

func (m *Match) endRally(ev BallEvent) {
	switch ev {
	case BallReachedPlayerEnd:
		m.scorePoint(SideOpponent, ReasonPlayerMissed)
	case BallReachedOpponentEnd:
		m.scorePoint(SidePlayer, ReasonOpponentMissed)
	case BallOutOfBounds:
		m.scorePoint(m.physics.Ball().LastHitBy.Other(), ReasonOut)
	case BallInFlight, BallCrossedNetTowardPlayer:
	}
}

func (m *Match) scorePoint(winner Side, reason PointReason) {
	score, out := AwardPoint(m.score, m.cfg.Rules, winner)
	if out.Ignored {
		return
	}
	m.score = score
	m.stats.PointsWon[winner]++
	m.lastPoint = Event{Kind: EventPoint, Side: winner, Reason: reason}
	m.emit(m.lastPoint)
	if out.GameWon {
		m.emit(Event{Kind: EventGame, Side: winner})
	}
	if out.EnteredTiebreak {
		m.emit(Event{Kind: EventTiebreak, Side: winner})
	}
	if out.SetWon {
		m.emit(Event{Kind: EventSet, Side: winner})
	}
	if out.MatchWon {
		m.emit(Event{Kind: EventMatch, Side: winner})
		m.phase = PhaseMatchOver
		return
	}
	m.phase = PhasePointScored
	m.pause = m.cfg.PointPause
}

func (m *Match) emit(e Event) {
	m.events = append(m.events, e)
}
