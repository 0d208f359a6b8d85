// Package quiztennis adapts the tennis engine to the platform: it loads the
// match configuration and question bank, translates input frames into engine
// input, keeps the leaderboard score and draws the court.
package quiztennis

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quiz-tennis/internal/config"
	"github.com/vovakirdan/quiz-tennis/internal/core"
	"github.com/vovakirdan/quiz-tennis/internal/questions"
	"github.com/vovakirdan/quiz-tennis/internal/registry"
	"github.com/vovakirdan/quiz-tennis/internal/tennis"
)

// Registered mode IDs.
const (
	ModeIDMatch = "tennis"
	ModeIDQuick = "tennis_quick"
)

// Leaderboard weights.
const (
	PointsPerSet     = 100
	PointsPerGame    = 10
	PointsPerCorrect = 5
)

// tapSeconds is how long a single direction key press keeps the racket
// moving. Terminals report key repeats, not key holds.
const tapSeconds = 0.1

// Mode selects the match length.
type Mode int

const (
	ModeMatch Mode = iota // Best of three sets
	ModeQuick             // One set
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	category         string
	questionsPath    string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the loaded values.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetCategory limits questions to one category. Empty means all.
func SetCategory(c string) {
	category = c
}

// SetQuestionsPath sets a custom question bank file.
func SetQuestionsPath(path string) {
	questionsPath = path
}

// SetLogger sets the logger used for match events. nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game for quiz tennis.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.TennisConfig
	match   *tennis.Match
	snap    tennis.Snapshot
	log     *log.Logger

	moveDir  int // Direction of the last tap
	moveHold int // Ticks left on the last tap
	paused   bool
	err      error // Set when the match could not start
}

// New creates a best-of-three match.
func New() *Game {
	return &Game{mode: ModeMatch}
}

// NewQuick creates a one-set match.
func NewQuick() *Game {
	return &Game{mode: ModeQuick}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeQuick {
		return ModeIDQuick
	}
	return ModeIDMatch
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeQuick {
		return "Quiz Tennis (One Set)"
	}
	return "Quiz Tennis"
}

// Reset loads configuration and questions and starts a new match on the
// title screen. Failures are kept and shown by Render.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger.WithPrefix(g.ID())
	g.match = nil
	g.snap = tennis.Snapshot{}
	g.paused = false
	g.moveDir, g.moveHold = 0, 0
	g.err = nil

	// Load match config
	cfg, err := config.LoadTennis(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultTennisConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyTennisPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeQuick {
		cfg.Rules.SetsToWin = 1
	}
	if category != "" {
		cfg.Questions.Category = category
	}
	if questionsPath != "" {
		cfg.Questions.Bank = questionsPath
	}
	g.cfg = cfg

	if err := cfg.Validate(); err != nil {
		g.fail(err)
		return
	}

	bank, err := questions.Load(cfg.Questions.Bank)
	if err != nil {
		g.fail(err)
		return
	}
	bank = questions.FilterCategory(bank, cfg.Questions.Category)
	if len(bank) == 0 {
		g.fail(fmt.Errorf("no questions in category %q", cfg.Questions.Category))
		return
	}

	deck := questions.NewDeck(bank, rand.New(rand.NewSource(runtime.Seed))) //#nosec G404 -- gameplay randomness
	m, err := tennis.NewMatch(EngineConfig(cfg), tennis.NewRNG(runtime.Seed), deck)
	if err != nil {
		g.fail(err)
		return
	}
	g.match = m
	g.snap = m.Snapshot()
	g.log.Debug("match ready", "questions", len(bank), "category", cfg.Questions.Category, "seed", runtime.Seed)
}

func (g *Game) fail(err error) {
	g.err = err
	g.log.Error("cannot start match", "err", err)
}

// Err returns why the match could not start, if it didn't.
func (g *Game) Err() error {
	return g.err
}

// EngineConfig converts file configuration to engine configuration.
func EngineConfig(c config.TennisConfig) tennis.Config {
	server := tennis.SidePlayer
	if strings.EqualFold(c.Rules.FirstServer, config.ServerCPU) {
		server = tennis.SideOpponent
	}
	return tennis.Config{
		QuestionTimeLimit: c.Questions.TimeLimit,
		QuestionChance:    c.Questions.Chance,
		BaseSpeed:         c.Physics.BaseSpeed,
		SlowMotion:        c.Physics.SlowMotion,
		OpponentSkill:     c.Opponent.Skill,

		SpeedIncrement:   c.Physics.SpeedIncrement,
		MaxSpeedScale:    c.Physics.MaxSpeedScale,
		StrikeWindow:     c.Rackets.StrikeWindow,
		RacketReach:      c.Rackets.Reach,
		PlayerSpeed:      c.Rackets.PlayerSpeed,
		OpponentMaxSpeed: c.Opponent.MaxSpeed,
		OpponentMaxError: c.Opponent.MaxError,
		BounceJitter:     c.Physics.BounceJitter,
		LateralCarry:     c.Physics.LateralCarry,
		OffsetGain:       c.Rackets.OffsetGain,
		MaxLateralSpeed:  c.Physics.MaxLateralSpeed,
		PointPause:       c.Timing.PointPause,
		MaxFrame:         c.Timing.MaxFrame,

		FirstServer: server,
		Rules: tennis.Rules{
			GamesPerSet: c.Rules.GamesPerSet,
			TiebreakAt:  c.Rules.TiebreakAt,
			TiebreakTo:  c.Rules.TiebreakTo,
			SetsToWin:   c.Rules.SetsToWin,
		},
	}
}

// Step advances the match by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.match == nil || g.match.Over() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.snap.Phase != tennis.PhaseTitle {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.snap = g.match.Tick(g.runtime.FrameSeconds(), g.translate(in))
	g.logEvents()
	return core.StepResult{State: g.State()}
}

// translate turns an input frame into engine input.
func (g *Game) translate(in core.InputFrame) tennis.Input {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		g.tap(-1)
	case right && !left:
		g.tap(1)
	}

	var out tennis.Input
	if g.moveHold > 0 {
		out.Move = g.moveDir
		g.moveHold--
	}
	out.Serve = in.Has(core.ActionServe) || (g.snap.Phase == tennis.PhaseTitle && in.Has(core.ActionConfirm))
	out.Answer, out.Answered = in.Answer()
	return out
}

func (g *Game) tap(dir int) {
	g.moveDir = dir
	g.moveHold = max(1, int(tapSeconds*float64(g.runtime.TickRate)+0.5))
}

func (g *Game) logEvents() {
	for _, e := range g.snap.Events {
		switch e.Kind {
		case tennis.EventPoint:
			g.log.Debug("point", "winner", e.Side, "reason", e.Reason, "score", g.snap.Score.String())
		case tennis.EventGame, tennis.EventSet, tennis.EventTiebreak:
			g.log.Debug(e.Kind.String(), "winner", e.Side, "score", g.snap.Score.String())
		case tennis.EventMatch:
			g.log.Info("match over", "winner", e.Side, "sets", setsText(g.snap.Score.History),
				"correct", g.snap.Stats.Correct, "asked", g.snap.Stats.QuestionsAsked)
		case tennis.EventQuestionArmed:
			g.log.Debug("question", "category", g.snap.Gate.Question.Category, "prompt", g.snap.Gate.Question.Prompt)
		case tennis.EventAnswerCorrect, tennis.EventAnswerWrong, tennis.EventAnswerTimeout:
			g.log.Debug("answer", "result", e.Kind, "remaining", g.snap.Gate.Remaining)
		case tennis.EventServe, tennis.EventStrike:
		}
	}
}

// Snapshot returns the last engine snapshot.
func (g *Game) Snapshot() tennis.Snapshot {
	return g.snap
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    LeaderboardScore(g.snap),
		GameOver: g.snap.Phase == tennis.PhaseMatchOver,
		Paused:   g.paused,
	}
}

// LeaderboardScore rates the player's match so far: sets and games won plus
// a bonus per correct answer.
func LeaderboardScore(s tennis.Snapshot) int {
	games := s.Score.Games[tennis.SidePlayer]
	for _, set := range s.Score.History {
		games += set.Player
	}
	return PointsPerSet*s.Score.Sets[tennis.SidePlayer] + PointsPerGame*games + PointsPerCorrect*s.Stats.Correct
}

// Summary describes the finished match.
func (g *Game) Summary() (core.MatchSummary, bool) {
	if g.snap.Phase != tennis.PhaseMatchOver {
		return core.MatchSummary{}, false
	}
	s := g.snap
	winner := "player"
	if s.Score.Winner == tennis.SideOpponent {
		winner = "cpu"
	}
	sets := make([]string, len(s.Score.History))
	for i, set := range s.Score.History {
		sets[i] = set.String()
	}
	return core.MatchSummary{
		Winner:         winner,
		Sets:           sets,
		PlayerSets:     s.Score.Sets[tennis.SidePlayer],
		OpponentSets:   s.Score.Sets[tennis.SideOpponent],
		PointsWon:      s.Stats.PointsWon[tennis.SidePlayer],
		PointsLost:     s.Stats.PointsWon[tennis.SideOpponent],
		QuestionsAsked: s.Stats.QuestionsAsked,
		Correct:        s.Stats.Correct,
		Duration:       time.Duration(s.Elapsed * float64(time.Second)),
	}, true
}

func setsText(history []tennis.SetScore) string {
	parts := make([]string, len(history))
	for i, set := range history {
		parts[i] = set.String()
	}
	return strings.Join(parts, " ")
}

// Register the modes with the registry
func init() {
	registry.Register(ModeIDMatch, func() registry.Game {
		return New()
	})
	registry.Register(ModeIDQuick, func() registry.Game {
		return NewQuick()
	})
}
