// Package config provides YAML-based match configuration loading and
// difficulty presets for quiz tennis.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// TennisConfig contains all configuration for a quiz tennis match.
type TennisConfig struct {
	Physics   TennisPhysics   `yaml:"physics"`
	Rackets   TennisRackets   `yaml:"rackets"`
	Opponent  TennisOpponent  `yaml:"opponent"`
	Questions TennisQuestions `yaml:"questions"`
	Rules     TennisRules     `yaml:"rules"`
	Timing    TennisTiming    `yaml:"timing"`
}

// TennisPhysics defines ball physics parameters.
type TennisPhysics struct {
	BaseSpeed       float64 `yaml:"base_speed"`  // Court lengths per second
	SlowMotion      float64 `yaml:"slow_motion"` // Speed factor while a question is up
	SpeedIncrement  float64 `yaml:"speed_increment"`
	MaxSpeedScale   float64 `yaml:"max_speed_scale"`
	BounceJitter    float64 `yaml:"bounce_jitter"`
	LateralCarry    float64 `yaml:"lateral_carry"`
	MaxLateralSpeed float64 `yaml:"max_lateral_speed"`
}

// TennisRackets defines racket parameters.
type TennisRackets struct {
	PlayerSpeed  float64 `yaml:"player_speed"`
	Reach        float64 `yaml:"reach"`
	StrikeWindow float64 `yaml:"strike_window"`
	OffsetGain   float64 `yaml:"offset_gain"`
}

// TennisOpponent defines the CPU opponent.
type TennisOpponent struct {
	Skill    float64 `yaml:"skill"` // 0.0 = wild, 1.0 = perfect
	MaxSpeed float64 `yaml:"max_speed"`
	MaxError float64 `yaml:"max_error"`
}

// TennisQuestions defines the question gate.
type TennisQuestions struct {
	Chance    float64 `yaml:"chance"`     // Probability per net crossing
	TimeLimit float64 `yaml:"time_limit"` // Seconds
	Category  string  `yaml:"category"`   // Empty for all categories
	Bank      string  `yaml:"bank"`       // Custom question bank path
}

// TennisRules defines match length.
type TennisRules struct {
	GamesPerSet int    `yaml:"games_per_set"`
	TiebreakAt  int    `yaml:"tiebreak_at"`
	TiebreakTo  int    `yaml:"tiebreak_to"`
	SetsToWin   int    `yaml:"sets_to_win"`
	FirstServer string `yaml:"first_server"` // "player" or "cpu"
}

// TennisTiming defines frame timing.
type TennisTiming struct {
	PointPause float64 `yaml:"point_pause"`
	MaxFrame   float64 `yaml:"max_frame"`
}

// Server names accepted by first_server.
const (
	ServerPlayer = "player"
	ServerCPU    = "cpu"
)

// Validate reports every setting the engine would reject.
func (c TennisConfig) Validate() error {
	var errs []error
	check := func(ok bool, field string, v any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s: invalid value %v", field, v))
		}
	}

	check(c.Physics.BaseSpeed > 0, "physics.base_speed", c.Physics.BaseSpeed)
	check(c.Physics.SlowMotion > 0 && c.Physics.SlowMotion < 1, "physics.slow_motion", c.Physics.SlowMotion)
	check(c.Physics.SpeedIncrement >= 0, "physics.speed_increment", c.Physics.SpeedIncrement)
	check(c.Physics.MaxSpeedScale >= 1, "physics.max_speed_scale", c.Physics.MaxSpeedScale)
	check(c.Physics.BounceJitter >= 0, "physics.bounce_jitter", c.Physics.BounceJitter)
	check(c.Physics.LateralCarry >= 0 && c.Physics.LateralCarry <= 1, "physics.lateral_carry", c.Physics.LateralCarry)
	check(c.Physics.MaxLateralSpeed > 0, "physics.max_lateral_speed", c.Physics.MaxLateralSpeed)

	check(c.Rackets.PlayerSpeed > 0, "rackets.player_speed", c.Rackets.PlayerSpeed)
	check(c.Rackets.Reach > 0, "rackets.reach", c.Rackets.Reach)
	check(c.Rackets.StrikeWindow > 0 && c.Rackets.StrikeWindow < 0.5, "rackets.strike_window", c.Rackets.StrikeWindow)
	check(c.Rackets.OffsetGain >= 0, "rackets.offset_gain", c.Rackets.OffsetGain)

	check(c.Opponent.Skill >= 0 && c.Opponent.Skill <= 1, "opponent.skill", c.Opponent.Skill)
	check(c.Opponent.MaxSpeed > 0, "opponent.max_speed", c.Opponent.MaxSpeed)
	check(c.Opponent.MaxError >= 0, "opponent.max_error", c.Opponent.MaxError)

	check(c.Questions.Chance >= 0 && c.Questions.Chance <= 1, "questions.chance", c.Questions.Chance)
	check(c.Questions.TimeLimit > 0, "questions.time_limit", c.Questions.TimeLimit)

	check(c.Rules.GamesPerSet >= 1, "rules.games_per_set", c.Rules.GamesPerSet)
	check(c.Rules.TiebreakAt >= c.Rules.GamesPerSet, "rules.tiebreak_at", c.Rules.TiebreakAt)
	check(c.Rules.TiebreakTo >= 1, "rules.tiebreak_to", c.Rules.TiebreakTo)
	check(c.Rules.SetsToWin >= 1, "rules.sets_to_win", c.Rules.SetsToWin)
	server := strings.ToLower(c.Rules.FirstServer)
	check(server == ServerPlayer || server == ServerCPU, "rules.first_server", c.Rules.FirstServer)

	check(c.Timing.PointPause >= 0, "timing.point_pause", c.Timing.PointPause)
	check(c.Timing.MaxFrame > 0, "timing.max_frame", c.Timing.MaxFrame)

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted difficulty names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
