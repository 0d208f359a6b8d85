package config

import (
	_ "embed"
)

//go:embed defaults/tennis.yaml
var defaultTennisYAML []byte

// DefaultTennisConfig returns the default match configuration.
func DefaultTennisConfig() TennisConfig {
	return TennisConfig{
		Physics: TennisPhysics{
			BaseSpeed:       0.55,
			SlowMotion:      0.05,
			SpeedIncrement:  0.06,
			MaxSpeedScale:   2.2,
			BounceJitter:    8,
			LateralCarry:    0.4,
			MaxLateralSpeed: 40,
		},
		Rackets: TennisRackets{
			PlayerSpeed:  90,
			Reach:        9,
			StrikeWindow: 0.12,
			OffsetGain:   1.2,
		},
		Opponent: TennisOpponent{
			Skill:    0.75,
			MaxSpeed: 55,
			MaxError: 36,
		},
		Questions: TennisQuestions{
			Chance:    0.4,
			TimeLimit: 10,
		},
		Rules: TennisRules{
			GamesPerSet: 6,
			TiebreakAt:  6,
			TiebreakTo:  7,
			SetsToWin:   2,
			FirstServer: ServerPlayer,
		},
		Timing: TennisTiming{
			PointPause: 1.2,
			MaxFrame:   0.1,
		},
	}
}
