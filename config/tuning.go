package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tuningFile mirrors the package-level tuning blocks. Absent sections keep
// their current values.
type tuningFile struct {
	Sim          *SimConfig        `yaml:"sim"`
	Physics      *PhysicsConfig    `yaml:"physics"`
	Locomotion   *LocomotionConfig `yaml:"locomotion"`
	Combat       *CombatConfig     `yaml:"combat"`
	Ball         *BallConfig       `yaml:"ball"`
	PlayerHealth *HealthConfig     `yaml:"player_health"`
	Enemy        *enemyTuning      `yaml:"enemy"`
	Breakable    *BreakableConfig  `yaml:"breakable"`
	Lever        *LeverConfig      `yaml:"lever"`
}

type enemyTuning struct {
	HysteresisMultiplier *float64            `yaml:"hysteresis_multiplier"`
	DefaultType          *string             `yaml:"default_type"`
	Types                map[string]yaml.Node `yaml:"types"`
}

// LoadTuning reads a YAML override file and applies it.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("apply tuning %s: %w", path, err)
	}
	return nil
}

// ApplyTuning decodes YAML overrides on top of the current values. Keys that
// are not present keep their values. On error nothing is changed.
func ApplyTuning(data []byte) error {
	sim := Sim
	physics := Physics
	loco := Locomotion
	combat := Combat
	ball := Ball
	health := PlayerHealth
	breakable := Breakable
	lever := Lever

	doc := tuningFile{
		Sim:          &sim,
		Physics:      &physics,
		Locomotion:   &loco,
		Combat:       &combat,
		Ball:         &ball,
		PlayerHealth: &health,
		Breakable:    &breakable,
		Lever:        &lever,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode tuning: %w", err)
	}

	enemy := Enemy
	enemy.Types = make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for k, v := range Enemy.Types {
		enemy.Types[k] = v
	}
	if doc.Enemy != nil {
		if doc.Enemy.HysteresisMultiplier != nil {
			enemy.HysteresisMultiplier = *doc.Enemy.HysteresisMultiplier
		}
		if doc.Enemy.DefaultType != nil {
			enemy.DefaultType = *doc.Enemy.DefaultType
		}
		for name, node := range doc.Enemy.Types {
			t, ok := enemy.Types[name]
			if !ok {
				t = enemy.Types[enemy.DefaultType]
				t.Name = name
			}
			if err := node.Decode(&t); err != nil {
				return fmt.Errorf("decode enemy type %s: %w", name, err)
			}
			enemy.Types[name] = t
		}
	}
	if _, ok := enemy.Types[enemy.DefaultType]; !ok {
		return fmt.Errorf("default enemy type %q is not defined", enemy.DefaultType)
	}

	Sim = sim
	Physics = physics
	Locomotion = loco
	Combat = combat
	Ball = ball
	PlayerHealth = health
	Enemy = enemy
	Breakable = breakable
	Lever = lever
	return nil
}
