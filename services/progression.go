// services/progression.go - Progression rules engine
//
// Pure arithmetic shared by the quest, monster, and achievement services.
// Every derived value (level, stage, mood, hunger decay) comes from here so
// the thresholds live in exactly one place.
package services

import (
	"time"

	"taskmon/models"
)

const (
	// User levels: every 100 XP is one level, level 1 at 0 XP.
	xpPerLevel = 100

	// Monster evolution thresholds.
	stage2XP = 200
	stage3XP = 500

	// Feeding and hunger.
	feedHungerGain = 30
	maxHunger      = 100

	// Happy at 80+, neutral at 40+, sad below.
	happyHunger   = 80
	neutralHunger = 40
)

// CalculateLevel returns the user level for a cumulative XP total.
func CalculateLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/xpPerLevel + 1
}

// CalculateStage returns the evolution stage (1-3) for a monster XP total.
func CalculateStage(xp int) int {
	switch {
	case xp >= stage3XP:
		return 3
	case xp >= stage2XP:
		return 2
	default:
		return 1
	}
}

// CalculateMood returns the mood for a hunger value.
func CalculateMood(hunger int) string {
	switch {
	case hunger >= happyHunger:
		return models.MoodHappy
	case hunger >= neutralHunger:
		return models.MoodNeutral
	default:
		return models.MoodSad
	}
}

// FeedHunger returns the hunger value after one feeding, capped at 100.
func FeedHunger(hunger int) int {
	hunger += feedHungerGain
	if hunger > maxHunger {
		hunger = maxHunger
	}
	return hunger
}

// HungerDecay returns the whole hours elapsed since the monster was last
// fed. Hunger drops one point per hour; partial hours do not count, which
// makes repeated status reads within the same hour idempotent.
func HungerDecay(lastFedAt, now time.Time) int {
	if !now.After(lastFedAt) {
		return 0
	}
	return int(now.Sub(lastFedAt) / time.Hour)
}

// EvolutionInfo describes where a monster sits on the species ladder.
type EvolutionInfo struct {
	CurrentSpecies string `json:"current_species"`
	NextSpecies    string `json:"next_species,omitempty"`
	XPToNextStage  int    `json:"xp_to_next_stage"`
}

var speciesByStage = map[int]string{
	1: models.SpeciesSlime,
	2: models.SpeciesSlimeWarrior,
	3: models.SpeciesSlimeKing,
}

var xpForNextStage = map[int]int{
	1: stage2XP,
	2: stage3XP,
}

// GetEvolutionInfo returns the species labels and XP threshold around the
// given stage. At max stage the next species is empty and the threshold 0.
func GetEvolutionInfo(stage int) EvolutionInfo {
	current, ok := speciesByStage[stage]
	if !ok {
		current = models.SpeciesSlime
	}

	info := EvolutionInfo{CurrentSpecies: current}
	if stage < 3 {
		info.NextSpecies = speciesByStage[stage+1]
		info.XPToNextStage = xpForNextStage[stage]
	}
	return info
}
