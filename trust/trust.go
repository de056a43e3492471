// Package trust computes trust levels and XP progression for members.
package trust

import (
	"github.com/kizuna-community/kizuna-api/schema"
)

// XPLevels are the cumulative XP thresholds for each level.
var XPLevels = []int64{0, 500, 1500, 3500, 7000, 15000}

// Level derives a member's trust level (1-5) from verification status,
// completed connections and average rating.
func Level(member *schema.Member) int {
	level := 1

	if member.Verified {
		level = 2
	}
	if member.TotalConnections >= 10 && member.AverageRating >= 4.0 {
		level = 3
	}
	if member.TotalConnections >= 50 && member.AverageRating >= 4.5 {
		level = 4
	}
	if member.TotalConnections >= 100 && member.AverageRating >= 4.8 {
		level = 5
	}

	return level
}

// Progression describes where a member sits between XP levels.
type Progression struct {
	CurrentLevel int     `json:"current_level"`
	NextLevelXP  int64   `json:"next_level_xp"`
	Progress     float64 `json:"progress"`
}

// NextLevel returns the member's current XP level, the XP needed for the
// next one and the progress percentage toward it, clamped to 100.
func NextLevel(currentXP int64) Progression {
	currentLevel := 1
	for i := 1; i < len(XPLevels); i++ {
		if currentXP >= XPLevels[i] {
			currentLevel = i + 1
		} else {
			break
		}
	}

	var nextLevelXP int64
	if currentLevel < len(XPLevels) {
		nextLevelXP = XPLevels[currentLevel]
	} else {
		nextLevelXP = XPLevels[len(XPLevels)-1]
	}

	var prevLevelXP int64
	if currentLevel-1 < len(XPLevels) {
		prevLevelXP = XPLevels[currentLevel-1]
	}

	progress := 100.0
	if nextLevelXP > prevLevelXP {
		progress = float64(currentXP-prevLevelXP) / float64(nextLevelXP-prevLevelXP) * 100
	}
	if progress > 100 {
		progress = 100
	}

	return Progression{
		CurrentLevel: currentLevel,
		NextLevelXP:  nextLevelXP,
		Progress:     progress,
	}
}
