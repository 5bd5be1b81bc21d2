package quiz

// LevelThresholds maps level-1 to the cumulative XP required to reach
// that level. Level 1 starts at 0 XP; level 15 (Animal Master) is the cap.
var LevelThresholds = []int{
	0,     // Level 1
	100,   // Level 2
	250,   // Level 3
	500,   // Level 4
	1000,  // Level 5
	2000,  // Level 6
	3500,  // Level 7
	5500,  // Level 8
	8000,  // Level 9
	12000, // Level 10
	17000, // Level 11
	23000, // Level 12
	30000, // Level 13
	40000, // Level 14
	50000, // Level 15
}

// LevelNames is the parallel title table.
var LevelNames = []string{
	"Curious Cub",
	"Eager Explorer",
	"Wildlife Watcher",
	"Nature Novice",
	"Animal Apprentice",
	"Safari Seeker",
	"Creature Connoisseur",
	"Beast Expert",
	"Wildlife Wizard",
	"Nature Navigator",
	"Animal Ace",
	"Fauna Fanatic",
	"Creature Champion",
	"Wildlife Warrior",
	"Animal Master",
}

// CalculateLevel returns the highest level whose threshold is at most xp.
// Monotonic in xp; never below 1.
func CalculateLevel(xp int) int {
	for i := len(LevelThresholds) - 1; i >= 0; i-- {
		if xp >= LevelThresholds[i] {
			return i + 1
		}
	}
	return 1
}

// XPForNextLevel returns the cumulative XP needed to reach level+1, or
// the final threshold when already at the cap.
func XPForNextLevel(level int) int {
	if level >= len(LevelThresholds) {
		return LevelThresholds[len(LevelThresholds)-1]
	}
	return LevelThresholds[level]
}

// LevelName returns the title for a level, clamped to the last entry.
func LevelName(level int) string {
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i >= len(LevelNames) {
		i = len(LevelNames) - 1
	}
	return LevelNames[i]
}
