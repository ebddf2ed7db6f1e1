package models

// Level is the difficulty tier served to a student, derived from points.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// Breakpoints between difficulty tiers.
const (
	MediumPointsThreshold = 1000
	HardPointsThreshold   = 1500
)

type BadgeRank struct {
	Name      string `bson:"name" json:"name"`
	MinPoints int    `bson:"min_points" json:"min_points"`
	Emoji     string `bson:"emoji" json:"emoji"`
}

// BadgeRanks is ordered by ascending threshold, first entry always satisfied.
var BadgeRanks = []BadgeRank{
	{Name: "씨앗", MinPoints: 0, Emoji: "🌰"},
	{Name: "새싹", MinPoints: 500, Emoji: "🌱"},
	{Name: "꽃봉오리", MinPoints: 1500, Emoji: "🌸"},
	{Name: "열매", MinPoints: 3000, Emoji: "🍎"},
}

// StudentLevelMapping translates a tier into the level number the generation
// gateway is prompted with.
var StudentLevelMapping = map[Level]int{
	LevelEasy:   1,
	LevelMedium: 5,
	LevelHard:   10,
}

// ResolveBadge returns the highest rank whose threshold is <= points. Points
// exactly on a threshold belong to the higher rank.
func ResolveBadge(points int) BadgeRank {
	current := BadgeRanks[0]
	for _, rank := range BadgeRanks[1:] {
		if points >= rank.MinPoints {
			current = rank
		}
	}
	return current
}

// ResolveLevel maps accumulated points onto a difficulty tier.
func ResolveLevel(points int) Level {
	switch {
	case points < MediumPointsThreshold:
		return LevelEasy
	case points < HardPointsThreshold:
		return LevelMedium
	default:
		return LevelHard
	}
}

// StudentLevel returns the numeric level sent to the generation gateway.
func StudentLevel(points int) int {
	return StudentLevelMapping[ResolveLevel(points)]
}
