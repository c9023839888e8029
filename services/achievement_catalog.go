// services/achievement_catalog.go - Achievement catalog
//
// The catalog is a static table of declarative conditions (metric +
// threshold) instead of per-achievement closures, so definitions can be
// evaluated and tested by one small interpreter. Order is an explicit field;
// within a category a definition only becomes visible and checkable once the
// one before it is unlocked.
package services

// Metric names an aggregate of persisted user state that achievement
// conditions compare against.
type Metric string

const (
	MetricQuestsCompleted    Metric = "quests_completed"
	MetricStreak             Metric = "streak"
	MetricLevel              Metric = "level"
	MetricEvolvedMonsters    Metric = "evolved_monsters"
	MetricAllMonstersEvolved Metric = "all_monsters_evolved"
	MetricDistinctSpecies    Metric = "distinct_species"
)

// Achievement categories, in display order.
const (
	CategoryQuests     = "quests"
	CategoryStreak     = "streak"
	CategoryEvolution  = "evolution"
	CategoryLevel      = "level"
	CategoryCollection = "collection"
)

// AchievementDefinition describes one unlockable milestone. Condition is
// "metric >= threshold".
type AchievementDefinition struct {
	Slug                string `json:"slug"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	Category            string `json:"category"`
	Order               int    `json:"order"`
	MonsterPointsReward int    `json:"monster_points_reward"`
	Metric              Metric `json:"-"`
	Threshold           int    `json:"-"`
}

// speciesCatalog lists every species a monster can be. The collection
// achievement requires owning one of each.
var speciesCatalog = []string{"slime", "dragon", "cat", "dog"}

// AchievementCatalog is the fixed catalog evaluated by CheckAllAchievements.
var AchievementCatalog = []AchievementDefinition{
	// Quest milestones
	{
		Slug:                "first_quest_done",
		Title:               "First Steps",
		Description:         "Complete your first quest",
		Category:            CategoryQuests,
		Order:               1,
		MonsterPointsReward: 10,
		Metric:              MetricQuestsCompleted,
		Threshold:           1,
	},
	{
		Slug:                "5_quests_completed",
		Title:               "Quest Apprentice",
		Description:         "Complete 5 quests",
		Category:            CategoryQuests,
		Order:               2,
		MonsterPointsReward: 25,
		Metric:              MetricQuestsCompleted,
		Threshold:           5,
	},
	{
		Slug:                "10_quests_completed",
		Title:               "Quest Master",
		Description:         "Complete 10 quests",
		Category:            CategoryQuests,
		Order:               3,
		MonsterPointsReward: 50,
		Metric:              MetricQuestsCompleted,
		Threshold:           10,
	},
	{
		Slug:                "25_quests_completed",
		Title:               "Quest Legend",
		Description:         "Complete 25 quests",
		Category:            CategoryQuests,
		Order:               4,
		MonsterPointsReward: 100,
		Metric:              MetricQuestsCompleted,
		Threshold:           25,
	},

	// Login streak milestones
	{
		Slug:                "3_day_streak",
		Title:               "On a Roll",
		Description:         "Maintain a 3-day login streak",
		Category:            CategoryStreak,
		Order:               1,
		MonsterPointsReward: 15,
		Metric:              MetricStreak,
		Threshold:           3,
	},
	{
		Slug:                "7_day_streak",
		Title:               "Week Warrior",
		Description:         "Maintain a 7-day streak",
		Category:            CategoryStreak,
		Order:               2,
		MonsterPointsReward: 30,
		Metric:              MetricStreak,
		Threshold:           7,
	},
	{
		Slug:                "30_day_streak",
		Title:               "Monthly Devotion",
		Description:         "Maintain a 30-day streak",
		Category:            CategoryStreak,
		Order:               3,
		MonsterPointsReward: 150,
		Metric:              MetricStreak,
		Threshold:           30,
	},

	// Monster evolution milestones
	{
		Slug:                "monster_evolution",
		Title:               "Evolution Champion",
		Description:         "Evolve your first monster to stage 2",
		Category:            CategoryEvolution,
		Order:               1,
		MonsterPointsReward: 40,
		Metric:              MetricEvolvedMonsters,
		Threshold:           1,
	},
	{
		Slug:                "second_evolution",
		Title:               "Twin Evolvers",
		Description:         "Evolve a second monster to stage 2",
		Category:            CategoryEvolution,
		Order:               2,
		MonsterPointsReward: 60,
		Metric:              MetricEvolvedMonsters,
		Threshold:           2,
	},
	{
		Slug:                "third_evolution",
		Title:               "Evolution Trio",
		Description:         "Evolve a third monster to stage 2",
		Category:            CategoryEvolution,
		Order:               3,
		MonsterPointsReward: 80,
		Metric:              MetricEvolvedMonsters,
		Threshold:           3,
	},
	{
		Slug:                "evolution_master",
		Title:               "Evolution Master",
		Description:         "Evolve every monster you own to stage 2",
		Category:            CategoryEvolution,
		Order:               4,
		MonsterPointsReward: 120,
		Metric:              MetricAllMonstersEvolved,
		Threshold:           1,
	},

	// Level milestones
	{
		Slug:                "level_5",
		Title:               "Rising Hero",
		Description:         "Reach level 5",
		Category:            CategoryLevel,
		Order:               1,
		MonsterPointsReward: 20,
		Metric:              MetricLevel,
		Threshold:           5,
	},
	{
		Slug:                "level_10",
		Title:               "Level 10 Hero",
		Description:         "Reach level 10",
		Category:            CategoryLevel,
		Order:               2,
		MonsterPointsReward: 50,
		Metric:              MetricLevel,
		Threshold:           10,
	},
	{
		Slug:                "level_20",
		Title:               "Seasoned Adventurer",
		Description:         "Reach level 20",
		Category:            CategoryLevel,
		Order:               3,
		MonsterPointsReward: 100,
		Metric:              MetricLevel,
		Threshold:           20,
	},

	// Species collection
	{
		Slug:                "species_collector",
		Title:               "Monster Collector",
		Description:         "Own one monster of every species",
		Category:            CategoryCollection,
		Order:               1,
		MonsterPointsReward: 200,
		Metric:              MetricDistinctSpecies,
		Threshold:           len(speciesCatalog),
	},
}

// GetAchievementDefinition looks up a catalog entry by slug.
func GetAchievementDefinition(slug string) (AchievementDefinition, bool) {
	for _, def := range AchievementCatalog {
		if def.Slug == slug {
			return def, true
		}
	}
	return AchievementDefinition{}, false
}
