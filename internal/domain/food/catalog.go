// Package food contains the static food catalog and the scoring tables the
// recommendation engine runs against. All tables are immutable
// configuration loaded once at process start.
package food

import "github.com/mrunal1324/FOMO---Food-Mood/internal/domain/mood"

// Candidate is an ephemeral scored food computed per request. Score has no
// meaning outside the ranking step.
type Candidate struct {
	Name  string
	Score float64
}

// Catalog maps each mood category to its five fixed foods. The catalog is
// closed: moods outside it (calm included) degrade to the neutral entry at
// scoring time.
var Catalog = map[mood.Mood][]string{
	mood.MoodHappy: {
		"Colorful Mediterranean salad with feta and olives",
		"Fresh fruit smoothie bowl with granola",
		"Light pasta primavera with fresh vegetables",
		"Grilled chicken with mango salsa",
		"Rainbow sushi roll",
	},
	mood.MoodSad: {
		"Creamy mac and cheese",
		"Warm chicken noodle soup",
		"Chocolate lava cake",
		"Mashed potatoes with gravy",
		"Warm bread with butter",
	},
	mood.MoodEnergetic: {
		"Quinoa power bowl with grilled chicken",
		"Whole grain toast with avocado and eggs",
		"Fresh vegetable stir-fry with tofu",
		"Protein-rich Greek yogurt parfait",
		"Grilled salmon with brown rice",
	},
	mood.MoodTired: {
		"Energy-boosting green smoothie",
		"Mixed nuts and dried fruits trail mix",
		"Green tea with honey",
		"Banana and peanut butter toast",
		"Dark chocolate covered almonds",
	},
	mood.MoodStressed: {
		"Calming chamomile tea with honey",
		"Dark chocolate with sea salt",
		"Lavender-infused cookies",
		"Green tea and matcha latte",
		"Anti-stress berry smoothie",
	},
	mood.MoodRomantic: {
		"Classic spaghetti carbonara",
		"Chocolate-covered strawberries",
		"French onion soup",
		"Red wine braised beef",
		"Crème brûlée",
	},
	mood.MoodProductive: {
		"Brain-boosting blueberry oatmeal",
		"Grilled chicken with quinoa",
		"Salmon with sweet potato",
		"Greek yogurt with granola",
		"Mixed berry protein smoothie",
	},
	mood.MoodLazy: {
		"One-pot pasta dish",
		"Sheet pan chicken and vegetables",
		"5-minute microwave mug cake",
		"Quick tuna salad wrap",
		"Easy breakfast burrito",
	},
	mood.MoodNeutral: {
		"Classic club sandwich",
		"Caesar salad with grilled chicken",
		"Margherita pizza",
		"Turkey and cheese wrap",
		"Mixed green salad",
	},
}

// ForMood returns the catalog entry for m, degrading to the neutral entry
// when m has no catalog of its own.
func ForMood(m mood.Mood) []string {
	if foods, ok := Catalog[m]; ok {
		return foods
	}
	return Catalog[mood.MoodNeutral]
}

// HasCatalog reports whether m has its own catalog entry.
func HasCatalog(m mood.Mood) bool {
	_, ok := Catalog[m]
	return ok
}
