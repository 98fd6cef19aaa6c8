// Package mood contains the core domain model for mood inference: the
// closed mood catalog, the analysis value object, and the static lexicon
// the keyword pass runs against.
package mood

// Mood is one of a fixed closed set of labels used to index the food
// catalog.
type Mood string

const (
	MoodHappy      Mood = "happy"
	MoodSad        Mood = "sad"
	MoodEnergetic  Mood = "energetic"
	MoodTired      Mood = "tired"
	MoodStressed   Mood = "stressed"
	MoodProductive Mood = "productive"
	MoodLazy       Mood = "lazy"
	MoodRomantic   Mood = "romantic"
	MoodNeutral    Mood = "neutral"
	MoodCalm       Mood = "calm"
)

// AllMoods lists every label in the closed catalog.
var AllMoods = []Mood{
	MoodHappy, MoodSad, MoodEnergetic, MoodTired, MoodStressed,
	MoodProductive, MoodLazy, MoodRomantic, MoodNeutral, MoodCalm,
}

// IsValid reports whether m belongs to the closed catalog.
func (m Mood) IsValid() bool {
	for _, known := range AllMoods {
		if m == known {
			return true
		}
	}
	return false
}

func (m Mood) String() string {
	return string(m)
}

// EmotionScore is a fine-grained classifier emotion with its confidence.
type EmotionScore struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Analysis is the result of analyzing one piece of text. Created fresh per
// call and never mutated afterwards.
type Analysis struct {
	Mood              Mood           `json:"mood"`
	Intensity         float64        `json:"intensity"`
	TopEmotion        string         `json:"top_emotion"`
	SecondaryEmotions []string       `json:"secondary_emotions"`
	RawEmotionScores  []EmotionScore `json:"raw_emotion_scores"`
}
