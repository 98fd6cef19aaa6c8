package mood

// The lexicon is immutable configuration loaded once at process start.
// Tables are package-level values and must never be mutated at runtime;
// keyword matching iterates KeywordOrder so tie-breaking between moods of
// equal intensity is deterministic.

// KeywordEntry holds the keyword, intensifier and context vocabulary for
// one mood.
type KeywordEntry struct {
	Keywords     []string
	Intensifiers []string
	Context      []string
}

// ContextPhrases holds phrase lists that raise or lower keyword intensity.
type ContextPhrases struct {
	Positive []string
	Negative []string
}

// CompoundPattern is a pair of raw emotions whose joint presence in the
// classifier output overrides single-emotion mapping.
type CompoundPattern struct {
	First  string
	Second string
}

// NegationWords can reverse the emotion of a sentence.
var NegationWords = []string{
	"not", "don't", "doesn't", "didn't", "won't", "wouldn't",
	"couldn't", "can't", "never", "no",
}

// KeywordOrder fixes the iteration order of the keyword pass.
var KeywordOrder = []Mood{
	MoodLazy, MoodRomantic, MoodHappy, MoodSad,
	MoodEnergetic, MoodStressed, MoodProductive, MoodNeutral,
}

// Keywords maps each mood to its keyword vocabulary.
var Keywords = map[Mood]KeywordEntry{
	MoodLazy: {
		Keywords:     []string{"lazy", "tired", "exhausted", "fatigued", "sleepy", "drowsy", "unmotivated", "sluggish"},
		Intensifiers: []string{"very", "extremely", "really", "so"},
		Context:      []string{"couch", "bed", "relax", "rest", "nap"},
	},
	MoodRomantic: {
		Keywords:     []string{"romantic", "love", "passionate", "intimate", "amorous", "romance", "date"},
		Intensifiers: []string{"very", "deeply", "truly", "madly"},
		Context:      []string{"partner", "date", "candlelight", "dinner", "special"},
	},
	MoodHappy: {
		Keywords:     []string{"happy", "joyful", "cheerful", "glad", "delighted", "excited", "thrilled", "elated"},
		Intensifiers: []string{"very", "extremely", "really", "so"},
		Context:      []string{"great", "wonderful", "amazing", "fantastic"},
	},
	MoodSad: {
		Keywords:     []string{"sad", "unhappy", "depressed", "down", "gloomy", "miserable", "heartbroken"},
		Intensifiers: []string{"very", "extremely", "really", "so"},
		Context:      []string{"cry", "miss", "lonely", "alone"},
	},
	MoodEnergetic: {
		Keywords:     []string{"energetic", "energized", "active", "vibrant", "lively", "dynamic", "peppy"},
		Intensifiers: []string{"very", "extremely", "really", "so"},
		Context:      []string{"workout", "exercise", "run", "play"},
	},
	MoodStressed: {
		Keywords:     []string{"stressed", "anxious", "worried", "tense", "nervous", "overwhelmed", "pressured"},
		Intensifiers: []string{"very", "extremely", "really", "so"},
		Context:      []string{"deadline", "work", "pressure", "anxiety"},
	},
	MoodProductive: {
		Keywords:     []string{"productive", "focused", "motivated", "determined", "efficient", "accomplished"},
		Intensifiers: []string{"very", "extremely", "really", "so"},
		Context:      []string{"work", "task", "project", "goal"},
	},
	MoodNeutral: {
		Keywords:     []string{"neutral", "okay", "fine", "alright", "normal", "average", "regular"},
		Intensifiers: []string{},
		Context:      []string{"usual", "typical", "standard"},
	},
}

// EmotionalContext maps moods to phrases that shift keyword intensity.
var EmotionalContext = map[Mood]ContextPhrases{
	MoodLazy: {
		Positive: []string{"relaxing", "chilling", "taking it easy", "unwinding"},
		Negative: []string{"procrastinating", "wasting time", "being unproductive"},
	},
	MoodRomantic: {
		Positive: []string{"date night", "special occasion", "quality time", "together"},
		Negative: []string{"lonely", "missing someone", "long distance"},
	},
	MoodHappy: {
		Positive: []string{"celebration", "achievement", "success", "good news"},
		Negative: []string{"trying to be happy", "forcing a smile", "pretending"},
	},
	MoodSad: {
		Positive: []string{"missing someone", "memories", "nostalgia"},
		Negative: []string{"depression", "hopelessness", "despair"},
	},
	MoodEnergetic: {
		Positive: []string{"workout", "exercise", "activity", "movement"},
		Negative: []string{"hyper", "restless", "can't sit still"},
	},
	MoodStressed: {
		Positive: []string{"busy", "productive", "challenging"},
		Negative: []string{"overwhelmed", "burned out", "exhausted"},
	},
	MoodProductive: {
		Positive: []string{"accomplishment", "progress", "achievement"},
		Negative: []string{"overworking", "burnout", "exhaustion"},
	},
}

// OppositeMoods remaps a mood under negation. The table is deliberately
// asymmetric: stressed negates to calm but calm has no entry, and romantic
// and neutral fall through unchanged. Do not "complete" it.
var OppositeMoods = map[Mood]Mood{
	MoodHappy:      MoodSad,
	MoodSad:        MoodHappy,
	MoodEnergetic:  MoodTired,
	MoodTired:      MoodEnergetic,
	MoodStressed:   MoodCalm,
	MoodProductive: MoodLazy,
	MoodLazy:       MoodProductive,
}

// EmotionToMood maps classifier emotions (many) onto moods (few). Unmapped
// emotions resolve to neutral.
var EmotionToMood = map[string]Mood{
	// Positive emotions
	"joy":        MoodHappy,
	"love":       MoodRomantic,
	"pride":      MoodProductive,
	"gratitude":  MoodHappy,
	"optimism":   MoodProductive,
	"amusement":  MoodHappy,
	"excitement": MoodEnergetic,
	"desire":     MoodRomantic,
	"admiration": MoodRomantic,
	"relief":     MoodHappy,

	// Negative emotions
	"sadness":        MoodSad,
	"anger":          MoodStressed,
	"fear":           MoodStressed,
	"disgust":        MoodStressed,
	"remorse":        MoodSad,
	"grief":          MoodSad,
	"anxiety":        MoodStressed,
	"nervousness":    MoodStressed,
	"disappointment": MoodSad,
	"embarrassment":  MoodStressed,

	// Neutral and complex emotions
	"surprise":   MoodEnergetic,
	"confusion":  MoodStressed,
	"curiosity":  MoodEnergetic,
	"boredom":    MoodLazy,
	"tiredness":  MoodTired,
	"fatigue":    MoodTired,
	"exhaustion": MoodTired,
	"neutral":    MoodNeutral,
	"calmness":   MoodNeutral,
	"peace":      MoodHappy,
}

// CompoundOrder fixes the iteration order of the compound-pattern check.
var CompoundOrder = []Mood{MoodRomantic, MoodStressed, MoodProductive}

// CompoundPatterns maps moods to emotion pairs whose joint presence in the
// classifier output selects that mood directly.
var CompoundPatterns = map[Mood][]CompoundPattern{
	MoodRomantic: {
		{First: "love", Second: "happy"},
		{First: "desire", Second: "excitement"},
		{First: "admiration", Second: "joy"},
	},
	MoodStressed: {
		{First: "anxiety", Second: "fear"},
		{First: "anger", Second: "frustration"},
		{First: "worry", Second: "nervousness"},
	},
	MoodProductive: {
		{First: "pride", Second: "determination"},
		{First: "focus", Second: "motivation"},
		{First: "accomplishment", Second: "satisfaction"},
	},
}

// MapEmotion resolves a classifier emotion to its mood, defaulting to
// neutral for unmapped labels.
func MapEmotion(emotion string) Mood {
	if m, ok := EmotionToMood[emotion]; ok {
		return m
	}
	return MoodNeutral
}

// Opposite returns the negated mood per the asymmetric opposite table; moods
// without an entry are returned unchanged.
func Opposite(m Mood) Mood {
	if opp, ok := OppositeMoods[m]; ok {
		return opp
	}
	return m
}
