package lexicon

import "github.com/seenimoa/adlens/pkg/models"

type tierWords struct {
	strong, moderate, mild []string
}

var emotionTable = map[models.Emotion]tierWords{
	models.EmotionJoy: {
		strong: []string{"amazing", "incredible", "fantastic", "thrilled", "delighted", "ecstatic",
			"love", "awesome", "wonderful", "spectacular", "overjoyed", "blissful", "brilliant"},
		moderate: []string{"happy", "happiness", "enjoy", "fun", "excited", "exciting", "beautiful",
			"celebrate", "great", "perfect", "glad", "pleasure", "smile", "joy"},
		mild: []string{"nice", "good", "pleasant", "cheerful", "satisfied", "comfortable", "lovely"},
	},
	models.EmotionTrust: {
		strong: []string{"guaranteed", "guarantee", "proven", "certified", "trusted", "trustworthy",
			"reliable", "authentic"},
		moderate: []string{"secure", "safe", "expert", "experts", "professional", "genuine", "honest",
			"dependable", "tested", "verified", "endorsed", "trust"},
		mild: []string{"quality", "support", "established", "consistent", "recommended", "warranty"},
	},
	models.EmotionAnticipation: {
		strong: []string{"can't wait", "coming soon", "countdown", "unveil", "unveiling", "launching",
			"sneak peek"},
		moderate: []string{"soon", "upcoming", "imagine", "discover", "future", "tomorrow", "await",
			"get ready", "almost here"},
		mild: []string{"new", "plan", "expect", "next", "preview", "hope", "ready"},
	},
	models.EmotionSurprise: {
		strong: []string{"wow", "unbelievable", "shocking", "astonishing", "mind-blowing",
			"jaw-dropping", "omg"},
		moderate: []string{"surprise", "surprising", "unexpected", "sudden", "stunning", "whoa",
			"revealed"},
		mild: []string{"secret", "unusual", "curious", "twist"},
	},
	models.EmotionFear: {
		strong: []string{"terrifying", "dangerous", "nightmare", "panic", "devastating",
			"catastrophic", "scary"},
		moderate: []string{"afraid", "fear", "risk", "threat", "worried", "worry", "anxious", "danger",
			"unsafe", "vulnerable"},
		mild: []string{"concern", "careful", "uncertain", "nervous", "warning", "miss out"},
	},
	models.EmotionSadness: {
		strong: []string{"heartbreaking", "devastated", "miserable", "tragic", "hopeless"},
		moderate: []string{"sad", "lonely", "lost", "regret", "disappointed", "painful", "struggle",
			"struggling"},
		mild: []string{"tired", "sorry", "unhappy", "missing", "alone"},
	},
	models.EmotionAnger: {
		strong: []string{"furious", "outrageous", "outraged", "infuriating", "enraged", "rage"},
		moderate: []string{"angry", "frustrated", "frustrating", "annoyed", "annoying", "unfair",
			"ripped off", "fed up"},
		mild: []string{"irritating", "hassle", "upset", "ridiculous"},
	},
	models.EmotionDisgust: {
		strong:   []string{"disgusting", "gross", "revolting", "repulsive", "toxic", "vile"},
		moderate: []string{"nasty", "filthy", "awful", "terrible", "horrible"},
		mild:     []string{"dirty", "bad", "unpleasant", "harsh", "chemicals"},
	},
}

var amplifierWords = []string{
	"extremely", "so", "very", "incredibly", "absolutely", "really", "totally", "super", "truly",
	"insanely",
}

var downtonerWords = []string{
	"somewhat", "slightly", "a bit", "fairly", "kind of", "sort of", "rather", "a little",
	"mildly", "moderately",
}

func compileEmotions() map[models.Emotion]Tiers {
	out := make(map[models.Emotion]Tiers, len(emotionTable))
	for e, t := range emotionTable {
		out[e] = Tiers{
			Strong:   Words(t.strong...),
			Moderate: Words(t.moderate...),
			Mild:     Words(t.mild...),
		}
	}
	return out
}
