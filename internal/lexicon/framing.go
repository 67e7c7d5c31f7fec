package lexicon

import "github.com/seenimoa/adlens/pkg/models"

var framingWords = map[models.FramingStyle][]string{
	models.StyleGain: {"gain", "gains", "get", "earn", "save", "saves", "saving", "win", "increase",
		"boost", "improve", "achieve", "unlock", "enjoy", "grow"},
	models.StyleOpportunity: {"opportunity", "opportunities", "chance", "potential", "discover",
		"imagine", "possibilities", "open the door"},
	models.StyleLoss: {"lose", "losing", "loss", "lost", "miss out", "missing out", "waste",
		"wasting", "cost you", "fall behind", "throwing away", "pay more"},
	models.StyleRisk: {"risk", "risky", "danger", "dangerous", "threat", "warning", "vulnerable",
		"unsafe", "harm", "damage", "mistake", "exposed"},
}

// framingAux is the fixed auxiliary indicator table. Each cue counts toward
// its style and, through the style, toward the positive or negative tally.
var framingAux = []struct {
	term  string
	style models.FramingStyle
}{
	{"benefit", models.StyleGain},
	{"benefits", models.StyleGain},
	{"reward", models.StyleGain},
	{"rewards", models.StyleGain},
	{"free", models.StyleGain},
	{"better", models.StyleGain},
	{"advantage", models.StyleGain},
	{"explore", models.StyleOpportunity},
	{"possibility", models.StyleOpportunity},
	{"dream", models.StyleOpportunity},
	{"don't let", models.StyleLoss},
	{"never again", models.StyleLoss},
	{"left behind", models.StyleLoss},
	{"protect", models.StyleRisk},
	{"avoid", models.StyleRisk},
	{"before it's too late", models.StyleRisk},
	{"beware", models.StyleRisk},
}

var timeWords = map[models.TimeOrientation][]string{
	models.TimePresent: {"now", "today", "currently", "instantly", "instant", "immediately",
		"tonight", "right now", "this week", "this month", "this season", "these days"},
	models.TimeFuture: {"will", "tomorrow", "future", "soon", "upcoming", "next", "someday",
		"going to", "coming", "forever", "years to come"},
	models.TimePast: {"was", "were", "used to", "yesterday", "ago", "remember", "traditional",
		"heritage", "classic", "originally", "back then"},
}

// sinceYear counts toward past orientation alongside timeWords.
const sinceYear = `\bsince (?:19|20)\d{2}\b`

var problemWords = []string{
	"problem", "problems", "struggle", "struggling", "pain", "frustrated", "frustrating",
	"frustration", "tired of", "difficult", "hard", "issue", "issues", "stress", "stressed",
	"worry", "annoying", "hassle", "sick of", "can't",
}

var solutionWords = []string{
	"solution", "solutions", "solve", "solves", "fix", "fixes", "easy", "easily", "simple",
	"effortless", "answer", "relief", "finally", "results", "works", "helps", "transform",
}

func compileAux() []AuxIndicator {
	out := make([]AuxIndicator, len(framingAux))
	for i, a := range framingAux {
		out[i] = AuxIndicator{Matcher: Words(a.term), Style: a.style}
	}
	return out
}

func compileTime() map[models.TimeOrientation][]Matcher {
	out := make(map[models.TimeOrientation][]Matcher, len(timeWords))
	for o, words := range timeWords {
		out[o] = []Matcher{Words(words...)}
	}
	out[models.TimePast] = append(out[models.TimePast], Pattern(sinceYear))
	return out
}
