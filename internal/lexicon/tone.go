package lexicon

import "github.com/seenimoa/adlens/pkg/models"

var formalityPatterns = map[models.Formality][]string{
	models.FormalityCasual: {
		`\b(?:gonna|wanna|gotta|kinda|sorta|yeah|yep|nope|hey|lol|omg|awesome|cool|yay|dude|y['’]all|ya)\b`,
		`\b(?:legit|vibes?|epic|insane|crazy good|no biggie)\b`,
	},
	models.FormalityConversational: {
		`\byou(?:r|rs|['’]re|['’]ll|['’]ve)?\b`,
		`\blet['’]s\b`,
		`\b(?:ever wonder(?:ed)?|guess what|here['’]s the thing|imagine this)\b`,
		`\?`,
	},
	models.FormalityProfessional: {
		`\b(?:solutions?|services?|quality|efficien(?:t|cy)|expertise|professional|industry|performance)\b`,
		`\b(?:results|business|clients?|customers?|deliver(?:s|ed)?|reliable|innovative|optimi[sz]e|strategy|enterprise)\b`,
	},
	models.FormalityFormal: {
		`\b(?:hereby|therefore|furthermore|moreover|pursuant|accordingly|shall|whereas|thus|consequently)\b`,
		`\b(?:regarding|henceforth|wherein|notwithstanding|esteemed|kindly|we are pleased to)\b`,
	},
}

var voiceWords = map[models.VoiceTrait][]string{
	models.VoiceAuthority: {"expert", "experts", "proven", "leading", "leader", "#1", "certified",
		"professional", "research", "scientifically", "clinically", "years of experience",
		"specialist", "award-winning", "industry"},
	models.VoiceUrgency: {"now", "today", "hurry", "limited", "fast", "immediately", "don't miss",
		"last chance", "ends", "quick", "instantly", "deadline"},
	models.VoiceEmpathy: {"understand", "we know", "you deserve", "care", "caring", "feel",
		"struggle", "help you", "support", "we get it", "listen", "here for you"},
	models.VoiceConfidence: {"guaranteed", "guarantee", "will", "best", "definitely", "proven",
		"always", "never fail", "absolutely", "certainly", "without doubt"},
	models.VoiceExclusivity: {"exclusive", "members", "member", "vip", "invitation", "select",
		"elite", "private", "only for", "insider", "limited edition"},
	models.VoiceWarmth: {"love", "friend", "friends", "family", "together", "welcome", "happy",
		"smile", "heart", "home", "cozy", "warm", "community"},
}

var hedgeWords = []string{
	"maybe", "might", "perhaps", "possibly", "could", "hopefully", "try", "probably", "may",
	"somewhat",
}

type personalityWords struct {
	patterns   []string
	keywords   []string
	indicators []string
}

var personalityTable = map[models.Personality]personalityWords{
	models.PersonalitySincerity: {
		patterns: []string{
			`\b(?:honest|real|genuine|authentic) (?:ingredients|people|food|results|care)\b`,
			`\bfamily[- ]owned\b`,
			`\bsince (?:19|20)\d{2}\b`,
			`\b(?:made|grown|sourced) (?:locally|with care)\b`,
		},
		keywords: []string{"honest", "genuine", "real", "authentic", "wholesome", "sincere",
			"caring", "down-to-earth", "natural", "family"},
		indicators: []string{"we care", "from our family", "straight talk", "no gimmicks"},
	},
	models.PersonalityExcitement: {
		patterns: []string{
			`\b(?:bold|daring|thrilling) \w+`,
			`!{2,}`,
			`\b(?:never|nothing) (?:seen|like) (?:before|it)\b`,
		},
		keywords: []string{"exciting", "thrilling", "bold", "daring", "cool", "trendy", "fun",
			"adventure", "epic", "wild", "energy"},
		indicators: []string{"get ready", "let's go", "game on", "are you ready"},
	},
	models.PersonalityCompetence: {
		patterns: []string{
			`\b(?:proven|reliable|trusted) (?:results|performance|solutions?)\b`,
			`\b\d+% (?:more|faster|better|efficient)\b`,
			`\bindustry[- ]leading\b`,
			`\b(?:engineered|designed|built) for (?:performance|reliability|results)\b`,
		},
		keywords: []string{"reliable", "efficient", "expert", "proven", "intelligent", "successful",
			"leader", "precision", "performance", "results"},
		indicators: []string{"backed by", "trusted by", "tested by", "engineered to"},
	},
	models.PersonalitySophistication: {
		patterns: []string{
			`\b(?:luxury|premium|exquisite|refined|elegant) \w+`,
			`\b(?:hand|expertly)[- ]?crafted\b`,
			`\b(?:timeless|iconic) (?:design|style|elegance)\b`,
		},
		keywords: []string{"luxury", "luxurious", "elegant", "premium", "exclusive", "refined",
			"exquisite", "sophisticated", "glamorous", "timeless", "couture"},
		indicators: []string{"indulge in", "the finest", "crafted for", "for the discerning"},
	},
	models.PersonalityRuggedness: {
		patterns: []string{
			`\b(?:built|made) (?:tough|to last)\b`,
			`\b(?:all|any)[- ]terrain\b`,
			`\b(?:heavy|military)[- ]duty\b`,
		},
		keywords: []string{"tough", "rugged", "durable", "outdoor", "outdoors", "strong",
			"hardworking", "unbreakable", "wilderness", "trail"},
		indicators: []string{"no matter what", "stands up to", "go anywhere", "built for the"},
	},
}

func compilePersonality() map[models.Personality]PersonalitySignals {
	out := make(map[models.Personality]PersonalitySignals, len(personalityTable))
	for p, w := range personalityTable {
		out[p] = PersonalitySignals{
			Patterns:   compilePatterns(w.patterns),
			Keywords:   Words(w.keywords...),
			Indicators: Words(w.indicators...),
		}
	}
	return out
}
