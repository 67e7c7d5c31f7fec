package lexicon

import "github.com/seenimoa/adlens/pkg/models"

var triggerPatterns = map[models.Trigger][]string{
	models.TriggerBelonging: {
		`\bjoin (?:our|the|us|a)\b`,
		`\b(?:our|the) community\b`,
		`\bpart of (?:the|our|a|something)\b`,
		`\bbelong(?:s|ing)?\b`,
		`\btogether\b`,
		`\b(?:our|the) (?:family|tribe|crew|team)\b`,
		`\b(?:people|others) like you\b`,
		`\byou['’]?re not alone\b`,
	},
	models.TriggerStatus: {
		`\bfirst[- ]class\b`,
		`\bstand out\b`,
		`\bbe the envy\b`,
		`\bturn heads\b`,
		`\b(?:exclusive|prestigious|elite) (?:club|access|membership|status)\b`,
		`\b(?:vip|members?[- ]only)\b`,
		`\bmade for (?:the few|leaders)\b`,
	},
	models.TriggerSecurity: {
		`\b(?:money[- ]back|satisfaction) guarantee\b`,
		`\b(?:risk|worry)[- ]free\b`,
		`\bpeace of mind\b`,
		`\b(?:protect|secure|safeguard) (?:your|you)\b`,
		`\bsafe (?:and|&) (?:secure|sound|reliable)\b`,
		`\bno risk\b`,
	},
	models.TriggerAchievement: {
		`\b(?:reach|achieve|crush|hit|smash) (?:your )?(?:goals?|targets?|potential|dreams?)\b`,
		`\b(?:level up|take it to the next level)\b`,
		`\bbe the best\b`,
		`\b(?:win|winning|champions?)\b`,
	},
	models.TriggerCuriosity: {
		`\b(?:discover|find out|learn|uncover) (?:the|how|why|what)\b`,
		`\b(?:secrets?|hidden) (?:to|of|behind)\b`,
		`\b(?:what|why|how)(?: \w+){0,3} (?:don['’]?t|doesn['’]?t) want you to know\b`,
		`\byou won['’]?t believe\b`,
		`\bthe truth about\b`,
	},
	models.TriggerNovelty: {
		`\b(?:all[- ])?new\b`,
		`\b(?:introducing|announcing|meet the)\b`,
		`\b(?:first|latest|newest) (?:ever|of its kind|generation|release|model)\b`,
		`\bjust (?:launched|released|dropped|arrived)\b`,
		`\bnever[- ]before[- ]seen\b`,
	},
	models.TriggerNostalgia: {
		`\b(?:remember|recall) (?:when|the)\b`,
		`\b(?:good )?old[- ](?:fashioned|school|times|days)\b`,
		`\bsince (?:19|20)\d{2}\b`,
		`\b(?:just )?like (?:grandma|mom|mum)(?:['’]s)? used to\b`,
		`\b(?:back|return) to (?:basics|the classics)\b`,
		`\bway it used to be\b`,
	},
	models.TriggerAutonomy: {
		`\b(?:on )?your (?:way|terms|own schedule|own pace)\b`,
		`\byou(?:['’]re)? (?:decide|choose|in control|in charge)\b`,
		`\b(?:freedom|free) to\b`,
		`\b(?:no|zero) (?:contracts?|commitment|strings)\b`,
		`\bcancel (?:any ?time|whenever)\b`,
		`\b(?:be|become) your own\b`,
	},
	models.TriggerGratification: {
		`\b(?:instant|immediate|same[- ]day|next[- ]day) (?:delivery|access|results|relief|download|shipping)\b`,
		`\b(?:get|see|feel) (?:it|results|the difference) (?:today|now|instantly|fast)\b`,
		`\bin (?:minutes|seconds|no time)\b`,
		`\btreat yourself\b`,
		`\byou deserve\b`,
		`\b(?:right|ready) (?:now|away)\b`,
	},
	models.TriggerSelfImprovement: {
		`\b(?:become|be) (?:a )?(?:better|healthier|stronger|smarter|happier|more confident)\b`,
		`\b(?:improve|transform|upgrade) (?:your|yourself)\b`,
		`\b(?:learn|master) (?:new|how)\b`,
		`\b(?:best|better) version of (?:you|yourself)\b`,
		`\bgrow (?:your|as)\b`,
	},
}

var triggerKeywords = map[models.Trigger][]string{
	models.TriggerBelonging:       {"family", "community", "tribe", "members", "friends", "welcome", "us"},
	models.TriggerStatus:          {"prestige", "luxury", "status", "sophisticated", "distinguished", "iconic", "premium", "elite"},
	models.TriggerSecurity:        {"safe", "safety", "secure", "security", "protection", "protected", "reliable", "insured", "guaranteed"},
	models.TriggerAchievement:     {"success", "successful", "achieve", "accomplish", "goal", "goals", "master", "progress", "excel"},
	models.TriggerCuriosity:       {"secret", "mystery", "revealed", "reveal", "surprising", "curious", "unknown"},
	models.TriggerNovelty:         {"innovative", "fresh", "latest", "novel", "breakthrough", "cutting-edge", "revolutionary", "modern"},
	models.TriggerNostalgia:       {"classic", "vintage", "retro", "heritage", "tradition", "traditional", "timeless", "childhood", "memories", "original"},
	models.TriggerAutonomy:        {"freedom", "independent", "independence", "flexible", "flexibility", "choice", "control", "customize", "personalized"},
	models.TriggerGratification:   {"instant", "instantly", "immediately", "now", "quick", "quickly", "fast", "indulge", "treat"},
	models.TriggerSelfImprovement: {"improve", "transform", "transformation", "healthier", "stronger", "confident", "growth", "potential", "learn", "skills"},
}
