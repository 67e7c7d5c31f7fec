package lexicon

import "github.com/seenimoa/adlens/pkg/models"

var positioningPatterns = map[models.MarketPosition][]string{
	models.PositionLeader: {
		`#1\b`,
		`\bnumber one\b`,
		`\b(?:market|industry|category) leader\b`,
		`\bleading\b`,
		`\bworld['’]?s (?:best|largest|favou?rite|most)\b`,
		`\bmost (?:trusted|popular|loved)\b`,
		`\btrusted by (?:millions|thousands)\b`,
		`\bthe original\b`,
	},
	models.PositionChallenger: {
		`\bbetter than\b`,
		`\bunlike (?:other|the|most)\b`,
		`\bswitch (?:from|to)\b`,
		`\bwhy pay more\b`,
		`\bfinally,? an?\b`,
		`\bthe (?:smarter|better) (?:way|choice|alternative)\b`,
		`\bchallenge the\b`,
	},
	models.PositionNiche: {
		`\bdesigned (?:specifically |exclusively )?for\b`,
		`\bmade (?:just |especially )?for\b`,
		`\bspeciali[sz](?:e|es|ed|ing|ist|ists)\b`,
		`\bfor (?:busy|professional|serious|modern|discerning) \w+`,
		`\bboutique\b`,
		`\bhandcrafted\b`,
		`\bartisan(?:al)?\b`,
	},
	models.PositionDisruptor: {
		`\brevolution(?:ary|ize|ise|izing|ising)?\b`,
		`\bdisrupt(?:s|ing|ive|ion)?\b`,
		`\bgame[- ]chang(?:er|ing)\b`,
		`\breinvent(?:s|ed|ing)?\b`,
		`\bredefin(?:e|es|ed|ing)\b`,
		`\bfirst[- ]ever\b`,
		`\bnever before\b`,
		`\bbreakthrough\b`,
		`\bforget (?:everything|what)\b`,
	},
}

var comparisonPatterns = []string{
	`\bvs\.?(?:\s|$)`,
	`\bversus\b`,
	`\bunlike\b`,
	`\bbetter than\b`,
	`\bswitch(?:ing)? from\b`,
	`\balternative to\b`,
	`\bcompared (?:to|with)\b`,
	`\binstead of\b`,
}
