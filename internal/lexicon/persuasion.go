package lexicon

import "github.com/seenimoa/adlens/pkg/models"

// techniquePatterns avoids nested unbounded quantifiers; RE2 would stay
// linear anyway, but bounded patterns keep match spans short.
var techniquePatterns = map[models.Technique][]string{
	models.TechniqueScarcity: {
		`\bonly \d+ (?:left|remaining|available)\b`,
		`\blast (?:few|one|units?|pieces?)\b`,
		`\b(?:few|\d+) (?:left|remaining)\b`,
		`\blimited (?:stock|supply|quantit(?:y|ies)|edition|availability|run)\b`,
		`\bselling (?:out )?fast\b`,
		`\bwhile (?:supplies|stocks?) last\b`,
		`\b(?:almost|nearly) (?:gone|sold out)\b`,
		`\bsold out\b`,
		`\bin short supply\b`,
	},
	models.TechniqueUrgency: {
		`\b(?:act|order|buy|shop|call|sign up|register|book|claim(?: yours)?) (?:now|today)\b`,
		`\btoday only\b`,
		`\blast chance\b`,
		`\b(?:ends?|ending|expires?) (?:soon|today|tonight|at midnight|sunday|friday)\b`,
		`\bhurry\b`,
		`\blimited[- ]time\b`,
		`\bdon['’]?t wait\b`,
		`\b\d+ (?:hours?|days?|minutes?) (?:left|only|remaining)\b`,
		`\bdeadline\b`,
		`\bright now\b`,
		`\bimmediately\b`,
	},
	models.TechniqueSocialProof: {
		`\b(?:trusted|used|loved|chosen) by (?:over )?(?:\d[\d,.]*[km+]?|millions|thousands|hundreds)`,
		`\b\d[\d,.]*\+? (?:happy |satisfied )?(?:customers|users|clients|members|people|reviews)\b`,
		`\bbest[- ]?sell(?:ing|er)\b`,
		`\b(?:5|five)[- ]stars?\b`,
		`\b(?:rated|reviewed|voted) (?:#1|number one|\d)`,
		`\bjoin (?:over )?(?:\d[\d,.]*|millions|thousands)\b`,
		`\btestimonials?\b`,
		`\b(?:everyone|everybody)['’]?s (?:talking|buying|using)\b`,
		`\bmost popular\b`,
	},
	models.TechniqueAuthority: {
		`\b(?:doctor|dermatologist|expert|scientist|professional)s? (?:recommended|approved|tested|developed)\b`,
		`\bclinically (?:proven|tested)\b`,
		`\bscientifically (?:proven|backed)\b`,
		`\bcertified\b`,
		`\baward[- ]winning\b`,
		`\b(?:\d+|decades of) years? of experience\b`,
		`\bbacked by (?:science|research|experts)\b`,
		`\bas seen (?:on|in)\b`,
		`\bendorsed by\b`,
		`\bindustry[- ]leading\b`,
		`\baccredited\b`,
	},
	models.TechniqueReciprocity: {
		`\bfree (?:gift|trial|sample|shipping|guide|ebook|consultation|bonus)\b`,
		`\b(?:bonus|complimentary)\b`,
		`\bon (?:us|the house)\b`,
		`\bno (?:strings attached|obligation)\b`,
		`\bour gift to you\b`,
		`\b(?:get|download|claim) (?:it|yours|your \w+) (?:for )?free\b`,
		`\bbuy one,? get one\b`,
	},
	models.TechniqueFOMO: {
		`\bdon['’]?t miss(?: out)?\b`,
		`\bmiss(?:ing)? out\b`,
		`\beveryone (?:is|['’]s) (?:talking|getting|joining)\b`,
		`\bbefore (?:it['’]?s|they['’]?re) gone\b`,
		`\byou['’]?ll regret\b`,
		`\b(?:join|be one of) (?:the )?(?:thousands|millions) who\b`,
		`\bnever (?:again|be repeated)\b`,
		`\bonce in a lifetime\b`,
		`\bleft behind\b`,
	},
	models.TechniqueExclusivity: {
		`\bexclusive(?:ly)?\b`,
		`\bmembers?[- ]only\b`,
		`\b(?:vip|insider|private) (?:access|sale|offer|club|event)\b`,
		`\b(?:by invitation only|invite[- ]only)\b`,
		`\bselect(?:ed)? (?:few|customers|members)\b`,
		`\b(?:not|never) available (?:anywhere|in stores)\b`,
		`\blimited to \d+\b`,
		`\belite\b`,
	},
	models.TechniqueCommitment: {
		`\b(?:start|begin) (?:your|today|now)\b`,
		`\b(?:take|make) the (?:first )?(?:step|pledge|commitment)\b`,
		`\b(?:commit|pledge) to\b`,
		`\bsign up\b`,
		`\bsubscribe\b`,
		`\bjoin (?:now|today|us)\b`,
		`\b\d+[- ]day (?:challenge|plan|program)\b`,
		`\btry it (?:for|risk)\b`,
	},
	models.TechniqueLiking: {
		`\b(?:people )?(?:just )?like you\b`,
		`\bwe(?:['’]re)? (?:love|here for) (?:you|our)\b`,
		`\bfriend(?:ly|s)?\b`,
		`\byou(?:['’]ll| will) love\b`,
		`\bmade with love\b`,
		`\bwe (?:get|understand) (?:it|you)\b`,
	},
	models.TechniqueAnchoring: {
		`\b(?:was|originally|regularly|normally|retail) \$?\d+`,
		`\b(?:save|saving) (?:up to )?\$?\d+`,
		`\b\d+% off\b`,
		`\b(?:half|50%) (?:price|off)\b`,
		`\b(?:compare at|valued at|worth) \$?\d+`,
		`\$\d+(?:\.\d{2})?\s?(?:→|->|now)\s?\$?\d+`,
		`\b(?:only|just) \$\d+`,
		`\bprice drop\b`,
	},
}
