package lexicon

// Gap tables are listed in the order gaps are reported; at most three per
// category reach a summary, so the most actionable entries come first.

var emotionGaps = []GapEntry{
	{"fear", "Fear of loss: show the risks and costs of inaction the competitor never names"},
	{"trust", "Trust building: guarantees, certifications and credibility proof"},
	{"anticipation", "Anticipation: teasers, launches and build-up toward what comes next"},
	{"joy", "Joy and delight: celebratory, feel-good messaging"},
	{"surprise", "Surprise: unexpected hooks and pattern interrupts"},
	{"sadness", "Empathy through sadness: acknowledge the customer's pain before the fix"},
	{"anger", "Shared frustration: rally customers against a common industry annoyance"},
	{"disgust", "Contrast through disgust: expose what is wrong with the status quo"},
}

var techniqueGaps = []GapEntry{
	{"social_proof", "Social proof: reviews, ratings and customer counts"},
	{"authority", "Authority: expert endorsements, certifications and awards"},
	{"scarcity", "Scarcity: limited stock or limited editions"},
	{"urgency", "Urgency: time-bound offers and deadlines"},
	{"reciprocity", "Reciprocity: free trials, samples and gifts"},
	{"exclusivity", "Exclusivity: members-only or invitation-only offers"},
	{"fomo", "FOMO: show what customers miss by waiting"},
	{"commitment", "Commitment: small first steps, challenges and sign-ups"},
	{"liking", "Liking: relatable, friendly people-like-you messaging"},
	{"anchoring", "Price anchoring: reference prices and visible savings"},
}

var triggerGaps = []GapEntry{
	{"belonging", "Belonging: community and shared identity"},
	{"security", "Security: risk-free guarantees and peace of mind"},
	{"achievement", "Achievement: goals, progress and winning"},
	{"status", "Status: prestige and standing out"},
	{"curiosity", "Curiosity: secrets, reveals and open questions"},
	{"novelty", "Novelty: what is new and first"},
	{"self_improvement", "Self-improvement: becoming a better version of yourself"},
	{"autonomy", "Autonomy: freedom, control and no lock-in"},
	{"gratification", "Instant gratification: immediate results and fast delivery"},
	{"nostalgia", "Nostalgia: heritage, tradition and the good old days"},
}

var voiceGaps = []GapEntry{
	{"empathy", "Empathetic voice: acknowledge customer struggles and speak to their needs"},
	{"warmth", "Warm voice: friendly, human and welcoming language"},
	{"authority", "Authoritative voice: expertise and proof"},
	{"confidence", "Confident voice: decisive claims without hedging"},
	{"exclusivity", "Exclusive voice: insider, members-only framing"},
	{"urgency", "Urgent voice: a reason to act now"},
}
