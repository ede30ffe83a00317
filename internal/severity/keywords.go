package severity

// severeKeywords trigger an immediate severe assessment on substring match.
// Checked before moderateKeywords; a message containing both is severe.
var severeKeywords = []string{
	"kill myself", "end my life", "suicide", "take my own life",
	"i want to die", "no reason to live", "goodbye forever",
	"i have a plan", "ready to die", "done with life", "tonight is the night",
}

// moderateKeywords trigger a moderate assessment when no severe phrase hits.
var moderateKeywords = []string{
	"tired of living", "hopeless", "nothing matters", "can't go on",
	"worthless", "wish i could sleep forever", "want to disappear",
	"emotionally exhausted", "give up", "done with everything",
}
