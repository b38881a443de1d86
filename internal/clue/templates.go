package clue

// Blank is the placeholder shown where the answer word belongs.
const Blank = "_______"

// omissionTemplates phrase clues about standards a report never
// mentions. The blank hides the standard name.
var omissionTemplates = []string{
	"Surprisingly, this report fails to mention " + Blank + " standards significantly.",
	"The audit reveals a lack of verified data on " + Blank + ".",
	"Investors looking for " + Blank + " metrics will be disappointed here.",
	"Unlike peers, this company omits standard " + Blank + " disclosures.",
	"A key gap in this report is the absence of " + Blank + " data.",
}
