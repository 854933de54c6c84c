package carevents

import "strings"

// if any of the following terms show up, definitely keep
var WhiteTerms = []string{
	" car ", " car,", " car/", "porsche", "volkswagen", "vehicle", "motorcar", "motorshow",
	" cars ", "cars,", "car-", "tesla", "motorsport", "jeep", "chrysler", "ferrari", "volvo",
	"toyota", " audi ", " alfa ", " lotus", "automotive", "automobile", " vw ", "lexus",
	"nissan", "mercedes", "subaru", " auto ", "truck", "vette", "electric vehicle", "bmw",
	"track day", "speedway", "garage", "summit racing", "demolition", "demo derby", "cadillac",
	"low rider", " tires", "hot rod", "hotrod", "rods", "rally", "mustang", "driving",
	"wheels", "range rover", "fuel", "supercar", "driver",
}

// .. but any of these, reject
var BlackTerms = []string{
	"boat", "yacht", "ships", " ship", "booze", "aviation", "aircraft",
	"airshow", "sail", "fishing", "fisherman", "air show", "aerospace",
	"party cruise", "dance cruise", "regatta", "dinner cruise", "brunch cruise",
	"breakfast cruise", "sunset cruise", "harbor cruise", "fireworks cruise",
	"siteseeing cruise", "drinks", "beer", "drone", "escooter",
	"helicopter", " sail ", "boobs", "party bus", "dancing", "kayak",
	"paddle", "music festival", "ballooning", "balloon", "drinks",
	"waterway", "pilot", "airplane", "whale watching", "party", "dj", "river cruise",
	"weekend cruise", "beer cruise", "wine", "ferry", " dock",
}

// terms that are too ambiguous to act on either way; kept for reference.
// "ride" looks like a white term but triggers on "boat ride".
var GreyTerms = []string{"cruise", "ride", "ford", "concours", "drive", "parking"}

func HasWhiteTerm(s string) bool {
	s = strings.ToLower(s)
	for _, t := range WhiteTerms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func HasBlackTerm(s string) bool {
	s = strings.ToLower(s)
	for _, t := range BlackTerms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// WhiteScore counts white term occurrences.
func WhiteScore(s string) int {
	s = strings.ToLower(s)
	c := 0
	for _, t := range WhiteTerms {
		c += strings.Count(s, t)
	}
	return c
}

// BlackScore counts black term occurrences.
func BlackScore(s string) int {
	s = strings.ToLower(s)
	c := 0
	for _, t := range BlackTerms {
		c += strings.Count(s, t)
	}
	return c
}

// PromoteGrey decides whether a grey-listed event's description reads
// decisively car-related.
func PromoteGrey(description string, threshold int) bool {
	w := WhiteScore(description)
	b := BlackScore(description)
	return w > b && w >= threshold
}

// Partition splits raw records into car events (white) and undecided
// ones (grey), dropping decisive non-car events. classification uses
// the record's title and summary.
func Partition(records []RawEventRecord) (white, grey []RawEventRecord) {
	for _, record := range records {
		if record == nil {
			continue
		}

		text := eventName(record)
		if summary := optString(record, "summary"); summary != nil {
			text += *summary
		}

		switch {
		case HasWhiteTerm(text):
			white = append(white, record)
		case HasBlackTerm(text):
			// decisive non-car event, drop
		default:
			grey = append(grey, record)
		}
	}
	return white, grey
}
