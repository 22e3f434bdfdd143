// README: Fixed vocabularies for cuisine, dietary, occasion and price matching.
package intent

// cuisines is scanned in order; the first substring hit wins, so more
// specific entries must come before generic ones (e.g. "middle eastern"
// before "eastern" would matter if "eastern" were listed).
var cuisines = []string{
	"italian",
	"chinese",
	"japanese",
	"mexican",
	"indian",
	"thai",
	"french",
	"greek",
	"korean",
	"vietnamese",
	"spanish",
	"turkish",
	"lebanese",
	"moroccan",
	"ethiopian",
	"american",
	"brazilian",
	"peruvian",
	"argentinian",
	"cuban",
	"caribbean",
	"jamaican",
	"german",
	"british",
	"irish",
	"russian",
	"polish",
	"hungarian",
	"portuguese",
	"malaysian",
	"indonesian",
	"filipino",
	"singaporean",
	"taiwanese",
	"cantonese",
	"szechuan",
	"sichuan",
	"mongolian",
	"nepalese",
	"pakistani",
	"sri lankan",
	"afghan",
	"persian",
	"israeli",
	"middle eastern",
	"mediterranean",
	"hawaiian",
	"cajun",
	"creole",
	"soul food",
	"tex-mex",
	"barbecue",
	"bbq",
	"sushi",
	"ramen",
	"pho",
	"tapas",
	"dim sum",
	"hot pot",
}

// KnownCuisine reports whether c is one of the enumerated cuisines.
func KnownCuisine(c string) bool {
	for _, v := range cuisines {
		if v == c {
			return true
		}
	}
	return false
}

// dietaryTerms maps query substrings to their canonical form. All hits are
// collected, not just the first.
var dietaryTerms = []struct {
	term      string
	canonical string
}{
	{"vegetarian", "vegetarian"},
	{"vegan", "vegan"},
	{"gluten-free", "gluten-free"},
	{"gluten free", "gluten-free"},
	{"dairy-free", "dairy-free"},
	{"dairy free", "dairy-free"},
	{"nut-free", "nut-free"},
	{"nut free", "nut-free"},
	{"halal", "halal"},
	{"kosher", "kosher"},
	{"pescatarian", "pescatarian"},
	{"paleo", "paleo"},
	{"keto", "keto"},
	{"low-carb", "low-carb"},
	{"low carb", "low-carb"},
	{"organic", "organic"},
	{"sugar-free", "sugar-free"},
	{"sugar free", "sugar-free"},
	{"lactose intolerant", "dairy-free"},
	{"egg-free", "egg-free"},
	{"soy-free", "soy-free"},
	{"shellfish-free", "shellfish-free"},
	{"low-sodium", "low-sodium"},
	{"whole30", "whole30"},
}

// occasionTriggers is scanned in the declared category order; the first
// category with any matching phrase wins.
var occasionTriggers = []struct {
	occasion Occasion
	phrases  []string
}{
	{OccasionRomantic, []string{"romantic", "date night", "date", "anniversary", "ambiance", "atmosphere"}},
	{OccasionBusiness, []string{"business lunch", "business dinner", "business meeting", "client", "work lunch"}},
	{OccasionFamily, []string{"family", "kids", "kid-friendly", "children"}},
	{OccasionCelebration, []string{"birthday", "celebration", "celebrate", "graduation", "party"}},
	{OccasionCasual, []string{"casual", "quick bite", "grab a bite", "takeout", "take out"}},
}

// priceRules is an ordered rule list evaluated top to bottom; the first rule
// with any phrase hit wins and the rest are skipped. The negated forms sit
// above the plain "expensive" rule on purpose.
var priceRules = []struct {
	phrases []string
	sortBy  SortDirective
	pref    PricePreference
}{
	{
		phrases: []string{"not too expensive", "not very expensive", "not expensive", "not high-end"},
		sortBy:  SortPriceAsc,
		pref:    PriceMedium,
	},
	{
		phrases: []string{"cheapest", "cheap", "inexpensive", "budget", "affordable"},
		sortBy:  SortPriceAsc,
		pref:    PriceLow,
	},
	{
		phrases: []string{"expensive", "fancy", "high-end", "luxury"},
		sortBy:  SortPriceDesc,
		pref:    PriceHigh,
	},
	{
		phrases: []string{"moderate", "mid-range", "medium priced"},
		sortBy:  SortPriceAsc,
		pref:    PriceMedium,
	},
	{
		phrases: []string{"best rated", "top rated", "highest rated"},
		sortBy:  SortRating,
		pref:    "",
	},
}
