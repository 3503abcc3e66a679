package character

// Trait tables for period-appropriate character generation.

var firstNames = map[string][]string{
	"female": {
		"Elizabeth", "Jane", "Emma", "Anne", "Catherine", "Elinor",
		"Marianne", "Charlotte", "Caroline", "Georgiana", "Harriet",
		"Lydia", "Mary", "Fanny", "Isabella", "Eleanor", "Sophia",
	},
	"male": {
		"Fitzwilliam", "Charles", "George", "Henry", "Edward", "William",
		"Frederick", "John", "Thomas", "James", "Edmund", "Robert",
		"Christopher", "Frank", "Philip", "Richard", "Arthur",
	},
}

var lastNames = []string{
	"Bennet", "Darcy", "Bingley", "Woodhouse", "Knightley", "Wentworth",
	"Elliot", "Crawford", "Bertram", "Dashwood", "Ferrars", "Willoughby",
	"Brandon", "Collins", "Lucas", "Tilney", "Morland", "Churchill",
	"Elton", "Fairfax", "Musgrove", "Croft", "Wickham", "Thorpe",
}

var socialClasses = map[string][]string{
	"upper": {
		"wealthy landowner", "aristocrat", "baronet", "heir to a large estate",
		"person of noble birth", "member of the peerage", "lady of rank",
		"gentleman of fortune", "distinguished lady of society",
	},
	"middle": {
		"country gentleman", "refined lady", "respected tradesman",
		"gentleman of modest means", "daughter of a merchant",
		"professional man", "wife of a professional man", "governess from a good family",
	},
	"lower": {
		"tenant farmer", "shopkeeper", "craftsman", "servant in a great house",
		"person of humble birth but good connections", "tradesperson",
		"farmer with a small holding", "lady's companion",
	},
}

var occupations = map[string][]string{
	"male": {
		"clergyman", "naval officer", "estate manager", "physician",
		"barrister", "military officer", "magistrate", "scholar",
		"landowner", "merchant", "banker", "architect", "gentleman farmer",
	},
	"female": {
		"governess", "lady's companion", "accomplished musician",
		"skilled painter", "estate mistress", "household manager",
		"charitable worker", "writer of letters and journals",
		"needlework expert", "housekeeper", "hostess of social gatherings",
	},
	"neutral": {
		"guardian of younger siblings", "caretaker of elderly relatives",
		"correspondent with distant connections", "reader and intellectual",
		"manager of family affairs", "local benefactor", "traveler",
	},
}

var personalityTraits = map[string][]string{
	"positive": {
		"witty", "intelligent", "amiable", "sensible", "charming",
		"composed", "elegant", "gracious", "kind-hearted", "refined",
		"accomplished", "spirited", "thoughtful", "affectionate", "dutiful",
	},
	"neutral": {
		"reserved", "private", "contemplative", "traditional", "careful",
		"proper", "conventional", "practical", "deliberate", "methodical",
		"observant", "attentive", "modest", "temperate", "moderate",
	},
	"negative": {
		"proud", "prejudiced", "vain", "impulsive", "indiscreet",
		"fanciful", "gossiping", "imposing", "scheming", "calculating",
		"envious", "pompous", "frivolous", "flirtatious", "insolent",
	},
}

var backstories = []string{
	"raised in a large family with little fortune but much affection",
	"educated abroad and recently returned to England",
	"orphaned at a young age and raised by a distant relative",
	"from a family fallen on hard times after previous prosperity",
	"seeking to restore family honor after a scandal",
	"the unexpected inheritor of a modest but comfortable property",
	"connected to influential people but personally of limited means",
	"having survived a serious illness that altered their perspective on life",
	"returned from the colonies with experiences but diminished fortune",
	"well-traveled but now settling into provincial society",
	"recovering from a broken engagement that caused much distress",
	"new to the neighborhood and subject to much speculation",
	"a childhood friend of an important local figure",
	"possessing a talent that sets them apart from typical society",
	"bearing a resemblance to someone of notorious reputation",
}

var classCategories = []string{"upper", "middle", "lower"}

var traitCategories = []string{"positive", "neutral", "negative"}
