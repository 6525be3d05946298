package wordbank

// Builtin returns the built-in English word banks, one adjective bank and one
// noun bank, so the engine produces sensible names with zero configuration.
// The returned banks are fresh copies; callers may filter them freely.
func Builtin() []Bank {
	return []Bank{
		{
			ID:     "builtin-adjectives",
			Name:   "Built-in adjectives",
			Part:   Adjective,
			Locale: "en",
			Theme:  "general",
			Words:  append([]string(nil), builtinAdjectives...),
		},
		{
			ID:     "builtin-nouns",
			Name:   "Built-in nouns",
			Part:   Noun,
			Locale: "en",
			Theme:  "animals",
			Words:  append([]string(nil), builtinNouns...),
		},
	}
}

var builtinAdjectives = []string{
	"brave", "calm", "eager", "fancy", "gentle", "happy", "jolly", "kind",
	"lively", "nice", "proud", "silly", "witty", "zealous", "mighty", "swift",
	"sharp", "bold", "courageous", "resilient", "daring", "bright", "creative",
	"innovative", "dynamic", "energetic", "vibrant", "radiant", "sincere", "honest",
	"steadfast", "ardent", "spirited", "graceful", "gritty", "focused", "optimistic",
	"robust", "stalwart", "resolute", "vigorous", "agile", "ambitious", "ancient",
	"artistic", "authentic", "balanced", "brilliant", "charming", "cheerful", "clever",
	"confident", "cosmic", "crisp", "curious", "dazzling", "determined", "diligent",
	"elegant", "enchanted", "epic", "fearless", "fierce", "flexible", "flowing",
	"friendly", "frosty", "gallant", "generous", "gleaming", "glorious", "golden",
	"harmonious", "heroic", "humble", "illustrious", "immense", "incredible", "inspired",
	"intelligent", "intrepid", "legendary", "luminous", "majestic", "marvelous", "mindful",
	"modern", "mystical", "noble", "peaceful", "persistent", "playful", "polished",
	"powerful", "precious", "pristine", "quick", "quirky", "refreshing",
	"remarkable", "royal", "sage", "savvy", "serene", "shining", "skillful",
	"sleek", "smooth", "sophisticated", "sparkling", "spectacular", "splendid", "stellar",
	"strong", "stunning", "sublime", "subtle", "sunny", "super", "supreme",
	"tactical", "talented", "tenacious", "thoughtful", "thriving", "tidy", "tranquil",
	"trusty", "ultimate", "unique", "valiant", "versatile", "vivid", "warm",
	"whimsical", "wise", "wonderful", "worthy", "youthful", "zesty", "zippy",
}

var builtinNouns = []string{
	"squirrel", "tiger", "eagle", "dolphin", "panther", "lion", "panda", "koala",
	"whale", "shark", "wolf", "falcon", "otter", "rabbit", "bear", "fox", "hedgehog",
	"owl", "leopard", "cheetah", "hyena", "buffalo", "zebra", "giraffe", "coyote",
	"raccoon", "badger", "moose", "stallion", "gazelle", "mongoose", "cougar", "jaguar",
	"bison", "viper", "python", "cobra", "lizard", "frog", "beaver", "porcupine",
	"skunk", "antelope", "hamster", "gerbil", "alpaca", "armadillo", "barracuda",
	"beetle", "bobcat", "butterfly", "camel", "canary", "cardinal", "caribou",
	"cassowary", "chameleon", "chinchilla", "chipmunk", "condor", "cormorant", "crab",
	"crane", "cricket", "crocodile", "crow", "deer", "dingo", "dragonfly",
	"duck", "elephant", "elk", "emu", "ferret", "finch", "firefly",
	"flamingo", "gecko", "goose", "gorilla", "grasshopper", "hawk", "heron",
	"hippo", "horse", "hummingbird", "iguana", "impala", "jackal", "jellyfish",
	"kangaroo", "kestrel", "kingfisher", "kiwi", "ladybug", "lemur", "llama",
	"lobster", "lynx", "macaw", "magpie", "mammoth", "manatee", "manta",
	"marlin", "meerkat", "monkey", "narwhal", "newt", "octopus", "ocelot",
	"okapi", "orangutan", "orca", "oriole", "osprey", "ostrich", "oyster",
	"parrot", "peacock", "pelican", "penguin", "phoenix", "platypus", "puma",
	"quail", "quokka", "raven", "reindeer", "rhino", "robin", "rooster",
	"salamander", "salmon", "scorpion", "seagull", "seahorse", "seal", "sparrow",
	"spider", "squid", "starfish", "stingray", "swan", "tapir", "toucan",
	"trout", "tuna", "turkey", "turtle", "unicorn", "walrus", "warthog",
	"wasp", "weasel", "woodpecker", "wombat", "yak", "yellowfin", "zebu",
}
