package vocab

// DefaultSeed is the list of common words a fresh dictionary can be
// seeded with.
var DefaultSeed = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
	"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
	"this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
	"or", "an", "will", "my", "one", "all", "would", "there", "their", "what",
	"so", "up", "out", "if", "about", "who", "get", "which", "go", "me",
	"hello", "world", "discord", "copy", "translator", "language", "cursed",
}
