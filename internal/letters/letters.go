package letters

import "strings"

// Letter is a single quizzable item: the symbol the learner must find, plus
// the illustrative word and emoji shown on the board.
type Letter struct {
	Symbol string
	Word   string
	Emoji  string
}

// Prompt returns the symbol as it is shown on the board and the choice
// buttons.
func (l Letter) Prompt(lowercase bool) string {
	if lowercase {
		return strings.ToLower(l.Symbol)
	}
	return l.Symbol
}

// Spoken returns the text handed to the speaker for this letter. Letters are
// always spoken in upper case so TTS engines read the letter name, not a
// sound.
func (l Letter) Spoken() string {
	return strings.ToUpper(l.Symbol)
}

var alphabet = []Letter{
	{Symbol: "A", Word: "apple", Emoji: "🍎"},
	{Symbol: "B", Word: "ball", Emoji: "🟠"},
	{Symbol: "C", Word: "cat", Emoji: "🐱"},
	{Symbol: "D", Word: "dog", Emoji: "🐶"},
	{Symbol: "E", Word: "egg", Emoji: "🥚"},
	{Symbol: "F", Word: "fish", Emoji: "🐟"},
	{Symbol: "G", Word: "goat", Emoji: "🐐"},
	{Symbol: "H", Word: "hat", Emoji: "👒"},
	{Symbol: "I", Word: "igloo", Emoji: "🏠"},
	{Symbol: "J", Word: "jelly", Emoji: "🍮"},
	{Symbol: "K", Word: "kite", Emoji: "🪁"},
	{Symbol: "L", Word: "leaf", Emoji: "🍃"},
	{Symbol: "M", Word: "moon", Emoji: "🌙"},
	{Symbol: "N", Word: "nest", Emoji: "🪺"},
	{Symbol: "O", Word: "orange", Emoji: "🍊"},
	{Symbol: "P", Word: "pizza", Emoji: "🍕"},
	{Symbol: "Q", Word: "queen", Emoji: "👸"},
	{Symbol: "R", Word: "rainbow", Emoji: "🌈"},
	{Symbol: "S", Word: "sun", Emoji: "☀️"},
	{Symbol: "T", Word: "turtle", Emoji: "🐢"},
	{Symbol: "U", Word: "umbrella", Emoji: "☂️"},
	{Symbol: "V", Word: "violin", Emoji: "🎻"},
	{Symbol: "W", Word: "whale", Emoji: "🐳"},
	{Symbol: "X", Word: "xylophone", Emoji: "🎼"},
	{Symbol: "Y", Word: "yarn", Emoji: "🧶"},
	{Symbol: "Z", Word: "zebra", Emoji: "🦓"},
}

// Alphabet returns the letters A-Z in display order. The returned slice is a
// copy and may be modified by the caller.
func Alphabet() []Letter {
	out := make([]Letter, len(alphabet))
	copy(out, alphabet)
	return out
}

// Symbols returns the symbol of every letter, in order.
func Symbols(ls []Letter) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.Symbol
	}
	return out
}

// Prompts returns the display key of every letter, in order.
func Prompts(ls []Letter, lowercase bool) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.Prompt(lowercase)
	}
	return out
}

// Index maps symbols to letters for O(1) lookup.
type Index map[string]Letter

// NewIndex builds an Index over ls.
func NewIndex(ls []Letter) Index {
	idx := make(Index, len(ls))
	for _, l := range ls {
		idx[l.Symbol] = l
	}
	return idx
}

// Lookup returns the letter for symbol. Unknown symbols yield a Letter with
// only the symbol set.
func (idx Index) Lookup(symbol string) Letter {
	if l, ok := idx[symbol]; ok {
		return l
	}
	return Letter{Symbol: symbol}
}
