// Package command turns typed player input into battle commands, tolerating
// aliases, prefixes and small typos.
package command

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Verb is a canonical command.
type Verb string

const (
	Attack Verb = "attack"
	Potion Verb = "potion"
	Flee   Verb = "flee"
	Fight  Verb = "fight"
	Buy    Verb = "buy"
	Status Verb = "status"
	Help   Verb = "help"
	Quit   Verb = "quit"
)

var (
	ErrEmpty   = errors.New("empty command")
	ErrUnknown = errors.New("unknown command")
)

// Command is parsed input. Arg holds whatever followed the verb, e.g. the
// item name for Buy.
type Command struct {
	Verb  Verb
	Arg   string
	Fuzzy bool
}

type phrase struct {
	verb   Verb
	alias  string
	tokens []string
}

var phrases = build(map[Verb][]string{
	Attack: {"hit", "strike", "swing", "a"},
	Potion: {"drink", "heal", "quaff", "use potion", "p"},
	Flee:   {"run", "escape", "run away", "f"},
	Fight:  {"next", "encounter", "new fight", "n"},
	Buy:    {"purchase", "shop", "b"},
	Status: {"stats", "info", "s"},
	Help:   {"commands", "h", "?"},
	Quit:   {"exit", "bye", "q"},
})

func build(aliases map[Verb][]string) []phrase {
	var out []phrase
	for verb, list := range aliases {
		out = append(out, phrase{verb: verb, alias: string(verb), tokens: []string{string(verb)}})
		for _, a := range list {
			out = append(out, phrase{verb: verb, alias: a, tokens: strings.Fields(a)})
		}
	}
	// Longer phrases first so "run away" beats "run".
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].tokens) != len(out[j].tokens) {
			return len(out[i].tokens) > len(out[j].tokens)
		}
		return out[i].alias < out[j].alias
	})
	return out
}

// Parse reads one line of input.
func Parse(input string) (Command, error) {
	tokens := strings.Fields(normalise(input))
	if len(tokens) == 0 {
		return Command{}, ErrEmpty
	}

	for _, p := range phrases {
		if len(tokens) >= len(p.tokens) && strings.Join(tokens[:len(p.tokens)], " ") == p.alias {
			return Command{Verb: p.verb, Arg: strings.Join(tokens[len(p.tokens):], " ")}, nil
		}
	}

	head, rest := tokens[0], strings.Join(tokens[1:], " ")
	if verb, ok := matchPrefix(head); ok {
		return Command{Verb: verb, Arg: rest}, nil
	}
	if verb, ok := matchFuzzy(head); ok {
		return Command{Verb: verb, Arg: rest, Fuzzy: true}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknown, head)
}

// matchPrefix accepts an abbreviation of at least two letters that names
// exactly one verb.
func matchPrefix(token string) (Verb, bool) {
	if len(token) < 2 {
		return "", false
	}
	var found Verb
	for _, p := range phrases {
		if len(p.tokens) != 1 || !strings.HasPrefix(p.alias, token) {
			continue
		}
		if found != "" && found != p.verb {
			return "", false
		}
		found = p.verb
	}
	return found, found != ""
}

func matchFuzzy(token string) (Verb, bool) {
	if len(token) < 3 {
		return "", false
	}
	best, bestDist := Verb(""), -1
	for _, p := range phrases {
		if len(p.tokens) != 1 || len(p.alias) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(token, p.alias)
		if dist > levenshteinLimit(len(p.alias)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best, bestDist = p.verb, dist
		}
	}
	return best, bestDist != -1
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normalise(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '?' {
			return r
		}
		return ' '
	}, s)
}

// Usage lists the verbs with their shortest alias.
func Usage() string {
	return "attack (a), potion (p), flee (f), fight (n), buy <item> (b), status (s), help (h), quit (q)"
}
