package console

import "strings"

// Completer computes completion candidates for a partial input line from
// the static vocabulary alone. It never consults backend services.
type Completer struct {
	tokens []string
}

func NewCompleter() *Completer {
	return &Completer{tokens: Tokens()}
}

// Complete returns the vocabulary tokens that start with line, in
// declaration order. The empty line matches the whole vocabulary.
func (c *Completer) Complete(line string) []string {
	candidates := make([]string, 0, len(c.tokens))
	for _, token := range c.tokens {
		if strings.HasPrefix(token, line) {
			candidates = append(candidates, token)
		}
	}
	return candidates
}

// Hinter suggests a full line for a partial one, typically from input
// history. The console only consumes the capability; the hosting loop
// decides whether and how to provide it.
type Hinter interface {
	Hint(line string) (string, bool)
}

type nopHinter struct{}

func (nopHinter) Hint(string) (string, bool) { return "", false }

// NopHinter never hints. It is the default when no hinter is injected.
func NopHinter() Hinter { return nopHinter{} }
