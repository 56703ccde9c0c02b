package dom

import "strings"

// TokenList is a live view over a whitespace separated attribute, like
// the browser's DOMTokenList.
type TokenList struct {
	el   *Element
	attr string
}

func (l *TokenList) tokens() []string {
	v, _ := l.el.GetAttribute(l.attr)
	fields := strings.Fields(v)
	seen := make(map[string]bool, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

func (l *TokenList) write(tokens []string) {
	if len(tokens) == 0 && !l.el.HasAttribute(l.attr) {
		return
	}
	l.el.SetAttribute(l.attr, strings.Join(tokens, " "))
}

// Values returns the current tokens in order.
func (l *TokenList) Values() []string {
	return l.tokens()
}

// Len returns the number of tokens.
func (l *TokenList) Len() int {
	return len(l.tokens())
}

// String returns the serialized token list.
func (l *TokenList) String() string {
	return strings.Join(l.tokens(), " ")
}

// Contains reports whether token is present.
func (l *TokenList) Contains(token string) bool {
	for _, t := range l.tokens() {
		if t == token {
			return true
		}
	}
	return false
}

// Add appends tokens that are not already present.
func (l *TokenList) Add(tokens ...string) {
	cur := l.tokens()
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		found := false
		for _, c := range cur {
			if c == tok {
				found = true
				break
			}
		}
		if !found {
			cur = append(cur, tok)
		}
	}
	l.write(cur)
}

// Remove drops the given tokens.
func (l *TokenList) Remove(tokens ...string) {
	if len(tokens) == 0 {
		return
	}
	drop := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		drop[t] = true
	}
	cur := l.tokens()
	out := cur[:0]
	for _, c := range cur {
		if !drop[c] {
			out = append(out, c)
		}
	}
	l.write(out)
}

// Toggle adds or removes token depending on force and reports whether the
// token is present afterwards.
func (l *TokenList) Toggle(token string, force bool) bool {
	if force {
		l.Add(token)
	} else {
		l.Remove(token)
	}
	return force
}
