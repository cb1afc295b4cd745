package flowgen

import (
	"sort"
	"strings"
)

// stopwords are dropped during tokenization. The list covers the filler
// words that dominate workflow descriptions ("create a bot that ...").
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "but": {}, "by": {}, "can": {}, "do": {}, "for": {},
	"from": {}, "get": {}, "has": {}, "have": {}, "i": {}, "in": {},
	"into": {}, "is": {}, "it": {}, "me": {}, "my": {}, "of": {},
	"on": {}, "or": {}, "that": {}, "the": {}, "this": {}, "to": {},
	"use": {}, "uses": {}, "using": {}, "want": {}, "which": {},
	"will": {}, "with": {},
}

// tokenize lower-cases s, splits on non-alphanumeric runs, and drops
// stop words and single-character fragments.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// deriveKeywords builds the sorted, deduplicated keyword set for a
// component from its descriptive text plus any declared keywords.
func deriveKeywords(declared []string, parts ...string) []string {
	seen := make(map[string]struct{})
	for _, kw := range declared {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			seen[kw] = struct{}{}
		}
	}
	for _, part := range parts {
		for _, tok := range tokenize(part) {
			seen[tok] = struct{}{}
		}
	}
	keywords := make([]string, 0, len(seen))
	for kw := range seen {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return keywords
}

// tokenMatches reports whether a description token matches a keyword.
// Besides exact equality, a substring match in either direction counts
// when the contained side is at least three characters, so "chatbot"
// matches the keyword "chat".
func tokenMatches(token, keyword string) bool {
	if token == keyword {
		return true
	}
	if len(keyword) >= 3 && strings.Contains(token, keyword) {
		return true
	}
	if len(token) >= 3 && strings.Contains(keyword, token) {
		return true
	}
	return false
}
