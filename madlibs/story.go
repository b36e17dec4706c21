// Package madlibs fills user supplied words into a story template and serves
// the form and result pages.
package madlibs

import (
	"regexp"
	"sort"
	"strings"
)

// Story is a list of prompts plus a template containing {prompt} markers.
//
//	s := NewStory([]string{"noun", "verb"}, "I love to {verb} a good {noun}.")
//	s.Generate(map[string]string{"verb": "eat", "noun": "mango"})
//	// "I love to eat a good mango."
//
// Prompts only drive the form. Generate substitutes every key it is given,
// declared or not.
type Story struct {
	Prompts  []string
	Template string
}

var tokenPattern = regexp.MustCompile(`\{([^{}]+)\}`)

func NewStory(prompts []string, template string) Story {
	return Story{
		Prompts:  append([]string(nil), prompts...),
		Template: template,
	}
}

func DefaultStory() Story {
	return NewStory(
		[]string{"place", "noun", "verb", "adjective", "plural_noun"},
		`Once upon a time in a long-ago {place}, there lived a
       large {adjective} {noun}. It loved to {verb} {plural_noun}.`,
	)
}

// Generate replaces every {key} in the template with its answer. Keys are
// applied one after another, declared prompts first in declared order and
// then any extra keys sorted, so the output does not depend on map order.
func (s Story) Generate(answers map[string]string) string {
	text := s.Template
	for _, key := range s.substitutionOrder(answers) {
		text = strings.ReplaceAll(text, "{"+key+"}", answers[key])
	}
	return text
}

func (s Story) substitutionOrder(answers map[string]string) []string {
	order := make([]string, 0, len(answers))
	seen := make(map[string]bool, len(answers))

	for _, p := range s.Prompts {
		if _, ok := answers[p]; ok && !seen[p] {
			order = append(order, p)
			seen[p] = true
		}
	}

	var extra []string
	for key := range answers {
		if !seen[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return append(order, extra...)
}

// Answers builds the answer mapping for the declared prompts. lookup returns
// "" for prompts that were not supplied.
func (s Story) Answers(lookup func(string) string) map[string]string {
	answers := make(map[string]string, len(s.Prompts))
	for _, p := range s.Prompts {
		answers[p] = lookup(p)
	}
	return answers
}

// Tokens lists the distinct {name} markers in the template in order of first appearance.
func (s Story) Tokens() []string {
	var tokens []string
	seen := map[string]bool{}
	for _, m := range tokenPattern.FindAllStringSubmatch(s.Template, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			tokens = append(tokens, m[1])
		}
	}
	return tokens
}

// Undeclared returns template markers that no prompt will fill.
func (s Story) Undeclared() []string {
	declared := make(map[string]bool, len(s.Prompts))
	for _, p := range s.Prompts {
		declared[p] = true
	}

	var out []string
	for _, tok := range s.Tokens() {
		if !declared[tok] {
			out = append(out, tok)
		}
	}
	return out
}

// Unused returns prompts that never appear in the template.
func (s Story) Unused() []string {
	var out []string
	for _, p := range s.Prompts {
		if !strings.Contains(s.Template, "{"+p+"}") {
			out = append(out, p)
		}
	}
	return out
}
