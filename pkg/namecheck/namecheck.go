// Package namecheck validates filenames against the library naming grammar
// "Author - Title (Year).ext". It is an optional gate run before a report is
// built; failing names are an expected, actionable outcome and are collected
// rather than raised as errors.
package namecheck

import (
	"regexp"
	"strings"
)

// The pattern is assembled from named fragments so each rule stays readable
// on its own.
const (
	// A word is letters only; hyphens are allowed strictly between two
	// letters, and a trailing possessive 's is permitted.
	word = `[A-Za-z]+(?:-[A-Za-z]+)*(?:'s)?`

	// An author word may additionally carry a single leading O' prefix
	// (O'Reilly, O'Brien). Authors are one or two space-separated words and
	// never contain digits.
	authorWord = `(?:O')?` + word
	author     = authorWord + `(?: ` + authorWord + `)?`

	// A numeric token is digits with interior dots only between digits
	// (3, 3.0, 2.10.1).
	number = `[0-9]+(?:\.[0-9]+)*`

	// Fixed whitelist of technology tokens that break the word rules.
	special = `C#|F#|\.NET|ASP\.NET|C\+\+|HTML5`

	titleToken = `(?:` + special + `|` + number + `|` + word + `)`

	// Tokens are joined by a single space, a comma plus space, or a hyphen
	// plus space, with no trailing separator.
	titleSep = `(?: |, |- )`
	title    = titleToken + `(?:` + titleSep + titleToken + `)*`

	year      = `\([0-9]{4}\)`
	extension = `\.(?:pdf|djvu)`
)

var namePattern = regexp.MustCompile(
	`^` + author + ` - ` + title + ` ` + year + extension + `$`)

// IsValidName reports whether filename matches the
// "Author - Title (YYYY).ext" grammar exactly, anchored at both ends.
// Extensions are lowercase .pdf or .djvu only.
func IsValidName(filename string) bool {
	return namePattern.MatchString(filename)
}

// CheckAll returns the names that fail the grammar, preserving input order.
// An empty result means every name passed.
func CheckAll(names []string) []string {
	var invalid []string
	for _, name := range names {
		if !IsValidName(name) {
			invalid = append(invalid, name)
		}
	}
	return invalid
}

// Describe returns a short human-readable statement of the expected grammar,
// used in CLI error messages.
func Describe() string {
	return strings.Join([]string{
		"expected form: Author - Title (YYYY).pdf|.djvu",
		"author: one or two words, letters only",
		"title: words, versions like 3.0, or C#, F#, .NET, ASP.NET, C++, HTML5",
	}, "; ")
}
