// Package naming provides the naming convention predicates and suggestion
// helpers behind the NAMING_VIOLATION rule: kebab-case file names and
// PascalCase component keys with role suffixes.
package naming

import (
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// IsKebabCase reports whether s is kebab-case: lowercase letters and
// digits in hyphen-separated runs, with no leading, trailing, or doubled
// hyphens. Example: "team-member", "error-response".
func IsKebabCase(s string) bool {
	if s == "" {
		return false
	}
	for _, run := range strings.Split(s, "-") {
		if run == "" {
			return false
		}
		for _, r := range run {
			if !unicode.IsLower(r) && !unicode.IsDigit(r) {
				return false
			}
		}
	}
	return true
}

// IsPascalCase reports whether s is PascalCase: an uppercase letter
// followed by letters and digits only. Example: "CreateTeamRequest".
func IsPascalCase(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// words splits an identifier into its constituent words, handling both
// separator characters and camel-case boundaries.
// "create_teamMember" -> ["create", "team", "Member"].
func words(s string) []string {
	var out []string
	for _, chunk := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ' ' || r == '/'
	}) {
		for _, w := range camelcase.Split(chunk) {
			if strings.TrimSpace(w) != "" {
				out = append(out, w)
			}
		}
	}
	return out
}

// ToKebabCase converts an arbitrary identifier to kebab-case.
// Example: "TeamMember" -> "team-member".
func ToKebabCase(s string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, "-")
}

// ToPascalCase converts an arbitrary identifier to PascalCase.
// Example: "team_member" -> "TeamMember".
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(titleCaser.String(strings.ToLower(w)))
	}
	return b.String()
}

// SuggestComponentName converts s to PascalCase and appends suffix when
// not already present. Used to propose a compliant name in violation
// messages. Example: ("create_team", "Request") -> "CreateTeamRequest".
func SuggestComponentName(s, suffix string) string {
	name := ToPascalCase(s)
	if suffix != "" && !strings.HasSuffix(name, suffix) {
		name += suffix
	}
	return name
}
