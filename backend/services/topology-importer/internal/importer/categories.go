package importer

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize folds a label into its match form: lowercase with runs of
// non-alphanumerics collapsed to single spaces.
func Normalize(text string) string {
	return strings.TrimSpace(nonAlnum.ReplaceAllString(strings.ToLower(text), " "))
}

// categoryTable maps Italian category descriptions onto English names.
// Matching is by substring on the uppercased source, first entry wins.
var categoryTable = []struct{ it, en string }{
	{"UFFICI", "Office"},
	{"AULE", "Classroom"},
	{"AULA", "Classroom"},
	{"SERVIZI", "Restroom"},
	{"WC", "Restroom"},
	{"CIRC.ORIZ", "Corridor"},
	{"CONNETTIVO", "Corridor"},
	{"SCALE", "Stairs"},
	{"DEPOSITI", "Storage"},
	{"DEPOSITO", "Storage"},
	{"TECNICI", "Technical Room"},
	{"LOCALE TECNICO", "Technical Room"},
	{"LABORATORI", "Laboratory"},
	{"LABORATORIO", "Laboratory"},
	{"RISTORO", "Break Room"},
	{"SPAZI COMPLEMENTARI", "Support Space"},
	{"SALA RIUNIONI", "Meeting Room"},
	{"SALA STUDIO", "Study Room"},
}

// TranslateCategory maps an Italian category description to its English
// name; empty when no entry applies.
func TranslateCategory(categoryIT string) string {
	if categoryIT == "" {
		return ""
	}
	upper := strings.ToUpper(categoryIT)
	for _, entry := range categoryTable {
		if strings.Contains(upper, entry.it) {
			return entry.en
		}
	}
	return ""
}
