package repository

import (
	"fmt"
	"strings"

	"buildsense/backend/services/inspector-service/internal/sanitize"
)

// maxElements caps every topology query result.
const maxElements = 500

// ElementFilter narrows a topology query. The zero value matches every room
// up to the result cap.
type ElementFilter struct {
	Category     string
	Floor        string
	NameContains string
	Zone         string
}

// BuildElementsQuery assembles one read query for the rooms matching the
// filter. All filter values pass the sanitizer before being embedded.
func BuildElementsQuery(f ElementFilter) (string, error) {
	var conds []string

	if v := strings.TrimSpace(f.Category); v != "" {
		lit, err := sanitize.Sanitize(strings.ToLower(v), sanitize.GraphLiteral)
		if err != nil {
			return "", err
		}
		conds = append(conds, categoryCond(lit))
	}

	if v := strings.TrimSpace(f.Floor); v != "" {
		lit, err := sanitize.Sanitize(v, sanitize.GraphLiteral)
		if err != nil {
			return "", err
		}
		conds = append(conds, fmt.Sprintf(`toString(r.storey) = "%s"`, lit))
	}

	if v := strings.TrimSpace(f.NameContains); v != "" {
		lit, err := sanitize.Sanitize(strings.ToLower(v), sanitize.GraphLiteral)
		if err != nil {
			return "", err
		}
		conds = append(conds, fmt.Sprintf(
			`(toLower(r.name) CONTAINS "%s" OR toLower(coalesce(r.long_name, "")) CONTAINS "%s")`, lit, lit))
	}

	if v := strings.TrimSpace(f.Zone); v != "" {
		lower, err := sanitize.Sanitize(strings.ToLower(v), sanitize.GraphLiteral)
		if err != nil {
			return "", err
		}
		exact, err := sanitize.Sanitize(v, sanitize.GraphLiteral)
		if err != nil {
			return "", err
		}
		conds = append(conds, fmt.Sprintf(`(%s OR toString(r.storey) = "%s")`, categoryCond(lower), exact))
	}

	var b strings.Builder
	b.WriteString("MATCH (r:Room)")
	if len(conds) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(strings.Join(conds, "\n  AND "))
	}
	b.WriteString("\nRETURN r.room_key AS id, r.name AS name, r.long_name AS long_name,\n")
	b.WriteString("       r.globalid AS global_id, r.type AS type, toString(r.storey) AS floor,\n")
	b.WriteString("       r.category_it AS category_it, r.category_en AS category_en,\n")
	b.WriteString("       r.area AS area, r.is_external AS is_external, r.all_properties AS properties\n")
	b.WriteString(fmt.Sprintf("LIMIT %d", maxElements))
	return b.String(), nil
}

func categoryCond(lowered string) string {
	return fmt.Sprintf(
		`(toLower(coalesce(r.category_it, "")) CONTAINS "%s" OR toLower(coalesce(r.category_en, "")) CONTAINS "%s")`,
		lowered, lowered)
}
