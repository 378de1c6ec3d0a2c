package importer

import "strings"

// MatchKey finds the mapping key for a space: exact match on the normalized
// name forms first, then containment against the combined name forms. Keys
// are tried in the given order.
func MatchKey(space SpaceRecord, keys []string) (string, bool) {
	pName := Normalize(space.Name)
	pLong := Normalize(space.LongName)
	pGlobal := Normalize(space.GlobalID)
	combined1 := Normalize(space.LongName + " " + space.Name)
	combined2 := Normalize(space.Name + " " + space.LongName)

	for _, key := range keys {
		k := Normalize(key)
		if k == "" {
			continue
		}
		switch k {
		case pGlobal, pName, pLong, combined1, combined2:
			return key, true
		}
		if combined1 != "" && (strings.Contains(combined1, k) || strings.Contains(k, combined1)) {
			return key, true
		}
		if combined2 != "" && (strings.Contains(combined2, k) || strings.Contains(k, combined2)) {
			return key, true
		}
	}
	return "", false
}
