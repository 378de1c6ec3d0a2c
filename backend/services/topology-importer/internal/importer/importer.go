package importer

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"buildsense/backend/libs/sensorcfg"
	"buildsense/backend/services/topology-importer/internal/repository"
)

// Property set names and keys carried by the building export.
const (
	psetSpaceCommon = "Pset_SpaceCommon"
	psetLocali      = "IFC_Locali"
	propStorey      = "PBSs_III_PIANO"
	propCategory    = "SBSm_CATEGORIA_DESCRIZIONE"
)

// RoomStore accepts the upserts of one import run.
type RoomStore interface {
	UpsertRooms(ctx context.Context, rooms []repository.RoomRecord) error
	CreatePlaceholders(ctx context.Context, keys []string) error
}

// Importer drives one import run.
type Importer struct {
	writer RoomStore
	logger *zap.Logger
}

// New builds importer.
func New(writer RoomStore, logger *zap.Logger) *Importer {
	return &Importer{writer: writer, logger: logger}
}

// Summary counts one import run.
type Summary struct {
	Spaces       int
	Matched      int
	AutoKeyed    int
	Skipped      int
	Placeholders int
}

// Run upserts every space under its mapping key, auto-keys unmatched spaces
// by global id, and creates placeholder nodes for mapping keys that matched
// no space. Keys are tried in sorted order so reruns are deterministic.
func (i *Importer) Run(ctx context.Context, spaces []SpaceRecord, snap *sensorcfg.Snapshot) (*Summary, error) {
	keys := make([]string, 0, len(snap.RoomSensors))
	for key := range snap.RoomSensors {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	matched := make(map[string]bool)
	rooms := make([]repository.RoomRecord, 0, len(spaces))
	summary := &Summary{Spaces: len(spaces)}

	for _, space := range spaces {
		key, found := MatchKey(space, keys)
		switch {
		case found:
			matched[key] = true
			summary.Matched++
		case space.GlobalID != "":
			key = "ifc_auto_" + space.GlobalID
			summary.AutoKeyed++
		default:
			summary.Skipped++
			continue
		}
		rooms = append(rooms, buildRoom(space, key))
	}

	if err := i.writer.UpsertRooms(ctx, rooms); err != nil {
		return nil, err
	}

	var placeholders []string
	for _, key := range keys {
		if !matched[key] {
			placeholders = append(placeholders, key)
		}
	}
	if err := i.writer.CreatePlaceholders(ctx, placeholders); err != nil {
		return nil, err
	}
	summary.Placeholders = len(placeholders)

	i.logger.Info("import complete",
		zap.Int("spaces", summary.Spaces),
		zap.Int("matched", summary.Matched),
		zap.Int("auto_keyed", summary.AutoKeyed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("placeholders", summary.Placeholders),
	)
	return summary, nil
}

// buildRoom folds a space into its room upsert, extracting the project
// property sets. The custom storey property wins over the container storey.
func buildRoom(space SpaceRecord, roomKey string) repository.RoomRecord {
	common := space.PropertySets[psetSpaceCommon]
	locali := space.PropertySets[psetLocali]

	storey := space.Storey
	if v, ok := stringProp(locali, propStorey); ok {
		storey = v
	}
	categoryIT, _ := stringProp(locali, propCategory)

	rec := repository.RoomRecord{
		RoomKey:    roomKey,
		Name:       space.Name,
		LongName:   space.LongName,
		GlobalID:   space.GlobalID,
		Type:       space.ObjectType,
		Storey:     storey,
		CategoryIT: categoryIT,
		CategoryEN: TranslateCategory(categoryIT),
	}

	for _, areaKey := range []string{"GrossPlannedArea", "NetPlannedArea", "Area"} {
		if v, ok := floatProp(common, areaKey); ok {
			rec.Area = &v
			break
		}
	}
	if v, ok := common["IsExternal"].(bool); ok {
		rec.IsExternal = &v
	}

	if len(space.PropertySets) > 0 {
		if raw, err := json.Marshal(space.PropertySets); err == nil {
			rec.AllProperties = string(raw)
		}
	}
	return rec
}

func stringProp(set map[string]interface{}, key string) (string, bool) {
	v, ok := set[key].(string)
	return v, ok && v != ""
}

// floatProp accepts numbers and numeric text, which building exports mix.
func floatProp(set map[string]interface{}, key string) (float64, bool) {
	switch v := set[key].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}
