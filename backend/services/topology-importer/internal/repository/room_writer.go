package repository

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// RoomRecord is one room upsert.
type RoomRecord struct {
	RoomKey       string
	Name          string
	LongName      string
	GlobalID      string
	Type          string
	Storey        string
	Area          *float64
	IsExternal    *bool
	CategoryIT    string
	CategoryEN    string
	AllProperties string
}

// RoomWriter upserts rooms into the graph store.
type RoomWriter struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewRoomWriter returns writer.
func NewRoomWriter(driver neo4j.DriverWithContext, logger *zap.Logger) *RoomWriter {
	return &RoomWriter{driver: driver, logger: logger}
}

// UpsertRooms merges every record on its room key in one write transaction.
func (w *RoomWriter) UpsertRooms(ctx context.Context, rooms []RoomRecord) error {
	if len(rooms) == 0 {
		return nil
	}

	const query = `
		UNWIND $rooms AS room
		MERGE (r:Room {room_key: room.room_key})
		SET r.name = room.name,
		    r.long_name = room.long_name,
		    r.globalid = room.globalid,
		    r.type = room.type,
		    r.storey = room.storey,
		    r.area = room.area,
		    r.is_external = room.is_external,
		    r.category_it = room.category_it,
		    r.category_en = room.category_en,
		    r.all_properties = room.all_properties
	`

	params := make([]interface{}, 0, len(rooms))
	for _, room := range rooms {
		params = append(params, roomParam(room))
	}

	session := w.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := neo4j.ExecuteWrite(ctx, session, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		return tx.Run(ctx, query, map[string]interface{}{"rooms": params})
	})
	return err
}

// CreatePlaceholders ensures a node exists for every mapping key that
// matched no space. Existing rooms are left untouched.
func (w *RoomWriter) CreatePlaceholders(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	const query = `
		UNWIND $keys AS key
		MERGE (r:Room {room_key: key})
		ON CREATE SET r.name = key, r.type = "Placeholder"
	`

	session := w.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := neo4j.ExecuteWrite(ctx, session, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		return tx.Run(ctx, query, map[string]interface{}{"keys": keys})
	})
	return err
}

func roomParam(r RoomRecord) map[string]interface{} {
	m := map[string]interface{}{
		"room_key":       r.RoomKey,
		"name":           r.Name,
		"long_name":      r.LongName,
		"globalid":       r.GlobalID,
		"type":           r.Type,
		"storey":         r.Storey,
		"area":           nil,
		"is_external":    nil,
		"category_it":    r.CategoryIT,
		"category_en":    r.CategoryEN,
		"all_properties": r.AllProperties,
	}
	if r.Area != nil {
		m["area"] = *r.Area
	}
	if r.IsExternal != nil {
		m["is_external"] = *r.IsExternal
	}
	return m
}
