// Package log builds zerolog events for the store's lifecycle: slot
// allocation, destruction, and lazy column registration.
package log

import (
	"reflect"

	"github.com/rs/zerolog"

	"github.com/colstore/colstore/codec"
	"github.com/colstore/colstore/types"
)

// Loggable is the view of a World the summary helpers need.
type Loggable interface {
	ColumnTypes() []reflect.Type
	EntityCount() int
}

func loadColumnIntoArrayLogger(t reflect.Type, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Str("component_type", t.String())
	return arrayLogger.Dict(dictLogger)
}

func loadColumnsToEvent(ev *zerolog.Event, target Loggable) *zerolog.Event {
	colTypes := target.ColumnTypes()
	ev.Int("total_columns", len(colTypes))
	arrayLogger := zerolog.Arr()
	for _, t := range colTypes {
		arrayLogger = loadColumnIntoArrayLogger(t, arrayLogger)
	}
	return ev.Array("columns", arrayLogger)
}

func loadEntityIntoEvent(ev *zerolog.Event, e types.Entity) *zerolog.Event {
	return ev.Uint32("entity_index", e.Index).Uint32("entity_generation", e.Generation)
}

// EntityCreated logs a slot allocation at debug level. recycled marks a
// free-list reuse rather than a fresh slot.
func EntityCreated(logger *zerolog.Logger, e types.Entity, recycled bool) {
	ev := logger.Debug()
	loadEntityIntoEvent(ev, e).Bool("recycled", recycled).Msg("entity created")
}

// EntityDestroyed logs an entity destruction at debug level.
func EntityDestroyed(logger *zerolog.Logger, e types.Entity) {
	ev := logger.Debug()
	loadEntityIntoEvent(ev, e).Msg("entity destroyed")
}

// ColumnCreated logs the lazy registration of a new component column.
func ColumnCreated(logger *zerolog.Logger, elem reflect.Type, slots int) {
	logger.Debug().Str("component_type", elem.String()).Int("slots", slots).Msg("column created")
}

// ComponentSet logs a component attach at trace level, payload included as
// raw JSON. The encode only happens when trace is enabled.
func ComponentSet(logger *zerolog.Logger, e types.Entity, t reflect.Type, value any) {
	ev := logger.Trace()
	if !ev.Enabled() {
		return
	}
	ev = loadEntityIntoEvent(ev, e).Str("component_type", t.String())
	bz, err := codec.Encode(value)
	if err != nil {
		ev.AnErr("payload_error", err).Msg("component set")
		return
	}
	ev.RawJSON("payload", bz).Msg("component set")
}

// Columns logs a summary of every registered column at the given level.
func Columns(logger *zerolog.Logger, target Loggable, level zerolog.Level) {
	ev := logger.WithLevel(level)
	loadColumnsToEvent(ev, target).Send()
}

// World logs everything about the world: entity count and columns.
func World(logger *zerolog.Logger, target Loggable, level zerolog.Level) {
	ev := logger.WithLevel(level)
	ev.Int("total_entities", target.EntityCount())
	loadColumnsToEvent(ev, target).Send()
}
