package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pmlaogao/portal/internal/domain"
	"github.com/pmlaogao/portal/internal/logger"
	"github.com/pmlaogao/portal/internal/mdtable"
	"github.com/pmlaogao/portal/internal/storage"
)

// logHeader defines the current 5-field LogEntry row schema. Earlier portal
// versions stored 4-field rows without the Actor column.
var logHeader = []string{"Actor", "IP", "Location", "Time", "Count"}

const (
	logFieldCount       = 5
	legacyLogFieldCount = 4
)

// LogRepo stores the append-only access log as one table blob. Rows are only
// appended or bulk-reset; they are never mutated or reordered.
type LogRepo struct {
	kv  storage.KV
	log logger.Logger
}

// LoadAll parses the stored blob into log entries. A blob written by an
// earlier schema version (no Actor column) is migrated in memory: every row
// gets the Unknown actor while the remaining fields are preserved. Nothing
// is written back until the next Append.
func (r *LogRepo) LoadAll(ctx context.Context) ([]domain.LogEntry, error) {
	raw, err := loadRaw(ctx, r.kv, KeyLogs, seedLogs)
	if err != nil {
		return nil, err
	}
	return parseLogs(raw), nil
}

// LoadRaw returns the stored blob (or the seed) for the admin log view.
func (r *LogRepo) LoadRaw(ctx context.Context) (string, error) {
	return loadRaw(ctx, r.kv, KeyLogs, seedLogs)
}

// Append adds one entry to the end of the log. Appending to a legacy blob
// rewrites it in the current schema first; appending to a current blob is a
// textual row append.
func (r *LogRepo) Append(ctx context.Context, entry domain.LogEntry) error {
	raw, err := loadRaw(ctx, r.kv, KeyLogs, seedLogs)
	if err != nil {
		return err
	}

	var blob string
	if hasActorColumn(raw) {
		blob = strings.TrimSpace(raw) + "\n" + mdtable.FormatRow(encodeLog(entry))
	} else {
		// Lazy migration: the first append after a schema upgrade
		// rewrites the whole blob in the 5-field form.
		entries := append(parseLogs(raw), entry)
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, encodeLog(e))
		}
		blob = mdtable.Generate(logHeader, rows)
		r.log.Info("migrated legacy access log on append",
			logger.Int("rows", len(entries)))
	}

	if err := r.kv.Set(ctx, KeyLogs, blob); err != nil {
		return fmt.Errorf("failed to append log entry: %w", err)
	}
	return nil
}

// ResetToDefault discards all rows, restoring the empty seed table.
func (r *LogRepo) ResetToDefault(ctx context.Context) error {
	if err := r.kv.Set(ctx, KeyLogs, seedLogs); err != nil {
		return fmt.Errorf("failed to reset logs: %w", err)
	}
	return nil
}

// hasActorColumn detects the schema version from the stored header.
func hasActorColumn(raw string) bool {
	for _, col := range mdtable.Header(raw) {
		if col == "Actor" {
			return true
		}
	}
	return false
}

func parseLogs(raw string) []domain.LogEntry {
	if hasActorColumn(raw) {
		rows := mdtable.Parse(raw, logFieldCount)
		entries := make([]domain.LogEntry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, domain.LogEntry{
				Actor:     row[0],
				IP:        row[1],
				Location:  row[2],
				Timestamp: row[3],
				Count:     parseCount(row[4]),
			})
		}
		return entries
	}

	rows := mdtable.Parse(raw, legacyLogFieldCount)
	entries := make([]domain.LogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.LogEntry{
			Actor:     domain.UnknownValue,
			IP:        row[0],
			Location:  row[1],
			Timestamp: row[2],
			Count:     parseCount(row[3]),
		})
	}
	return entries
}

func encodeLog(e domain.LogEntry) []string {
	return []string{e.Actor, e.IP, e.Location, e.Timestamp, strconv.Itoa(e.Count)}
}

// parseCount tolerates rows whose count field predates the integer schema.
func parseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
