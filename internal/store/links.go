package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pmlaogao/portal/internal/domain"
	"github.com/pmlaogao/portal/internal/logger"
	"github.com/pmlaogao/portal/internal/mdtable"
	"github.com/pmlaogao/portal/internal/storage"
)

// linkHeader defines the 5-field LinkItem row schema.
var linkHeader = []string{"Title", "URL", "Description", "Type", "Icon"}

const linkFieldCount = 5

// RenderLinks renders typed items into a table blob, e.g. to build a seed
// from a configured seed file.
func RenderLinks(links []domain.LinkItem) string {
	rows := make([][]string, 0, len(links))
	for _, l := range links {
		rows = append(rows, []string{l.Title, l.URL, l.Description, string(l.Type), l.IconKey})
	}
	return mdtable.Generate(linkHeader, rows)
}

// LinkRepo stores the portal's resource links as one table blob. There is no
// per-row mutation: editing happens by replacing the whole blob, and every
// replace regenerates the synthetic row IDs.
type LinkRepo struct {
	kv   storage.KV
	log  logger.Logger
	seed string
}

// SetSeed overrides the built-in default blob, e.g. with content mapped from
// a configured seed file. Affects LoadAll on absent state and ResetToDefault.
func (r *LinkRepo) SetSeed(blob string) { r.seed = blob }

// LoadAll parses the stored blob into link items, assigning fresh IDs.
// Absent state yields the seed; a blob that parses to nothing yields an
// empty slice and a diagnostic, never an error the caller must distinguish
// from "no data".
func (r *LinkRepo) LoadAll(ctx context.Context) ([]domain.LinkItem, error) {
	raw, err := r.LoadRaw(ctx)
	if err != nil {
		return nil, err
	}
	return r.parse(raw), nil
}

// LoadRaw returns the stored blob (or the seed) for the admin raw editor.
func (r *LinkRepo) LoadRaw(ctx context.Context) (string, error) {
	return loadRaw(ctx, r.kv, KeyLinks, r.seed)
}

// ReplaceAll rewrites the whole table from typed items.
func (r *LinkRepo) ReplaceAll(ctx context.Context, links []domain.LinkItem) error {
	return r.ReplaceRaw(ctx, RenderLinks(links))
}

// ReplaceRaw rewrites the whole blob verbatim, as the admin editor does.
func (r *LinkRepo) ReplaceRaw(ctx context.Context, blob string) error {
	if err := r.kv.Set(ctx, KeyLinks, blob); err != nil {
		return fmt.Errorf("failed to replace links: %w", err)
	}
	return nil
}

// ResetToDefault restores the seed blob.
func (r *LinkRepo) ResetToDefault(ctx context.Context) error {
	return r.ReplaceRaw(ctx, r.seed)
}

func (r *LinkRepo) parse(raw string) []domain.LinkItem {
	rows := mdtable.Parse(raw, linkFieldCount)
	if len(rows) == 0 && raw != "" {
		r.log.Debug("links blob yielded no rows")
	}

	links := make([]domain.LinkItem, 0, len(rows))
	for _, row := range rows {
		links = append(links, domain.LinkItem{
			ID:          "link-" + uuid.NewString(),
			Title:       row[0],
			URL:         row[1],
			Description: row[2],
			Type:        domain.LinkType(row[3]),
			IconKey:     row[4],
		})
	}
	return links
}
