package handlers

import (
	"net/http"

	"github.com/pmlaogao/portal/internal/domain"
	"github.com/pmlaogao/portal/internal/httpserver/deps"
	"github.com/pmlaogao/portal/internal/logger"
)

type linkItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Icon        string `json:"icon"`
}

type linksResponse struct {
	Links []linkItem `json:"links"`
}

// Links serves the parsed resource table for the public listing.
func Links(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := d.Portal.Links(r.Context())
		if err != nil {
			d.Logger.Error("failed to load links", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load links")
			return
		}

		out := make([]linkItem, 0, len(items))
		for _, it := range items {
			out = append(out, toLinkItem(it))
		}
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, linksResponse{Links: out})
	}
}

func toLinkItem(it domain.LinkItem) linkItem {
	return linkItem{
		ID:          it.ID,
		Title:       it.Title,
		URL:         it.URL,
		Description: it.Description,
		Type:        string(it.Type),
		Icon:        it.IconKey,
	}
}
