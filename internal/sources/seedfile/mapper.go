package seedfile

import (
	"fmt"

	"github.com/pmlaogao/portal/internal/domain"
)

// Mapper converts seed file entries to domain link items.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapLinks converts a seed File to link items. Entries without a title or
// URL are skipped; an unset type defaults to external. IDs are left empty,
// they are assigned at parse time by the store.
func (m *Mapper) MapLinks(f File) ([]domain.LinkItem, error) {
	var links []domain.LinkItem
	for _, props := range f.Links {
		if props.Title == "" || props.URL == "" {
			continue
		}

		linkType := domain.LinkType(props.Type)
		if props.Type == "" {
			linkType = domain.LinkTypeExternal
		}

		links = append(links, domain.LinkItem{
			Title:       props.Title,
			URL:         props.URL,
			Description: props.Description,
			Type:        linkType,
			IconKey:     props.Icon,
		})
	}

	if len(links) == 0 {
		return nil, fmt.Errorf("no valid links found in seed file")
	}
	return links, nil
}
