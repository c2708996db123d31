package importer

import (
	"sort"

	"github.com/rowanvale/templateboard/internal/domain"
)

const everyoneRole = "@everyone"

// MapToPost turns a fetched template into a board post. It is a pure
// transform; the only non-determinism comes through the injected id
// generator and clock.
func (i *Importer) MapToPost(tmpl domain.Template, sourceURL, author string) domain.Post {
	channels := make([]domain.GuildChannel, len(tmpl.SerializedSourceGuild.Channels))
	copy(channels, tmpl.SerializedSourceGuild.Channels)
	sort.SliceStable(channels, func(a, b int) bool {
		return channels[a].Position < channels[b].Position
	})

	names := []string{}
	for _, c := range channels {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}
	if len(names) == 0 {
		names = []string{domain.NoChannels}
	}

	roles := []string{}
	for _, r := range tmpl.SerializedSourceGuild.Roles {
		if r.Name != "" && r.Name != everyoneRole {
			roles = append(roles, r.Name)
		}
	}
	if len(roles) == 0 {
		roles = []string{domain.NoRoles}
	}

	name := tmpl.Name
	if name == "" {
		name = "Untitled template"
	}

	return domain.Post{
		ID:         i.newID(),
		Code:       tmpl.Code,
		Name:       name,
		UsageCount: tmpl.UsageCount,
		Channels:   names,
		Roles:      roles,
		SourceURL:  sourceURL,
		Author:     author,
		CreatedAt:  i.now(),
	}
}
