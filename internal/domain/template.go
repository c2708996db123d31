package domain

// Template mirrors the parts of the Discord guild template payload the board
// consumes. Everything else in the response is ignored.
type Template struct {
	Code                  string      `json:"code"`
	Name                  string      `json:"name"`
	UsageCount            int         `json:"usage_count"`
	SerializedSourceGuild SourceGuild `json:"serialized_source_guild"`
}

type SourceGuild struct {
	Channels []GuildChannel `json:"channels"`
	Roles    []GuildRole    `json:"roles"`
}

type GuildChannel struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

type GuildRole struct {
	Name string `json:"name"`
}
