package importer

import (
	"net/url"
	"strings"
)

var shareHosts = map[string]bool{
	"discord.new":     true,
	"discord.com":     true,
	"www.discord.com": true,
}

// ExtractCode pulls the template code out of a pasted share link. Short
// links (discord.new/<code>) carry the code as the first path segment; full
// links carry it right after a literal "template" segment. Anything else,
// including links on other hosts, is rejected.
func ExtractCode(raw string) (string, bool) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Host == "" {
		return "", false
	}

	if !shareHosts[parsed.Hostname()] {
		return "", false
	}

	segments := []string{}
	for _, part := range strings.Split(parsed.Path, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}

	if parsed.Hostname() == "discord.new" {
		if len(segments) == 0 {
			return "", false
		}
		return segments[0], true
	}

	for i, part := range segments {
		if part == "template" && i+1 < len(segments) {
			return segments[i+1], true
		}
	}
	return "", false
}
