package scrape

import (
	"path/filepath"
	"strings"
	"time"
)

// Source formats
const (
	FormatAuto = ""
	FormatHTML = "html"
	FormatJSON = "json"
)

// Options selects and configures a Source
type Options struct {
	Location  string
	Format    string
	Timeout   time.Duration
	Selectors Selectors
}

// NewSource picks a source for opts.Location: ws:// and wss:// dial a
// websocket peer, JSON locations speak the GET_MEMBERS contract, anything
// else is scraped as HTML. An empty location yields the demo participants.
func NewSource(opts Options) Source {
	location := strings.TrimSpace(opts.Location)
	switch {
	case location == "":
		return DemoSource()
	case strings.HasPrefix(location, "ws://"), strings.HasPrefix(location, "wss://"):
		return NewWebSocketSource(location, opts.Timeout)
	case opts.Format == FormatJSON:
		return NewJSONSource(location, opts.Timeout)
	case opts.Format == FormatAuto && strings.EqualFold(filepath.Ext(location), ".json"):
		return NewJSONSource(location, opts.Timeout)
	default:
		return NewDocumentSource(location, opts.Selectors, opts.Timeout)
	}
}
