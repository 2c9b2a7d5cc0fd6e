package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSourceChoosesByLocation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want any
	}{
		{name: "empty", opts: Options{}, want: &StaticSource{}},
		{name: "websocket", opts: Options{Location: "ws://localhost:8765"}, want: &WebSocketSource{}},
		{name: "secure websocket", opts: Options{Location: "wss://relay.example.test"}, want: &WebSocketSource{}},
		{name: "json file", opts: Options{Location: "reply.JSON"}, want: &JSONSource{}},
		{name: "json endpoint", opts: Options{Location: "http://localhost/members", Format: FormatJSON}, want: &JSONSource{}},
		{name: "html file", opts: Options{Location: "meet.html"}, want: &DocumentSource{}},
		{name: "html url", opts: Options{Location: "https://meet.example.test/abc"}, want: &DocumentSource{}},
		{name: "forced html", opts: Options{Location: "dump.json", Format: FormatHTML}, want: &DocumentSource{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.want, NewSource(tt.opts))
		})
	}
}

func TestNewSourceFillsDefaultSelectors(t *testing.T) {
	src := NewSource(Options{Location: "meet.html", Selectors: Selectors{Names: "li"}}).(*DocumentSource)

	assert.Equal(t, "li", src.Selectors.Names)
	assert.Equal(t, DefaultAvatarSelector, src.Selectors.Avatars)
	assert.Equal(t, DefaultAvatarAttr, src.Selectors.AvatarAttr)
}
