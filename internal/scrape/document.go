package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Participant list selectors of the Google Meet people panel
const (
	DefaultNameSelector   = "div[role='list'] > div[role='listitem'] > div > div > div > span:first-child"
	DefaultAvatarSelector = "div[role='list'] > div[role='listitem'] > div > div > img"
	DefaultAvatarAttr     = "src"
)

// Selectors locate participant data in an HTML document
type Selectors struct {
	Names      string
	Avatars    string
	AvatarAttr string
	// Online is optional. Each match is one presence indicator, in
	// participant order, whose text parses as a boolean or reads "online".
	Online string
}

// DefaultSelectors returns the Google Meet selectors
func DefaultSelectors() Selectors {
	return Selectors{
		Names:      DefaultNameSelector,
		Avatars:    DefaultAvatarSelector,
		AvatarAttr: DefaultAvatarAttr,
	}
}

func (s Selectors) withDefaults() Selectors {
	d := DefaultSelectors()
	if s.Names == "" {
		s.Names = d.Names
	}
	if s.Avatars == "" {
		s.Avatars = d.Avatars
	}
	if s.AvatarAttr == "" {
		s.AvatarAttr = d.AvatarAttr
	}
	return s
}

// DocumentSource scrapes participants from an HTML page, either a saved
// file or an http(s) URL that is fetched on every request
type DocumentSource struct {
	Location  string
	Selectors Selectors
	Timeout   time.Duration
	Client    *http.Client
}

// NewDocumentSource creates a document source with the given selectors,
// filling unset selectors with the defaults
func NewDocumentSource(location string, selectors Selectors, timeout time.Duration) *DocumentSource {
	return &DocumentSource{
		Location:  location,
		Selectors: selectors.withDefaults(),
		Timeout:   timeout,
		Client:    http.DefaultClient,
	}
}

func (s *DocumentSource) Name() string { return "document:" + s.Location }

func (s *DocumentSource) Fetch(ctx context.Context) (Response, error) {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	body, err := s.open(ctx)
	if err != nil {
		return Response{}, err
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to parse document: %w", err)
	}
	return Extract(doc, s.Selectors), nil
}

func (s *DocumentSource) open(ctx context.Context) (io.ReadCloser, error) {
	if !isHTTP(s.Location) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := os.Open(s.Location)
		if err != nil {
			return nil, fmt.Errorf("failed to open document: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status fetching document: %s", resp.Status)
	}
	return resp.Body, nil
}

// Extract reads names, avatars and presence from doc. Names and avatars are
// collected independently and paired by position.
func Extract(doc *goquery.Document, selectors Selectors) Response {
	selectors = selectors.withDefaults()

	var resp Response
	doc.Find(selectors.Names).Each(func(_ int, sel *goquery.Selection) {
		resp.Names = append(resp.Names, strings.TrimSpace(sel.Text()))
	})
	doc.Find(selectors.Avatars).Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr(selectors.AvatarAttr)
		resp.Images = append(resp.Images, src)
	})
	if selectors.Online != "" {
		doc.Find(selectors.Online).Each(func(_ int, sel *goquery.Selection) {
			resp.Online = append(resp.Online, parseOnline(sel.Text()))
		})
	}
	return resp
}

func parseOnline(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "online" {
		return true
	}
	online, err := strconv.ParseBool(text)
	return err == nil && online
}

func isHTTP(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
