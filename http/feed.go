package http

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/kevinshome/pepper"
)

// Ensure FeedService implements pepper.FeedService.
var _ pepper.FeedService = (*FeedService)(nil)

// FeedService reads the PEP RSS feed via HTTP.
type FeedService struct {
	client *http.Client
}

// NewFeedService creates a new FeedService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewFeedService(client *http.Client) *FeedService {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedService{client: client}
}

// RecentPEPs fetches and parses the RSS feed at feedURL.
// Items whose title does not start with "PEP <number>:" are skipped.
func (s *FeedService) RecentPEPs(ctx context.Context, feedURL string) ([]*pepper.FeedItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := s.fetchURL(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, pepper.Errorf(pepper.EMALFORMED, "parsing feed XML: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "rss" {
		return nil, pepper.Errorf(pepper.EMALFORMED, "feed is not an RSS document")
	}
	channel := root.SelectElement("channel")
	if channel == nil {
		return nil, pepper.Errorf(pepper.EMALFORMED, "feed has no channel")
	}

	return parseItems(channel), nil
}

// parseItems extracts the items of an RSS <channel> element.
func parseItems(channel *etree.Element) []*pepper.FeedItem {
	items := []*pepper.FeedItem{}
	for _, el := range channel.SelectElements("item") {
		number, title, ok := parseItemTitle(childText(el, "title"))
		if !ok {
			continue
		}
		items = append(items, &pepper.FeedItem{
			Number:    number,
			Title:     title,
			Link:      childText(el, "link"),
			Published: parsePubDate(childText(el, "pubDate")),
		})
	}
	return items
}

// parseItemTitle splits "PEP 789: Title" into its number and title.
func parseItemTitle(s string) (int, string, bool) {
	designator, title, ok := strings.Cut(s, ":")
	if !ok {
		return 0, "", false
	}
	num, found := strings.CutPrefix(strings.TrimSpace(designator), "PEP ")
	if !found {
		return 0, "", false
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return 0, "", false
	}
	return n, strings.TrimSpace(title), true
}

// parsePubDate parses an RSS date. Unparseable dates yield the zero time.
func parsePubDate(s string) time.Time {
	for _, layout := range []string{time.RFC1123, time.RFC1123Z} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

// fetchURL fetches a URL and returns the response body.
func (s *FeedService) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, pepper.Errorf(pepper.EINVALID, "invalid URL %q: %v", targetURL, err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, pepper.Errorf(pepper.EREMOTE, "request to %s failed: %v", targetURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &pepper.StatusError{URL: targetURL, StatusCode: resp.StatusCode}
	}

	return resp.Body, nil
}
