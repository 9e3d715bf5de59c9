// Package arxiv imports paper metadata from the arXiv Atom API.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/flashpapers/internal/paper"
	"github.com/at-ishikawa/flashpapers/internal/srs"
)

// Modern IDs like 1706.03762v5 and legacy IDs like cs.CL/9901001.
var arxivIDPattern = regexp.MustCompile(`^(\d{4}\.\d{4,5}(v\d+)?|[a-z-]+(\.[A-Z]{2})?/\d{7}(v\d+)?)$`)

type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

func NewClient(baseURL string, timeout time.Duration, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/atom+xml")

	return &Client{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID        string       `xml:"id"`
	Title     string       `xml:"title"`
	Summary   string       `xml:"summary"`
	Authors   []atomAuthor `xml:"author"`
	Links     []atomLink   `xml:"link"`
	Published string       `xml:"published"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

// ValidateID reports whether the given string is a well formed arXiv
// identifier.
func ValidateID(id string) error {
	if !arxivIDPattern.MatchString(id) {
		return fmt.Errorf("invalid arXiv identifier: %s", id)
	}
	return nil
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	if strings.Contains(errStr, "status code: 5") {
		return true
	}
	if strings.Contains(errStr, "status code: 429") {
		return true
	}
	return false
}

// Fetch downloads the metadata for the given arXiv ID and returns a
// draft paper with fresh scheduling state.
func (client *Client) Fetch(ctx context.Context, id string, params srs.Parameters, now time.Time) (paper.Paper, error) {
	if err := ValidateID(id); err != nil {
		return paper.Paper{}, err
	}

	var entry atomEntry
	if err := retry.Do(
		func() error {
			found, err := client.query(ctx, id)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			entry = found
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return paper.Paper{}, err
	}

	return entryToPaper(entry, params, now), nil
}

func (client *Client) query(ctx context.Context, id string) (atomEntry, error) {
	res, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParam("id_list", id).
		SetQueryParam("max_results", "1").
		Get("")
	if err != nil {
		return atomEntry{}, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return atomEntry{}, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}

	var feed atomFeed
	if err := xml.Unmarshal(res.Body(), &feed); err != nil {
		return atomEntry{}, fmt.Errorf("xml.Unmarshal > %w", err)
	}
	if len(feed.Entries) == 0 || strings.TrimSpace(feed.Entries[0].Title) == "" {
		return atomEntry{}, retry.Unrecoverable(fmt.Errorf("no arXiv entry found for %s", id))
	}
	return feed.Entries[0], nil
}

func entryToPaper(entry atomEntry, params srs.Parameters, now time.Time) paper.Paper {
	authors := make([]string, 0, len(entry.Authors))
	for _, author := range entry.Authors {
		if author.Name != "" {
			authors = append(authors, author.Name)
		}
	}

	p := paper.New(normalizeWhitespace(entry.Title), strings.Join(authors, ", "), params, now)
	p.BackgroundOfTheStudy = normalizeWhitespace(entry.Summary)
	p.Link = entry.ID
	for _, link := range entry.Links {
		if link.Title == "pdf" || link.Type == "application/pdf" {
			p.Notes = fmt.Sprintf("PDF: %s", link.Href)
			break
		}
	}
	return p
}

// The Atom feed wraps long fields with newlines and indentation.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
