package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Article is a scraped external news page, ready for admin review before
// publishing into the news board.
type Article struct {
	Title     string
	Content   string
	SourceURL string
}

var httpClient = &http.Client{Timeout: 15 * time.Second}

// Fetch downloads and parses one article page.
func Fetch(rawURL, userAgent string) (*Article, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme: %s", u.Scheme)
	}

	req, err := http.NewRequest("GET", rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", u.Host, resp.StatusCode)
	}

	return Parse(resp.Body, rawURL)
}

// Parse extracts title and body text from an article document. Selector
// strategy: prefer og:title, then the first h1; body from the usual article
// containers, falling back to all paragraphs.
func Parse(r io.Reader, pageURL string) (*Article, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	title, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
	title = strings.TrimSpace(title)
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if title == "" {
		return nil, fmt.Errorf("no title found in %s", pageURL)
	}

	body := doc.Find("article, div.article-body, div.entry-content, main").First()
	if body.Length() == 0 {
		body = doc.Selection
	}
	body.Find("script, style, nav, header, footer, aside").Remove()

	var parts []string
	body.Find("p, h2, h3, ul, ol").Each(func(_ int, s *goquery.Selection) {
		if text := cleanText(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return nil, fmt.Errorf("no readable content in %s", pageURL)
	}

	return &Article{
		Title:     title,
		Content:   strings.Join(parts, "\n\n"),
		SourceURL: pageURL,
	}, nil
}

var spaceRE = regexp.MustCompile(`\s+`)

func cleanText(s string) string {
	return strings.TrimSpace(spaceRE.ReplaceAllString(s, " "))
}
