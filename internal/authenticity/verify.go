package authenticity

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"hiredocs/internal/entity"
)

// maxTitleBody caps how much of a verification page we read for the title.
const maxTitleBody = 1 << 20

// VerifyURL checks whether a QR-embedded URL resolves, and pulls the HTML
// title out of the landing page when it does.
func (c *Checker) VerifyURL(ctx context.Context, rawURL string) entity.URLVerification {
	result := entity.URLVerification{URL: rawURL}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		result.Error = "Invalid URL format"
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	req.Header.Set("User-Agent", c.verify.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
			result.Error = "Request timeout"
		} else {
			result.Error = err.Error()
		}
		return result
	}
	defer resp.Body.Close()

	result.Accessible = true
	status := resp.StatusCode
	result.StatusCode = &status
	contentType := resp.Header.Get("Content-Type")
	result.ContentType = &contentType

	if strings.Contains(contentType, "text/html") {
		if title := htmlTitle(io.LimitReader(resp.Body, maxTitleBody)); title != "" {
			result.Title = &title
		}
	}

	c.logger.Info("qr url verified", "url", rawURL, "status", status)
	return result
}

func htmlTitle(r io.Reader) string {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
