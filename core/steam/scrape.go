package steam

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"games-in-common/core/failure"
	"games-in-common/core/metrics"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Store page titles look like "Portal 2 on Steam" or "Save 75% on Portal 2 on Steam".
var storeTitlePattern = regexp.MustCompile(`^(?:Save \d{1,3}% on )?(.+) on Steam$`)

// GetAppName scrapes the game name from the store page title. Unknown apps redirect to the
// store front, whose title does not match, and yield ErrNoMatch.
func (c *Client) GetAppName(ctx context.Context, appID AppID) (string, error) {
	const op = "GetAppName"
	start := time.Now()

	resp, err := c.do(ctx, c.storeURL+"/app/"+appID.String())
	if err != nil {
		c.metrics.RecordRemoteCall(op, metrics.OutcomeError, time.Since(start))
		return "", failure.Remote(op, appID.String(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.RecordRemoteCall(op, metrics.OutcomeError, time.Since(start))
		return "", failure.Remote(op, appID.String(), &statusError{code: resp.StatusCode})
	}

	name, err := parseStoreTitle(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.metrics.RecordRemoteCall(op, metrics.OutcomeError, time.Since(start))
		return "", failure.Remote(op, appID.String(), err)
	}
	if name == "" {
		c.metrics.RecordRemoteCall(op, metrics.OutcomeEmpty, time.Since(start))
		c.logger.Debug("Store page has no usable title", zap.Int("app_id", int(appID)))
		return "", ErrNoMatch
	}

	c.metrics.RecordRemoteCall(op, metrics.OutcomeOK, time.Since(start))
	return name, nil
}

// parseStoreTitle extracts the game name from a store page, or "" when the page is not a
// game page.
func parseStoreTitle(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse store page: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	m := storeTitlePattern.FindStringSubmatch(title)
	if m == nil {
		return "", nil
	}
	return strings.TrimSpace(m[1]), nil
}
