package scraper

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"assessment-recommender/internal/domain/assessment"

	"github.com/gocolly/colly/v2"
)

// listingPageSize is how many rows the vendor catalog shows per page;
// pagination is expressed as a start offset in that unit.
const listingPageSize = 12

const detailRequestsPerSecond = 3

// CatalogScraper walks the vendor's public product catalog and rebuilds
// the assessment list from its listing rows and detail pages.
type CatalogScraper struct {
	catalogURL  string
	allowedHost string
	workers     int
	logger      *log.Logger
}

func NewCatalogScraper(catalogURL string, workers int, logger *log.Logger) *CatalogScraper {
	catalogURL = strings.TrimSpace(catalogURL)
	if workers <= 0 {
		workers = 1
	}
	return &CatalogScraper{
		catalogURL:  catalogURL,
		allowedHost: hostFromCatalogURL(catalogURL),
		workers:     workers,
		logger:      logger,
	}
}

// catalogRow is one listing-table row: the detail link plus the flags
// the listing already shows.
type catalogRow struct {
	Name     string
	Link     string
	Remote   bool
	Adaptive bool
	Keys     []string
}

// catalogDetail is what a single detail page contributes.
type catalogDetail struct {
	name        string
	description string
	duration    int
	remote      bool
	keys        []string
}

// Scrape fetches up to pages listing pages, falls back to a headless
// browser when the plain listing renders empty, then fans detail fetches
// out over the worker pool. Rows whose detail fetch or validation fails
// are logged and skipped; the run only errors when nothing usable came
// back at all.
func (s *CatalogScraper) Scrape(ctx context.Context, pages int) ([]assessment.Assessment, error) {
	if s == nil || s.catalogURL == "" {
		return nil, errors.New("scraper: no catalog url")
	}
	if pages <= 0 {
		pages = 1
	}

	rows := make([]catalogRow, 0)
	for page := 1; page <= pages; page++ {
		items, err := s.scrapeListingPage(ctx, pageURL(s.catalogURL, page))
		if err != nil {
			s.logf("[Scraper] listing page=%d failed: %v", page, err)
			continue
		}
		if len(items) == 0 {
			break
		}
		rows = append(rows, items...)
	}

	if len(rows) == 0 {
		headlessRows, err := s.fetchListingHeadless(ctx, pages*listingPageSize)
		if err != nil {
			return nil, fmt.Errorf("scraper: catalog listing: %w", err)
		}
		rows = headlessRows
		s.logf("[Scraper] listing recovered via headless rows=%d", len(rows))
	}

	rows = dedupeRows(rows)

	pool := NewPool(s.workers, detailRequestsPerSecond)
	results := pool.Run(ctx)

	var mu sync.Mutex
	out := make([]assessment.Assessment, 0, len(rows))

	for _, row := range rows {
		row := row
		pool.Submit(func(ctx context.Context) error {
			a, err := s.scrapeAssessment(ctx, row)
			if err != nil {
				return fmt.Errorf("%s: %w", row.Link, err)
			}
			mu.Lock()
			out = append(out, a)
			mu.Unlock()
			return nil
		})
	}
	pool.Close()

	failed := 0
	for err := range results {
		if err != nil {
			failed++
			s.logf("[Scraper] detail skipped: %v", err)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	s.logf("[Scraper] catalog scraped items=%d failed=%d", len(out), failed)
	if len(out) == 0 {
		return nil, errors.New("scraper: no assessments scraped")
	}
	return out, nil
}

func (s *CatalogScraper) scrapeAssessment(ctx context.Context, row catalogRow) (assessment.Assessment, error) {
	detail, err := s.scrapeDetailPage(ctx, row.Link)
	if err != nil {
		return assessment.Assessment{}, err
	}

	typ, ok := typeFromKeys(row.Keys)
	if !ok {
		typ, ok = typeFromKeys(detail.keys)
	}
	if !ok {
		return assessment.Assessment{}, errors.New("no recognized test type key")
	}

	a := assessment.Assessment{
		ID:              assessmentIDFromLink(row.Link),
		Name:            pickNonEmpty(row.Name, detail.name),
		Type:            typ,
		Description:     detail.description,
		DurationMinutes: detail.duration,
		RemoteAvailable: row.Remote || detail.remote,
		AdaptiveSupport: row.Adaptive,
		Link:            row.Link,
	}
	if err := a.Validate(); err != nil {
		return assessment.Assessment{}, err
	}
	return a, nil
}

func (s *CatalogScraper) scrapeListingPage(ctx context.Context, listURL string) ([]catalogRow, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 500 * time.Millisecond, Delay: 300 * time.Millisecond})

	c.OnRequest(func(r *colly.Request) {
		for k, v := range scrapeHeaders() {
			r.Headers.Set(k, v)
		}
	})

	rows := make([]catalogRow, 0)

	c.OnHTML("tr", func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.ChildAttr("td.custom__table-heading__title a", "href"))
		if href == "" {
			return
		}

		row := catalogRow{
			Name: strings.TrimSpace(e.ChildText("td.custom__table-heading__title a")),
			Link: e.Request.AbsoluteURL(href),
		}

		e.ForEach("td.custom__table-heading__general", func(i int, cell *colly.HTMLElement) {
			yes := strings.Contains(cell.DOM.Find("span.catalogue__circle").AttrOr("class", ""), "-yes")
			switch i {
			case 0:
				row.Remote = yes
			case 1:
				row.Adaptive = yes
			}
		})
		e.ForEach("span.product-catalogue__key", func(_ int, key *colly.HTMLElement) {
			if k := strings.TrimSpace(key.Text); k != "" {
				row.Keys = append(row.Keys, k)
			}
		})

		rows = append(rows, row)
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(listURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}
	return rows, nil
}

func (s *CatalogScraper) scrapeDetailPage(ctx context.Context, detailURL string) (catalogDetail, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 500 * time.Millisecond, Delay: 300 * time.Millisecond})

	c.OnRequest(func(r *colly.Request) {
		for k, v := range scrapeHeaders() {
			r.Headers.Set(k, v)
		}
	})

	var out catalogDetail
	var reqErr error

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if out.name == "" {
			out.name = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("div.product-catalogue-training-calendar__row", func(e *colly.HTMLElement) {
		heading := strings.ToLower(strings.TrimSpace(e.ChildText("h4")))
		body := strings.TrimSpace(e.ChildText("p"))
		switch {
		case strings.Contains(heading, "description"):
			out.description = body
		case strings.Contains(heading, "assessment length"), strings.Contains(heading, "completion time"):
			out.duration = parseDurationText(body)
		}
	})

	c.OnHTML("p.product-catalogue__small-text", func(e *colly.HTMLElement) {
		if !strings.Contains(strings.ToLower(e.Text), "remote testing") {
			return
		}
		if strings.Contains(e.DOM.Find("span.catalogue__circle").AttrOr("class", ""), "-yes") {
			out.remote = true
		}
	})

	c.OnHTML("span.product-catalogue__key", func(e *colly.HTMLElement) {
		if k := strings.TrimSpace(e.Text); k != "" {
			out.keys = append(out.keys, k)
		}
	})

	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return catalogDetail{}, ctx.Err()
	}
	if err := c.Visit(detailURL); err != nil {
		return catalogDetail{}, err
	}
	c.Wait()
	if reqErr != nil {
		return catalogDetail{}, reqErr
	}
	return out, nil
}

func (s *CatalogScraper) logf(format string, args ...any) {
	if s != nil && s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

func dedupeRows(rows []catalogRow) []catalogRow {
	seen := map[string]struct{}{}
	out := make([]catalogRow, 0, len(rows))
	for _, r := range rows {
		link := strings.TrimSpace(r.Link)
		if link == "" {
			continue
		}
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		out = append(out, r)
	}
	return out
}

func pageURL(base string, page int) string {
	if page <= 1 {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%sstart=%d", base, sep, (page-1)*listingPageSize)
}

func scrapeHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "assessment-recommender-scraper/0.1",
		"Accept-Language": "en-US,en;q=0.9",
	}
}

func hostFromCatalogURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "www.shl.com"
	}
	host := u.Host
	if host == "" {
		return "www.shl.com"
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
