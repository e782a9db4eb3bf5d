package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/custodia-labs/sercha-feed/internal/adapters/driven/render"
	"github.com/custodia-labs/sercha-feed/internal/core/ports/driven/mocks"
	"github.com/custodia-labs/sercha-feed/internal/core/services"
)

// feedFeature drives the feed endpoint end to end: real feed service and
// renderer, mock content repository.
type feedFeature struct {
	repo    *mocks.MockContentRepository
	server  *Server
	resp    *httptest.ResponseRecorder
	records []map[string]any
}

func (f *feedFeature) reset() {
	f.repo = mocks.NewMockContentRepository()
	feedService := services.NewFeedService(services.FeedServiceConfig{
		Repository: f.repo,
		Renderer:   render.New(),
		Now: func() time.Time {
			return time.Date(2024, 1, 23, 16, 5, 38, 0, time.UTC)
		},
	})
	f.server = NewServer(Config{Host: "127.0.0.1", Port: 0, Version: "test"}, feedService, nil, nil, nil, nil)
	f.resp = nil
	f.records = nil
}

func (f *feedFeature) addItem(entityType string, id int, bundle, title, path string, published, anonymous bool) error {
	f.repo.Add(mocks.Item{
		Type:              entityType,
		SubType:           bundle,
		ItemID:            int64(id),
		Label:             title,
		Created:           time.Unix(1697126961, 0),
		Changed:           time.Unix(1701360678, 0),
		URL:               "https://yalesites.yale.edu" + path,
		RawBody:           "<p>" + title + "</p>",
		Format:            "basic_html",
		Published:         published,
		AnonymousReadable: anonymous,
	})
	return nil
}

func (f *feedFeature) aPublishedItem(entityType string, id int, bundle, title, path string) error {
	return f.addItem(entityType, id, bundle, title, path, true, true)
}

func (f *feedFeature) anUnpublishedItem(entityType string, id int, bundle, title, path string) error {
	return f.addItem(entityType, id, bundle, title, path, false, true)
}

func (f *feedFeature) aRestrictedItem(entityType string, id int, bundle, title, path string) error {
	return f.addItem(entityType, id, bundle, title, path, true, false)
}

func (f *feedFeature) theFeedIsRequested(host string) error {
	req := httptest.NewRequest(http.MethodGet, "/api/ai/v1/content", nil)
	req.Host = host
	f.resp = httptest.NewRecorder()
	f.server.router.ServeHTTP(f.resp, req)

	if f.resp.Code == http.StatusOK {
		if err := json.Unmarshal(f.resp.Body.Bytes(), &f.records); err != nil {
			return fmt.Errorf("decode feed body: %w", err)
		}
	}
	return nil
}

func (f *feedFeature) theResponseStatusIs(status int) error {
	if f.resp.Code != status {
		return fmt.Errorf("expected status %d, got %d", status, f.resp.Code)
	}
	return nil
}

func (f *feedFeature) theResponseBodyIs(body string) error {
	if got := strings.TrimSpace(f.resp.Body.String()); got != body {
		return fmt.Errorf("expected body %q, got %q", body, got)
	}
	return nil
}

func (f *feedFeature) theFeedContainsRecords(count int) error {
	if len(f.records) != count {
		return fmt.Errorf("expected %d records, got %d", count, len(f.records))
	}
	return nil
}

func (f *feedFeature) record(n int) (map[string]any, error) {
	if n < 1 || n > len(f.records) {
		return nil, fmt.Errorf("no record %d in a feed of %d", n, len(f.records))
	}
	return f.records[n-1], nil
}

func (f *feedFeature) recordHasField(n int, field, want string) error {
	rec, err := f.record(n)
	if err != nil {
		return err
	}
	got, ok := rec[field].(string)
	if !ok {
		return fmt.Errorf("record %d has no string field %q", n, field)
	}
	if got != want {
		return fmt.Errorf("expected record %d %s %q, got %q", n, field, want, got)
	}
	return nil
}

func (f *feedFeature) recordContentContains(n int, want string) error {
	rec, err := f.record(n)
	if err != nil {
		return err
	}
	content, _ := rec["documentContent"].(string)
	if !strings.Contains(content, want) {
		return fmt.Errorf("expected record %d content to contain %q, got %q", n, want, content)
	}
	return nil
}

func TestContentFeedFeature(t *testing.T) {
	f := &feedFeature{}

	suite := godog.TestSuite{
		ScenarioInitializer: func(sc *godog.ScenarioContext) {
			sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
				f.reset()
				return ctx, nil
			})

			sc.Step(`^a published "([^"]*)" item (\d+) of bundle "([^"]*)" titled "([^"]*)" at path "([^"]*)"$`, f.aPublishedItem)
			sc.Step(`^an unpublished "([^"]*)" item (\d+) of bundle "([^"]*)" titled "([^"]*)" at path "([^"]*)"$`, f.anUnpublishedItem)
			sc.Step(`^a restricted "([^"]*)" item (\d+) of bundle "([^"]*)" titled "([^"]*)" at path "([^"]*)"$`, f.aRestrictedItem)
			sc.Step(`^the feed is requested for host "([^"]*)"$`, f.theFeedIsRequested)
			sc.Step(`^the response status is (\d+)$`, f.theResponseStatusIs)
			sc.Step(`^the response body is "([^"]*)"$`, f.theResponseBodyIs)
			sc.Step(`^the feed contains (\d+) records?$`, f.theFeedContainsRecords)
			sc.Step(`^record (\d+) has (\w+) "([^"]*)"$`, f.recordHasField)
			sc.Step(`^record (\d+) content contains "([^"]*)"$`, f.recordContentContains)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"testdata/features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("feature tests failed")
	}
}
