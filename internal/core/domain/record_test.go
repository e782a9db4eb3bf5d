package domain

import (
	"testing"
	"time"
)

func TestSearchIndexID(t *testing.T) {
	tests := []struct {
		name       string
		host       string
		entityType string
		id         int64
		want       string
	}{
		{
			name:       "dotted host",
			host:       "yalesites.yale.edu",
			entityType: "node",
			id:         18,
			want:       "yalesites-yale-edu-node-18",
		},
		{
			name:       "host with port",
			host:       "localhost:8080",
			entityType: "node",
			id:         1,
			want:       "localhost-8080-node-1",
		},
		{
			name:       "run of symbols collapses to one dash",
			host:       "a...b",
			entityType: "media",
			id:         7,
			want:       "a-b-media-7",
		},
		{
			name:       "empty host degrades to empty prefix",
			host:       "",
			entityType: "node",
			id:         18,
			want:       "-node-18",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchIndexID(tt.host, tt.entityType, tt.id)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSearchIndexID_Deterministic(t *testing.T) {
	first := SearchIndexID("yalesites.yale.edu", "node", 18)
	for i := 0; i < 10; i++ {
		if got := SearchIndexID("yalesites.yale.edu", "node", 18); got != first {
			t.Fatalf("expected stable id %q, got %q", first, got)
		}
	}
}

func TestAtomTime(t *testing.T) {
	created := time.Unix(1697126961, 0)
	if got := AtomTime(created); got != "2023-10-12T16:09:21+00:00" {
		t.Errorf("expected 2023-10-12T16:09:21+00:00, got %s", got)
	}

	// Non-UTC inputs normalize to a +00:00 offset
	loc := time.FixedZone("CET", 3600)
	if got := AtomTime(time.Date(2023, 11, 30, 17, 11, 18, 0, loc)); got != "2023-11-30T16:11:18+00:00" {
		t.Errorf("expected 2023-11-30T16:11:18+00:00, got %s", got)
	}
}

type fakeItem struct {
	entityType string
	bundle     string
}

func (f fakeItem) EntityType() string   { return f.entityType }
func (f fakeItem) Bundle() string       { return f.bundle }
func (f fakeItem) ID() int64            { return 1 }
func (f fakeItem) Title() string        { return "title" }
func (f fakeItem) CreatedAt() time.Time { return time.Time{} }
func (f fakeItem) ChangedAt() time.Time { return time.Time{} }
func (f fakeItem) CanonicalURL() string { return "" }

func TestDocumentTypeOf(t *testing.T) {
	if got := DocumentTypeOf(fakeItem{entityType: "node", bundle: "page"}); got != "node/page" {
		t.Errorf("expected node/page, got %s", got)
	}
	if got := DocumentTypeOf(fakeItem{entityType: "user"}); got != "user" {
		t.Errorf("expected user, got %s", got)
	}
}
