package domain

import (
	"fmt"
	"regexp"
	"time"
)

// SourceName identifies the content repository system in every record.
const SourceName = "drupal"

// atomLayout is RFC 3339 extended with an explicit numeric offset.
// The stock time.RFC3339 layout would render UTC as "Z"; the ingestion
// pipeline expects "+00:00".
const atomLayout = "2006-01-02T15:04:05-07:00"

// Record is the canonical shape of one published content item as served
// to the search/embedding pipeline. Records are built fresh on every
// request and never persisted.
type Record struct {
	ID              string `json:"id"`
	Source          string `json:"source"`
	DocumentType    string `json:"documentType"`
	DocumentID      int64  `json:"documentId"`
	DocumentTitle   string `json:"documentTitle"`
	DocumentURL     string `json:"documentUrl"`
	DocumentContent string `json:"documentContent"`
	MetaTags        string `json:"metaTags"`
	MetaDescription string `json:"metaDescription"`
	DateCreated     string `json:"dateCreated"`
	DateModified    string `json:"dateModified"`
	DateProcessed   string `json:"dateProcessed"`
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// SearchIndexID derives the record id for an item as seen from a given
// host. Every run of non-alphanumeric characters in the host collapses
// to a single "-", then the entity type and numeric id are appended with
// "-" separators: host "yalesites.yale.edu", type "node", id 18 yields
// "yalesites-yale-edu-node-18". The derivation is deterministic; an
// empty host degrades to an empty prefix but is not an error.
func SearchIndexID(host, entityType string, id int64) string {
	return fmt.Sprintf("%s-%s-%d", nonAlphanumeric.ReplaceAllString(host, "-"), entityType, id)
}

// DocumentTypeOf returns the item's entity type, qualified with its
// bundle ("node/page") when the item has one.
func DocumentTypeOf(item ContentItem) string {
	if bundle := item.Bundle(); bundle != "" {
		return item.EntityType() + "/" + bundle
	}
	return item.EntityType()
}

// AtomTime formats a repository timestamp for the record date fields.
// Always UTC, seconds precision, "+00:00" offset notation.
func AtomTime(t time.Time) string {
	return t.UTC().Format(atomLayout)
}
