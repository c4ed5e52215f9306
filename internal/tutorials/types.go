package tutorials

import (
	"net/url"
	"strings"
)

// Tutorial mirrors a record returned by /api/tutorials.
type Tutorial struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
}

// Draft is the body sent on create and update. The id never travels in it.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
}

// Draft returns the editable fields of t.
func (t Tutorial) Draft() Draft {
	return Draft{Title: t.Title, Description: t.Description, Published: t.Published}
}

// StatusLabel is the badge text for the published flag.
func (t Tutorial) StatusLabel() string {
	if t.Published {
		return "Published"
	}
	return "Draft"
}

// Query selects which slice of the collection List fetches.
type Query struct {
	Title         string
	PublishedOnly bool
}

// URL returns the relative request URL for q.
func (q Query) URL() *url.URL {
	if q.PublishedOnly {
		return &url.URL{Path: publishedPath}
	}
	if title := strings.TrimSpace(q.Title); title != "" {
		values := url.Values{}
		values.Set("title", title)
		return &url.URL{Path: collectionPath, RawQuery: values.Encode()}
	}
	return &url.URL{Path: collectionPath}
}

// Label describes the active filter for headers and logs.
func (q Query) Label() string {
	switch {
	case q.PublishedOnly:
		return "published"
	case strings.TrimSpace(q.Title) != "":
		return "title~" + strings.TrimSpace(q.Title)
	default:
		return "all"
	}
}

// Find returns the tutorial with id from list.
func Find(list []Tutorial, id int64) (Tutorial, bool) {
	for _, t := range list {
		if t.ID == id {
			return t, true
		}
	}
	return Tutorial{}, false
}
