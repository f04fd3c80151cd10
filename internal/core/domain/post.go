package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Column bounds for posts. Title, subtitle and content are also unique
// across the collection; slug uniqueness is enforced as well so public
// lookups are never ambiguous.
const (
	TitleMaxLen    = 20
	SubtitleMaxLen = 20
	SlugMaxLen     = 120
	ContentMaxLen  = 120
)

// DateLayout is the calendar-date format posts and messages are stored in.
const DateLayout = "2006-01-02"

// Post is a blog entry. ID is assigned by the store and is never zero once
// persisted.
type Post struct {
	ID       int64  `json:"id" bson:"_id"`
	Title    string `json:"title" bson:"title"`
	Subtitle string `json:"subtitle" bson:"sub_title"`
	Slug     string `json:"slug" bson:"post_slug"`
	Content  string `json:"content" bson:"content"`
	Date     string `json:"date" bson:"date"`
}

// PostFields is the mutable part of a post, as submitted by the edit form.
type PostFields struct {
	Title    string
	Subtitle string
	Slug     string
	Content  string
	Date     string
}

// Fields returns the mutable fields of p.
func (p Post) Fields() PostFields {
	return PostFields{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Slug:     p.Slug,
		Content:  p.Content,
		Date:     p.Date,
	}
}

// Validate checks presence and length bounds. It does not check uniqueness;
// that is the store's job.
func (f PostFields) Validate() error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"title", f.Title, TitleMaxLen},
		{"subtitle", f.Subtitle, SubtitleMaxLen},
		{"slug", f.Slug, SlugMaxLen},
		{"content", f.Content, ContentMaxLen},
	}
	for _, c := range checks {
		if err := checkField(c.name, c.value, c.max); err != nil {
			return err
		}
	}
	if _, err := time.Parse(DateLayout, f.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return nil
}

// FormatDate renders t as a calendar date in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func checkField(name, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
	}
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, name, max)
	}
	return nil
}
