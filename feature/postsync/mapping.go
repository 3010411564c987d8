package postsync

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"post-sync/core/payload"
	"post-sync/feature/postsync/models"
)

// mapRecord extracts one MappedRecord from a raw record via the attribute
// map. An empty final title is the one mapping failure that aborts the whole
// run, so it is the only error this can return.
func (e *Engine) mapRecord(attr models.AttributeMap, rec payload.Value) (*models.MappedRecord, error) {
	m := &models.MappedRecord{
		AuthorID:     attr.DefaultAuthorID,
		CustomFields: map[string]string{},
	}

	if attr.TitlePath != "" {
		if v, ok := payload.Resolve(attr.TitlePath, rec); ok {
			m.Title = stripMarkup(e.sanitizer, v.Text())
		}
	}
	if m.Title == "" {
		return nil, ErrTitleMissing
	}

	if attr.ContentPath != "" {
		if v, ok := payload.Resolve(attr.ContentPath, rec); ok {
			m.Content = v.Text()
		}
	}
	if attr.CategoryPath != "" {
		if v, ok := payload.Resolve(attr.CategoryPath, rec); ok {
			m.Categories = splitTerms(v)
		}
	}
	if attr.TagPath != "" {
		if v, ok := payload.Resolve(attr.TagPath, rec); ok {
			m.Tags = splitTerms(v)
		}
	}

	for _, cf := range attr.CustomFields {
		if cf.FieldName == "" || cf.SourcePath == "" {
			continue
		}
		v, ok := payload.Resolve(cf.SourcePath, rec)
		if !ok {
			continue
		}
		if text := v.Text(); text != "" {
			m.CustomFields[cf.FieldName] = text
		}
	}

	return m, nil
}

// splitTerms normalizes a resolved category/tag value: a sequence is used
// as-is, a scalar is split on commas.
func splitTerms(v payload.Value) []string {
	var parts []string
	if v.Kind() == payload.KindSequence {
		for _, item := range v.Items() {
			parts = append(parts, item.Text())
		}
	} else if text := v.Text(); text != "" {
		parts = strings.Split(text, ",")
	}

	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			terms = append(terms, p)
		}
	}
	if len(terms) == 0 {
		return nil
	}
	return terms
}

// stripMarkup removes all markup from a title and unescapes entities, so
// "<b>Go &amp; On</b>" becomes "Go & On".
func stripMarkup(policy *bluemonday.Policy, s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}
