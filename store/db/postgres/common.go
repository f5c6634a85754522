package postgres

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/seekrhq/seekr/store"
)

// placeholder returns the n-th PostgreSQL placeholder ($1, $2, ...).
func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

// placeholders returns n PostgreSQL placeholders.
func placeholders(n int) string {
	list := []string{}
	for i := 0; i < n; i++ {
		list = append(list, placeholder(i+1))
	}
	return strings.Join(list, ", ")
}

func marshalSources(sources []*store.SearchSource) (string, error) {
	if sources == nil {
		sources = []*store.SearchSource{}
	}
	buf, err := json.Marshal(sources)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal sources")
	}
	return string(buf), nil
}

func unmarshalSources(raw string) ([]*store.SearchSource, error) {
	sources := []*store.SearchSource{}
	if raw == "" {
		return sources, nil
	}
	if err := json.Unmarshal([]byte(raw), &sources); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal sources")
	}
	return sources, nil
}

func marshalTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	buf, err := json.Marshal(tags)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal tags")
	}
	return string(buf), nil
}

func unmarshalTags(raw string) ([]string, error) {
	tags := []string{}
	if raw == "" {
		return tags, nil
	}
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal tags")
	}
	return tags, nil
}
