package test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seekrhq/seekr/store"
)

func TestListSpacesByCategory(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	spaces, err := ts.ListSpacesByCategory(ctx, "Technology")
	require.NoError(t, err)
	require.Len(t, spaces, 1)
	require.Equal(t, "Developer Tools", spaces[0].Title)

	// Category matching is exact, not case folded.
	spaces, err = ts.ListSpacesByCategory(ctx, "technology")
	require.NoError(t, err)
	require.Empty(t, spaces)

	spaces, err = ts.ListSpacesByCategory(ctx, "Nonexistent")
	require.NoError(t, err)
	require.Empty(t, spaces)
}

func TestListSpacesSkipsInactive(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	_, err := ts.CreateSpace(ctx, &store.Space{
		Title:    "Archived Space",
		Category: "Business",
		IsActive: false,
	})
	require.NoError(t, err)

	spaces, err := ts.ListSpaces(ctx, 100)
	require.NoError(t, err)
	require.Len(t, spaces, 3)

	spaces, err = ts.ListSpacesByCategory(ctx, "Business")
	require.NoError(t, err)
	require.Len(t, spaces, 1)
	require.Equal(t, "Business Strategy", spaces[0].Title)
}

func TestCreateSpaceDefaultsTags(t *testing.T) {
	ctx := context.Background()
	ts := NewTestingStore(ctx, t)

	created, err := ts.CreateSpace(ctx, &store.Space{
		Title:    "Bare Space",
		Category: "Misc",
		IsActive: true,
	})
	require.NoError(t, err)
	require.NotNil(t, created.Tags)
	require.Empty(t, created.Tags)
}
