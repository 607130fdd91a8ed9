package store

import (
	"context"
	"testing"

	"main/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreateAndGet(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	link := &models.Link{URL: "http://x", Description: "d"}
	require.NoError(t, st.Links.Create(ctx, link))

	comment := &models.Comment{Body: "nice", LinkID: link.ID}
	require.NoError(t, st.Comments.Create(ctx, comment))
	require.NotZero(t, comment.ID)

	got, err := st.Comments.Get(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "nice", got.Body)
	assert.Equal(t, link.ID, got.LinkID)
}

func TestCommentCreateOnMissingLink(t *testing.T) {
	st := newTestStore(t)

	comment := &models.Comment{Body: "orphan", LinkID: 9999}
	err := st.Comments.Create(context.Background(), comment)
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestCommentGetNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Comments.Get(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentsByLink(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first := &models.Link{URL: "http://a", Description: "a"}
	second := &models.Link{URL: "http://b", Description: "b"}
	require.NoError(t, st.Links.Create(ctx, first))
	require.NoError(t, st.Links.Create(ctx, second))

	require.NoError(t, st.Comments.Create(ctx, &models.Comment{Body: "one", LinkID: first.ID}))
	require.NoError(t, st.Comments.Create(ctx, &models.Comment{Body: "two", LinkID: first.ID}))
	require.NoError(t, st.Comments.Create(ctx, &models.Comment{Body: "other", LinkID: second.ID}))

	comments, err := st.Comments.ByLink(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	bodies := []string{comments[0].Body, comments[1].Body}
	assert.ElementsMatch(t, []string{"one", "two"}, bodies)

	// Ссылка без комментариев дает пустой список
	empty, err := st.Comments.ByLink(ctx, 424242)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
