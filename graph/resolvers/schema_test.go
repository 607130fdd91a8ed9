package resolvers

import (
	"context"
	"fmt"
	"testing"

	"main/models"
	"main/store"

	"github.com/glebarez/sqlite"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestSchema строит схему и контекст со store поверх in-memory sqlite
func newTestSchema(t *testing.T) (graphql.Schema, context.Context, *store.Store) {
	t.Helper()

	schema, err := NewSchema()
	require.NoError(t, err)

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Link{}, &models.Comment{}))

	st := store.New(db)
	return schema, store.NewContext(context.Background(), st), st
}

func execQuery(schema graphql.Schema, ctx context.Context, query string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:        schema,
		Context:       ctx,
		RequestString: query,
	})
}

func TestInfoQuery(t *testing.T) {
	schema, ctx, _ := newTestSchema(t)

	result := execQuery(schema, ctx, `{ info }`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	assert.Equal(t, "This is the API of a Hackernews Clone", data["info"])
}

func TestPostLinkAndFeed(t *testing.T) {
	schema, ctx, _ := newTestSchema(t)

	result := execQuery(schema, ctx, `mutation {
		postLink(url: "http://x", description: "d") { id url description }
	}`)
	require.Empty(t, result.Errors)

	posted := result.Data.(map[string]interface{})["postLink"].(map[string]interface{})
	assert.Equal(t, "http://x", posted["url"])
	assert.Equal(t, "d", posted["description"])
	assert.NotEmpty(t, posted["id"])

	result = execQuery(schema, ctx, `{ feed { url description } }`)
	require.Empty(t, result.Errors)

	feed := result.Data.(map[string]interface{})["feed"].([]interface{})
	require.Len(t, feed, 1)
	entry := feed[0].(map[string]interface{})
	assert.Equal(t, "http://x", entry["url"])
	assert.Equal(t, "d", entry["description"])
}

func TestLinkRoundTrip(t *testing.T) {
	schema, ctx, _ := newTestSchema(t)

	result := execQuery(schema, ctx, `mutation {
		postLink(url: "http://x", description: "d") { id }
	}`)
	require.Empty(t, result.Errors)
	id := result.Data.(map[string]interface{})["postLink"].(map[string]interface{})["id"].(string)

	result = execQuery(schema, ctx, fmt.Sprintf(`{ link(id: %q) { url description } }`, id))
	require.Empty(t, result.Errors)

	link := result.Data.(map[string]interface{})["link"].(map[string]interface{})
	assert.Equal(t, "http://x", link["url"])
	assert.Equal(t, "d", link["description"])
}

func TestLinkQueryAbsent(t *testing.T) {
	schema, ctx, _ := newTestSchema(t)

	for _, id := range []string{"9999", "abc"} {
		result := execQuery(schema, ctx, fmt.Sprintf(`{ link(id: %q) { url } }`, id))
		require.Empty(t, result.Errors)
		assert.Nil(t, result.Data.(map[string]interface{})["link"])
	}
}

func TestFeedFilterNeedle(t *testing.T) {
	schema, ctx, st := newTestSchema(t)

	seed := []*models.Link{
		{URL: "https://howtographql.com", Description: "Fullstack tutorial"},
		{URL: "https://graphql.org", Description: "The official site"},
		{URL: "https://news.ycombinator.com", Description: "Hacker news"},
	}
	for _, link := range seed {
		require.NoError(t, st.Links.Create(ctx, link))
	}

	result := execQuery(schema, ctx, `{ feed(filterNeedle: "tutorial") { url } }`)
	require.Empty(t, result.Errors)
	feed := result.Data.(map[string]interface{})["feed"].([]interface{})
	require.Len(t, feed, 1)
	assert.Equal(t, "https://howtographql.com", feed[0].(map[string]interface{})["url"])

	result = execQuery(schema, ctx, `{ feed(filterNeedle: "nomatch") { url } }`)
	require.Empty(t, result.Errors)
	assert.Empty(t, result.Data.(map[string]interface{})["feed"])
}

func TestFeedPagination(t *testing.T) {
	schema, ctx, st := newTestSchema(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, st.Links.Create(ctx, &models.Link{URL: "http://x", Description: "d"}))
	}

	result := execQuery(schema, ctx, `{ feed(skip: 1, take: 2) { id } }`)
	require.Empty(t, result.Errors)
	assert.Len(t, result.Data.(map[string]interface{})["feed"], 2)
}

func TestFeedTakeOutOfRange(t *testing.T) {
	schema, ctx, _ := newTestSchema(t)

	for _, take := range []int{0, 51} {
		result := execQuery(schema, ctx, fmt.Sprintf(`{ feed(take: %d) { id } }`, take))
		require.NotEmpty(t, result.Errors)
		message := result.Errors[0].Message
		assert.Contains(t, message, fmt.Sprintf("%d", take))
		assert.Contains(t, message, "between")
	}
}

func TestPostCommentOnLink(t *testing.T) {
	schema, ctx, st := newTestSchema(t)

	link := &models.Link{URL: "http://x", Description: "d"}
	require.NoError(t, st.Links.Create(ctx, link))

	result := execQuery(schema, ctx, fmt.Sprintf(`mutation {
		postCommentOnLink(linkId: "%d", body: "great") { id body }
	}`, link.ID))
	require.Empty(t, result.Errors)

	comment := result.Data.(map[string]interface{})["postCommentOnLink"].(map[string]interface{})
	assert.Equal(t, "great", comment["body"])

	// Комментарий виден через relationship поле
	result = execQuery(schema, ctx, fmt.Sprintf(`{ link(id: "%d") { comments { body } } }`, link.ID))
	require.Empty(t, result.Errors)

	comments := result.Data.(map[string]interface{})["link"].(map[string]interface{})["comments"].([]interface{})
	require.Len(t, comments, 1)
	assert.Equal(t, "great", comments[0].(map[string]interface{})["body"])
}

func TestPostCommentOnMalformedLinkID(t *testing.T) {
	schema, ctx, st := newTestSchema(t)

	result := execQuery(schema, ctx, `mutation {
		postCommentOnLink(linkId: "abc", body: "great") { id }
	}`)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "abc")

	// До хранилища запрос не дошел
	_, err := st.Comments.Get(ctx, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostCommentOnAbsentLinkID(t *testing.T) {
	schema, ctx, _ := newTestSchema(t)

	// Числовой, но несуществующий id проходит через перевод ошибки FK
	result := execQuery(schema, ctx, `mutation {
		postCommentOnLink(linkId: "9999", body: "great") { id }
	}`)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "9999")
}

func TestCommentQuery(t *testing.T) {
	schema, ctx, st := newTestSchema(t)

	link := &models.Link{URL: "http://x", Description: "d"}
	require.NoError(t, st.Links.Create(ctx, link))
	comment := &models.Comment{Body: "hello", LinkID: link.ID}
	require.NoError(t, st.Comments.Create(ctx, comment))

	result := execQuery(schema, ctx, fmt.Sprintf(`{ comment(id: "%d") { body } }`, comment.ID))
	require.Empty(t, result.Errors)
	got := result.Data.(map[string]interface{})["comment"].(map[string]interface{})
	assert.Equal(t, "hello", got["body"])

	result = execQuery(schema, ctx, `{ comment(id: "424242") { body } }`)
	require.Empty(t, result.Errors)
	assert.Nil(t, result.Data.(map[string]interface{})["comment"])
}
