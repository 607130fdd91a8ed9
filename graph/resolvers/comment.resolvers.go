package resolvers

import (
	"errors"

	"main/models"
	"main/store"

	"github.com/graphql-go/graphql"
)

var commentType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Comment",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
		},
		"body": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
	},
})

func commentField() *graphql.Field {
	return &graphql.Field{
		Type: commentType,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
		Resolve: resolveComment,
	}
}

func postCommentOnLinkField() *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(commentType),
		Args: graphql.FieldConfigArgument{
			"linkId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			"body":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		},
		Resolve: resolvePostCommentOnLink,
	}
}

// resolveComment is the resolver for the comment query. A malformed or
// unknown identifier resolves to null.
func resolveComment(p graphql.ResolveParams) (interface{}, error) {
	st, err := storeFor(p)
	if err != nil {
		return nil, err
	}

	id, ok := parseID(p.Args["id"].(string))
	if !ok {
		return nil, nil
	}

	comment, err := st.Comments.Get(p.Context, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// resolvePostCommentOnLink is the resolver for the postCommentOnLink
// mutation. A non-numeric linkId fails before any storage access; a numeric
// one referencing no existing link fails on the foreign key constraint.
// Both paths produce the same user-facing message.
func resolvePostCommentOnLink(p graphql.ResolveParams) (interface{}, error) {
	st, err := storeFor(p)
	if err != nil {
		return nil, err
	}

	raw := p.Args["linkId"].(string)
	linkID, ok := parseID(raw)
	if !ok {
		return nil, linkNotFoundError(p.Context, raw)
	}

	comment := &models.Comment{
		Body:   p.Args["body"].(string),
		LinkID: linkID,
	}

	if err := st.Comments.Create(p.Context, comment); err != nil {
		if errors.Is(err, store.ErrLinkNotFound) {
			return nil, linkNotFoundError(p.Context, raw)
		}
		return nil, err
	}
	return comment, nil
}
