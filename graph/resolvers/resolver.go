// Package resolvers defines the GraphQL schema and its field resolvers.
// The store handle travels in the request context, placed there by
// middleware.DatabaseMiddleware; resolvers never hold connections.
package resolvers

import (
	"errors"

	"main/store"

	"github.com/graphql-go/graphql"
)

const infoMessage = "This is the API of a Hackernews Clone"

// errNoStore is an internal failure: the middleware chain did not run
var errNoStore = errors.New("storage is not available in request context")

// NewSchema creates the executable GraphQL schema
func NewSchema() (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"info": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return infoMessage, nil
				},
			},
			"feed":    feedField(),
			"link":    linkField(),
			"comment": commentField(),
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"postLink":          postLinkField(),
			"postCommentOnLink": postCommentOnLinkField(),
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func storeFor(p graphql.ResolveParams) (*store.Store, error) {
	st := store.FromContext(p.Context)
	if st == nil {
		return nil, errNoStore
	}
	return st, nil
}
