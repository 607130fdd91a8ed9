package resolvers

import (
	"errors"

	"main/models"
	"main/store"

	"github.com/graphql-go/graphql"
)

var linkType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Link",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
		},
		"description": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
		"url": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
		"comments": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(commentType))),
			Resolve: resolveLinkComments,
		},
	},
})

func feedField() *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(linkType))),
		Args: graphql.FieldConfigArgument{
			"filterNeedle": &graphql.ArgumentConfig{Type: graphql.String},
			"skip":         &graphql.ArgumentConfig{Type: graphql.Int},
			"take":         &graphql.ArgumentConfig{Type: graphql.Int},
		},
		Resolve: resolveFeed,
	}
}

func linkField() *graphql.Field {
	return &graphql.Field{
		Type: linkType,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.ID},
		},
		Resolve: resolveLink,
	}
}

func postLinkField() *graphql.Field {
	return &graphql.Field{
		Type: graphql.NewNonNull(linkType),
		Args: graphql.FieldConfigArgument{
			"url":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		},
		Resolve: resolvePostLink,
	}
}

// resolveFeed is the resolver for the feed query. The pagination guard
// runs before any storage access; its failure aborts the request.
func resolveFeed(p graphql.ResolveParams) (interface{}, error) {
	st, err := storeFor(p)
	if err != nil {
		return nil, err
	}

	take, err := takeArg(p.Context, p.Args)
	if err != nil {
		return nil, err
	}

	filter := store.LinkFilter{}
	if needle, ok := p.Args["filterNeedle"].(string); ok {
		filter.Needle = &needle
	}

	return st.Links.List(p.Context, filter, store.Page{
		Skip: skipArg(p.Args),
		Take: take,
	})
}

// resolveLink is the resolver for the link query. A missing, malformed or
// unknown identifier all resolve to null.
func resolveLink(p graphql.ResolveParams) (interface{}, error) {
	st, err := storeFor(p)
	if err != nil {
		return nil, err
	}

	raw, ok := p.Args["id"].(string)
	if !ok {
		return nil, nil
	}

	id, ok := parseID(raw)
	if !ok {
		return nil, nil
	}

	link, err := st.Links.Get(p.Context, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return link, nil
}

// resolvePostLink is the resolver for the postLink mutation
func resolvePostLink(p graphql.ResolveParams) (interface{}, error) {
	st, err := storeFor(p)
	if err != nil {
		return nil, err
	}

	link := &models.Link{
		URL:         p.Args["url"].(string),
		Description: p.Args["description"].(string),
	}

	if err := st.Links.Create(p.Context, link); err != nil {
		return nil, err
	}
	return link, nil
}

// resolveLinkComments is the resolver for the Link.comments field,
// looked up on demand per parent link.
func resolveLinkComments(p graphql.ResolveParams) (interface{}, error) {
	st, err := storeFor(p)
	if err != nil {
		return nil, err
	}

	var linkID uint
	switch src := p.Source.(type) {
	case models.Link:
		linkID = src.ID
	case *models.Link:
		linkID = src.ID
	default:
		return nil, errors.New("comments resolved on a non-link parent")
	}

	return st.Comments.ByLink(p.Context, linkID)
}
