package wbtools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/wbdocs/document"
	"github.com/jonwraymond/wbdocs/render"
	"github.com/jonwraymond/wbdocs/wbapi"
)

// Toolset holds the shared dependencies of the four tools. Each call is
// independent and stateless: validate, one upstream request, normalize,
// render.
type Toolset struct {
	client   *wbapi.Client
	renderer *render.Renderer
}

// New wires a Toolset from its collaborators.
func New(client *wbapi.Client, renderer *render.Renderer) *Toolset {
	return &Toolset{client: client, renderer: renderer}
}

// Tools returns the four tool definitions in a fixed order.
func (t *Toolset) Tools() []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        SearchName,
				Description: SearchDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Search World Bank Documents"},
				InputSchema: SearchSchema(),
			},
			Execute: t.executeSearch,
		},
		{
			Tool: mcp.Tool{
				Name:        DetailsName,
				Description: DetailsDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Get World Bank Document Details"},
				InputSchema: DetailsSchema(),
			},
			Execute: t.executeDetails,
		},
		{
			Tool: mcp.Tool{
				Name:        FacetsName,
				Description: FacetsDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Explore World Bank Document Facets"},
				InputSchema: FacetsSchema(),
			},
			Execute: t.executeFacets,
		},
		{
			Tool: mcp.Tool{
				Name:        ProjectName,
				Description: ProjectDescription,
				Annotations: &mcp.ToolAnnotations{Title: "Search World Bank Documents by Project"},
				InputSchema: ProjectSchema(),
			},
			Execute: t.executeProject,
		},
	}
}

func (t *Toolset) executeSearch(ctx context.Context, args map[string]any) (*Result, error) {
	var in SearchInput
	if verr := decodeArgs(args, &in); verr != nil {
		return ErrorResult(verr.Error()), nil
	}
	if verr := in.validate(); verr != nil {
		return ErrorResult(verr.Error()), nil
	}

	req := wbapi.Request{
		Query:         in.Query,
		Countries:     in.Countries,
		DocumentTypes: in.DocumentTypes,
		Languages:     in.Languages,
		DateFrom:      in.DateFrom,
		DateTo:        in.DateTo,
		Limit:         in.Limit,
		Offset:        in.Offset,
		SortBy:        in.SortBy,
		SortOrder:     wbapi.SortOrder(in.SortOrder),
	}
	body, err := t.client.Fetch(ctx, req.Params())
	if err != nil {
		return ErrorResult(upstreamMessage(err)), nil
	}

	page := document.ParsePage(body, in.Offset)
	if page.Total == 0 {
		return TextResult(render.NoResults()), nil
	}

	sc := render.SearchContext{
		Query:         in.Query,
		Countries:     in.Countries,
		DocumentTypes: in.DocumentTypes,
		Languages:     in.Languages,
		DateFrom:      in.DateFrom,
		DateTo:        in.DateTo,
		Limit:         in.Limit,
	}
	return TextResult(t.renderer.SearchResults(sc, page, render.Mode(in.ResponseFormat))), nil
}

func (t *Toolset) executeDetails(ctx context.Context, args map[string]any) (*Result, error) {
	var in DetailsInput
	if verr := decodeArgs(args, &in); verr != nil {
		return ErrorResult(verr.Error()), nil
	}
	if verr := in.validate(); verr != nil {
		return ErrorResult(verr.Error()), nil
	}

	doc, err := t.lookupDocument(ctx, in.DocumentID)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return ErrorResult(render.NotFound(in.DocumentID)), nil
		}
		return ErrorResult(upstreamMessage(err)), nil
	}
	return TextResult(t.renderer.DocumentDetails(doc, render.Mode(in.ResponseFormat))), nil
}

// lookupDocument performs a filtered search for one document id. A zero
// result set is a *NotFoundError, never an empty success.
func (t *Toolset) lookupDocument(ctx context.Context, documentID string) (document.Document, error) {
	req := wbapi.Request{DocumentID: documentID, Limit: 1}
	body, err := t.client.Fetch(ctx, req.Params())
	if err != nil {
		return document.Document{}, err
	}
	page := document.ParsePage(body, 0)
	if page.Count == 0 {
		return document.Document{}, &NotFoundError{DocumentID: documentID}
	}
	return page.Documents[0], nil
}

func (t *Toolset) executeFacets(ctx context.Context, args map[string]any) (*Result, error) {
	var in FacetsInput
	if verr := decodeArgs(args, &in); verr != nil {
		return ErrorResult(verr.Error()), nil
	}
	if verr := in.validate(); verr != nil {
		return ErrorResult(verr.Error()), nil
	}

	// rows=0: only the facet computation is wanted, no documents.
	req := wbapi.Request{Query: in.Query, Facets: in.Facets, Limit: 0}
	body, err := t.client.Fetch(ctx, req.Params())
	if err != nil {
		return ErrorResult(upstreamMessage(err)), nil
	}

	summary := document.ParseFacets(body, in.Facets)
	summary.Query = in.Query
	if !summary.HasData() {
		return TextResult(render.NoFacets()), nil
	}
	return TextResult(t.renderer.Facets(summary, render.Mode(in.ResponseFormat))), nil
}

func (t *Toolset) executeProject(ctx context.Context, args map[string]any) (*Result, error) {
	var in ProjectInput
	if verr := decodeArgs(args, &in); verr != nil {
		return ErrorResult(verr.Error()), nil
	}
	if verr := in.validate(); verr != nil {
		return ErrorResult(verr.Error()), nil
	}

	// When both id and name are given, both are sent upstream and narrow
	// the result set together.
	req := wbapi.Request{
		ProjectID:   in.ProjectID,
		ProjectName: in.ProjectName,
		Limit:       in.Limit,
		Offset:      in.Offset,
	}
	body, err := t.client.Fetch(ctx, req.Params())
	if err != nil {
		return ErrorResult(upstreamMessage(err)), nil
	}

	page := document.ParsePage(body, in.Offset)
	if page.Total == 0 {
		term := in.ProjectID
		if term == "" {
			term = in.ProjectName
		}
		return TextResult(render.NoProjectDocuments(term)), nil
	}
	return TextResult(t.renderer.ProjectResults(in.ProjectID, in.ProjectName, page, render.Mode(in.ResponseFormat))), nil
}
