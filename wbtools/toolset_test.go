package wbtools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonwraymond/wbdocs/render"
	"github.com/jonwraymond/wbdocs/wbapi"
)

const searchStubBody = `{
	"total": 500,
	"documents": {
		"D1": {"id": "1", "display_title": "Doc One", "docty": "Report", "count": "Kenya"},
		"D2": {"id": "2", "display_title": "Doc Two"},
		"D3": {"id": "3", "display_title": "Doc Three"},
		"D4": {"id": "4", "display_title": "Doc Four"},
		"D5": {"id": "5", "display_title": "Doc Five"},
		"facets": {}
	}
}`

// upstreamStub records every query the toolset sends.
type upstreamStub struct {
	mu      sync.Mutex
	queries []url.Values
	status  int
	body    string
}

func (s *upstreamStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.queries = append(s.queries, r.URL.Query())
	s.mu.Unlock()
	if s.status != 0 {
		w.WriteHeader(s.status)
	}
	w.Write([]byte(s.body))
}

func (s *upstreamStub) requestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queries)
}

func (s *upstreamStub) lastQuery(t *testing.T) url.Values {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queries) == 0 {
		t.Fatal("expected at least one upstream request")
	}
	return s.queries[len(s.queries)-1]
}

func newTestToolset(t *testing.T, stub *upstreamStub) *Toolset {
	t.Helper()
	server := httptest.NewServer(stub)
	t.Cleanup(server.Close)
	client := wbapi.NewClient(server.URL, 5*time.Second, zerolog.Nop())
	return New(client, render.New(25000))
}

func findTool(t *testing.T, ts *Toolset, name string) *Tool {
	t.Helper()
	for _, tool := range ts.Tools() {
		if tool.Name == name {
			return tool
		}
	}
	t.Fatalf("tool %q not found", name)
	return nil
}

func TestToolsFixedOrder(t *testing.T) {
	ts := New(nil, render.New(25000))
	tools := ts.Tools()

	want := []string{SearchName, DetailsName, FacetsName, ProjectName}
	if len(tools) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(tools))
	}
	for i, name := range want {
		if tools[i].Name != name {
			t.Errorf("expected tool %d to be %s, got %s", i, name, tools[i].Name)
		}
		if tools[i].Description == "" || tools[i].InputSchema == nil {
			t.Errorf("tool %s is missing its description or schema", name)
		}
	}
}

func TestSearchEndToEnd(t *testing.T) {
	stub := &upstreamStub{body: searchStubBody}
	ts := newTestToolset(t, stub)
	tool := findTool(t, ts, SearchName)

	result, err := tool.Execute(context.Background(), map[string]any{
		"query": "climate change",
		"limit": float64(5),
	})
	if err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}
	if result.Status != ResultSuccess {
		t.Fatalf("expected success, got %s: %s", result.Status, result.Text())
	}

	text := result.Text()
	for _, want := range []string{
		"**Showing:** 1-5 of 500",
		"### Doc One",
		"**More results available.** Use offset=5",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}

	query := stub.lastQuery(t)
	if got := query.Get("qterm"); got != "climate change" {
		t.Errorf("expected qterm=climate change upstream, got %q", got)
	}
	if got := query.Get("rows"); got != "5" {
		t.Errorf("expected rows=5 upstream, got %q", got)
	}
	if got := query.Get("format"); got != "json" {
		t.Errorf("expected format=json forced upstream, got %q", got)
	}
}

func TestSearchJSONFormat(t *testing.T) {
	stub := &upstreamStub{body: searchStubBody}
	ts := newTestToolset(t, stub)
	tool := findTool(t, ts, SearchName)

	result, err := tool.Execute(context.Background(), map[string]any{
		"query":           "climate change",
		"response_format": "json",
	})
	if err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}

	text := result.Text()
	if !strings.Contains(text, `"total": 500`) || !strings.Contains(text, `"has_more": true`) {
		t.Errorf("expected JSON payload fields in output:\n%s", text)
	}
}

func TestSearchNoResults(t *testing.T) {
	stub := &upstreamStub{body: `{"total": 0, "documents": {"facets": {}}}`}
	ts := newTestToolset(t, stub)
	tool := findTool(t, ts, SearchName)

	result, err := tool.Execute(context.Background(), map[string]any{"query": "zxqv"})
	if err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}
	if result.Status != ResultSuccess {
		t.Fatalf("expected guidance as a success result, got %s", result.Status)
	}
	if !strings.Contains(result.Text(), "No documents found matching your query.") {
		t.Errorf("expected no-results guidance, got:\n%s", result.Text())
	}
}

func TestSearchValidationSkipsUpstream(t *testing.T) {
	stub := &upstreamStub{body: searchStubBody}
	ts := newTestToolset(t, stub)
	tool := findTool(t, ts, SearchName)

	result, err := tool.Execute(context.Background(), map[string]any{"query": ""})
	if err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}
	if result.Status != ResultError {
		t.Fatal("expected an error result for an empty query")
	}
	if stub.requestCount() != 0 {
		t.Errorf("expected no upstream request on validation failure, got %d", stub.requestCount())
	}
}

func TestSearchRejectsUnknownArgument(t *testing.T) {
	stub := &upstreamStub{body: searchStubBody}
	ts := newTestToolset(t, stub)
	tool := findTool(t, ts, SearchName)

	result, err := tool.Execute(context.Background(), map[string]any{"query": "water", "rows": float64(5)})
	if err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}
	if result.Status != ResultError {
		t.Fatal("expected unknown arguments to produce an error result")
	}
	if stub.requestCount() != 0 {
		t.Error("expected no upstream request for unknown arguments")
	}
}

func TestSearchUpstreamErrorSurfacesGuidance(t *testing.T) {
	stub := &upstreamStub{status: http.StatusInternalServerError, body: "boom"}
	ts := newTestToolset(t, stub)
	tool := findTool(t, ts, SearchName)

	result, err := tool.Execute(context.Background(), map[string]any{"query": "water"})
	if err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}
	if result.Status != ResultError {
		t.Fatal("expected an error result for an upstream failure")
	}
	if !strings.Contains(result.Text(), "World Bank API returned error 500") {
		t.Errorf("expected the upstream status in the message, got:\n%s", result.Text())
	}
}

func TestDetailsEndToEnd(t *testing.T) {
	stub := &upstreamStub{body: `{
		"total": 1,
		"documents": {
			"D33704": {
				"id": "33704",
				"display_title": "Kenya Water Report",
				"abstracts": {"cdata!": "A study of water infrastructure."}
			}
		}
	}`}
	ts := newTestToolset(t, stub)
	tool := findTool(t, ts, DetailsName)

	result, err := tool.Execute(context.Background(), map[string]any{"document_id": "33704"})
	if err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}
	if result.Status != ResultSuccess {
		t.Fatalf("expected success, got %s: %s", result.Status, result.Text())
	}
	if !strings.Contains(result.Text(), "Kenya Water Report") {
		t.Errorf("expected the document title in the output")
	}

	query := stub.lastQuery(t)
	if got := query.Get("id"); got != "33704" {
		t.Errorf("expected id filter upstream, got %q", got)
	}
}

func TestDetailsNotFound(t *testing.T) {
	stub := &upstreamStub{body: `{"total": 0, "documents": {}}`}
	ts := newTestToolset(t, stub)
	tool := findTool(t, ts, DetailsName)

	result, err := tool.Execute(context.Background(), map[string]any{"document_id": "nope"})
	if err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}
	if result.Status != ResultError {
		t.Fatal("expected an error result for a missing document")
	}
	if !strings.Contains(result.Text(), "Document with ID 'nope' not found.") {
		t.Errorf("expected not-found guidance, got:\n%s", result.Text())
	}
}

func TestFacetsEndToEnd(t *testing.T) {
	stub := &upstreamStub{body: `{
		"total": 500,
		"documents": {"facets": {}},
		"facets": {"count_exact": ["Kenya", 120, "Brazil", 45]}
	}`}
	ts := newTestToolset(t, stub)
	tool := findTool(t, ts, FacetsName)

	result, err := tool.Execute(context.Background(), map[string]any{
		"facets": []any{"count_exact"},
	})
	if err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}
	if result.Status != ResultSuccess {
		t.Fatalf("expected success, got %s: %s", result.Status, result.Text())
	}
	if !strings.Contains(result.Text(), "**Kenya**: 120 documents") {
		t.Errorf("expected facet values in the output, got:\n%s", result.Text())
	}

	query := stub.lastQuery(t)
	if got := query.Get("fct"); got != "count_exact" {
		t.Errorf("expected fct=count_exact upstream, got %q", got)
	}
	if got := query.Get("rows"); got != "0" {
		t.Errorf("expected rows=0 for a facet-only request, got %q", got)
	}
}

func TestFacetsNoData(t *testing.T) {
	stub := &upstreamStub{body: `{"total": 0, "documents": {}}`}
	ts := newTestToolset(t, stub)
	tool := findTool(t, ts, FacetsName)

	result, err := tool.Execute(context.Background(), map[string]any{
		"facets": []any{"count_exact"},
	})
	if err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}
	if !strings.Contains(result.Text(), "No facet data available.") {
		t.Errorf("expected no-facets guidance, got:\n%s", result.Text())
	}
}

func TestProjectRequiresIdentifier(t *testing.T) {
	stub := &upstreamStub{body: searchStubBody}
	ts := newTestToolset(t, stub)
	tool := findTool(t, ts, ProjectName)

	result, err := tool.Execute(context.Background(), map[string]any{})
	if err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}
	if result.Status != ResultError {
		t.Fatal("expected an error result when no identifier is given")
	}
	if stub.requestCount() != 0 {
		t.Errorf("expected no upstream request, got %d", stub.requestCount())
	}
}

func TestProjectSendsBothIdentifiers(t *testing.T) {
	stub := &upstreamStub{body: searchStubBody}
	ts := newTestToolset(t, stub)
	tool := findTool(t, ts, ProjectName)

	result, err := tool.Execute(context.Background(), map[string]any{
		"project_id":   "P123456",
		"project_name": "Water Access Project",
	})
	if err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}
	if result.Status != ResultSuccess {
		t.Fatalf("expected success, got %s: %s", result.Status, result.Text())
	}

	query := stub.lastQuery(t)
	if got := query.Get("proid"); got != "P123456" {
		t.Errorf("expected proid upstream, got %q", got)
	}
	if got := query.Get("projn"); got != "Water Access Project" {
		t.Errorf("expected projn upstream, got %q", got)
	}
}

func TestProjectNoDocuments(t *testing.T) {
	stub := &upstreamStub{body: `{"total": 0, "documents": {}}`}
	ts := newTestToolset(t, stub)
	tool := findTool(t, ts, ProjectName)

	result, err := tool.Execute(context.Background(), map[string]any{"project_id": "P999999"})
	if err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}
	if !strings.Contains(result.Text(), "No documents found for project: P999999") {
		t.Errorf("expected no-project-documents guidance, got:\n%s", result.Text())
	}
}

func TestResultMCPShape(t *testing.T) {
	success := TextResult("hello").MCP()
	if _, hasErr := success["isError"]; hasErr {
		t.Error("did not expect isError on a success result")
	}
	blocks, ok := success["content"].([]map[string]any)
	if !ok || len(blocks) != 1 || blocks[0]["text"] != "hello" {
		t.Errorf("unexpected content shape: %#v", success["content"])
	}

	failure := ErrorResult("bad input").MCP()
	if failure["isError"] != true {
		t.Error("expected isError on an error result")
	}
}
