package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-dev/srcmap/pkg/model"
	"github.com/kestrel-dev/srcmap/pkg/processors/markdown"
)

const doc = `# Getting Started {#start}

See the [API guide](./api.md) and ![logo](./logo.png).

Related: [[Architecture Overview]], mentioned by @Parser, tagged #golang.

## Setup

` + "```go path=cmd/main.go" + `
func main() {}
` + "```" + `

{{include: ./snippets/footer.md}}
`

func TestExtractHeadingsAndTags(t *testing.T) {
	result := markdown.Extract([]byte(doc), "docs/guide.md")

	var sections, headings, tags []model.Symbol
	for _, s := range result.Symbols {
		switch s.Kind {
		case model.SymbolKindSection:
			sections = append(sections, s)
		case model.SymbolKindHeading:
			headings = append(headings, s)
		case model.SymbolKindTag:
			tags = append(tags, s)
		}
	}

	require.Len(t, sections, 1)
	assert.Equal(t, "Getting Started", sections[0].Name)

	require.Len(t, headings, 1)
	assert.Equal(t, "Setup", headings[0].Name)
	assert.Equal(t, "Getting Started/Setup", headings[0].NamePath)

	var tagNames []string
	for _, tg := range tags {
		tagNames = append(tagNames, tg.Name)
	}
	assert.Contains(t, tagNames, "start")
	assert.Contains(t, tagNames, "golang")
}

func TestExtractReferenceEdges(t *testing.T) {
	result := markdown.Extract([]byte(doc), "docs/guide.md")

	byContext := map[string][]model.SymbolDependencyEdge{}
	for _, e := range result.Edges {
		byContext[e.Context] = append(byContext[e.Context], e)
	}

	require.Len(t, byContext[markdown.EdgeTypeLink], 1)
	assert.Equal(t, "./api.md", byContext[markdown.EdgeTypeLink][0].To)

	require.Len(t, byContext[markdown.EdgeTypeImage], 1)
	assert.Equal(t, "./logo.png", byContext[markdown.EdgeTypeImage][0].To)

	require.Len(t, byContext[markdown.EdgeTypeWikiLink], 1)
	assert.Equal(t, "Architecture Overview", byContext[markdown.EdgeTypeWikiLink][0].To)

	require.Len(t, byContext[markdown.EdgeTypeSymbolRef], 1)
	assert.Equal(t, "/Parser", byContext[markdown.EdgeTypeSymbolRef][0].To)

	require.Len(t, byContext[markdown.EdgeTypeCodeBlock], 1)
	assert.Equal(t, "cmd/main.go", byContext[markdown.EdgeTypeCodeBlock][0].To)

	require.Len(t, byContext[markdown.EdgeTypeInclude], 1)
	assert.Equal(t, "./snippets/footer.md", byContext[markdown.EdgeTypeInclude][0].To)

	for _, e := range result.Edges {
		assert.Equal(t, "docs/guide.md", e.From)
	}
}
