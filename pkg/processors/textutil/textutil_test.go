package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrel-dev/srcmap/pkg/model"
)

func TestSplitTopLevelRespectsNesting(t *testing.T) {
	got := SplitTopLevel("a: Map<string, number>, b: string", ',')
	assert.Equal(t, []string{"a: Map<string, number>", "b: string"}, got)
}

func TestSplitTopLevelBacksOffOnUnbalanced(t *testing.T) {
	got := SplitTopLevel("a: (string, b: string", ',')
	assert.Equal(t, []string{"a: (string, b: string"}, got)
}

func TestParseParameterListTypeScriptStyle(t *testing.T) {
	params := ParseParameterList("(id: string, opts?: Options = {})")
	assert := assert.New(t)
	assert.Len(params, 2)
	assert.Equal(model.Parameter{Name: "id", Type: "string"}, params[0])
	assert.Equal("opts", params[1].Name)
	assert.Equal("Options", params[1].Type)
	assert.Equal("{}", params[1].Default)
}

func TestParseParameterJavaStyle(t *testing.T) {
	p := ParseParameter("String name")
	assert.Equal(t, model.Parameter{Name: "name", Type: "String"}, p)
}

func TestParseParameterPythonDefault(t *testing.T) {
	p := ParseParameter("count=0")
	assert.Equal(t, model.Parameter{Name: "count", Default: "0"}, p)
}

func TestExtractDecorators(t *testing.T) {
	decorators := ExtractDecorators("@staticmethod\n@lru_cache(maxsize=8)")
	assert.Equal(t, []string{"@staticmethod", "@lru_cache(maxsize=8)"}, decorators)
}

func TestStripOuter(t *testing.T) {
	assert.Equal(t, "a, b", StripOuter("(a, b)", '(', ')'))
	assert.Equal(t, "a, b", StripOuter("a, b", '(', ')'))
}
