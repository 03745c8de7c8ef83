// Package markdown extracts structural facts from Markdown documents
// without a tree-sitter grammar, per the source key space's markdown
// entry: a regex/line-scanner extractor rather than a query processor.
package markdown

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/kestrel-dev/srcmap/pkg/model"
)

const (
	EdgeTypeLink      = "link"
	EdgeTypeImage     = "image"
	EdgeTypeWikiLink  = "wikilink"
	EdgeTypeSymbolRef = "symbolref"
	EdgeTypeCodeBlock = "codeblock"
	EdgeTypeInclude   = "include"
)

var (
	headingRe   = regexp.MustCompile(`^(#{1,6})\s+(.+?)(?:\s+\{#([\w-]+)\})?\s*$`)
	linkRe      = regexp.MustCompile(`(!?)\[([^\]]*)\]\(([^)\s]+)(?:\s+"[^"]*")?\)`)
	wikiLinkRe  = regexp.MustCompile(`\[\[([^\]|]+)(?:\|([^\]]+))?\]\]`)
	symbolRefRe = regexp.MustCompile(`(?:^|[\s(])@([A-Za-z_][\w.]*)`)
	hashtagRe   = regexp.MustCompile(`(?:^|\s)#([A-Za-z][\w-]*)`)
	fenceOpenRe = regexp.MustCompile("^```\\s*(\\w+)?\\s*(?:path=(\\S+))?")
	fenceRe     = regexp.MustCompile("^```")
	includeRe   = regexp.MustCompile(`\{\{include:\s*([^}]+)\}\}`)
)

// Result is everything extracted from one Markdown document.
type Result struct {
	Symbols []model.Symbol
	Edges   []model.SymbolDependencyEdge
}

// Extract scans source line by line and returns every heading, tag,
// paragraph, link, image, wiki-link, symbol reference, code-block file
// reference, and include directive it finds. filePath is stamped onto
// every Symbol (spec's Symbol.FilePath) and used as the From side of
// every edge.
func Extract(source []byte, filePath string) Result {
	var result Result

	scanner := bufio.NewScanner(bytes.NewReader(source))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	inFence := false
	var headingStack []string // namePath of the currently open heading, per level (1-indexed)
	var paragraphBuf []string
	paragraphStart := 0

	flushParagraph := func(endLine int) {
		if len(paragraphBuf) == 0 {
			return
		}
		text := strings.Join(paragraphBuf, "\n")
		parent := currentHeadingPath(headingStack)
		name := "Paragraph"
		result.Symbols = append(result.Symbols, model.Symbol{
			Kind:     model.SymbolKindParagraph,
			Name:     name,
			NamePath: model.BuildNamePath(parent, name),
			FilePath: filePath,
			Language: "markdown",
			Parent:   parent,
			Text:     text,
			Location: model.Location{Line: paragraphStart, EndLine: endLine},
		})
		paragraphBuf = nil
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if inFence {
			if fenceRe.MatchString(line) {
				inFence = false
			}
			continue
		}

		if m := fenceOpenRe.FindStringSubmatch(line); m != nil {
			flushParagraph(lineNo - 1)
			inFence = true
			if m[2] != "" {
				result.Edges = append(result.Edges, model.SymbolDependencyEdge{
					From:     filePath,
					To:       m[2],
					Type:     model.EdgeKindTypeReference,
					Location: model.Location{Line: lineNo, EndLine: lineNo},
					Context:  EdgeTypeCodeBlock,
				})
			}
			continue
		}

		if m := headingRe.FindStringSubmatch(line); m != nil {
			flushParagraph(lineNo - 1)
			level := len(m[1])
			title := strings.TrimSpace(m[2])
			tag := m[3]

			headingStack = adjustHeadingStack(headingStack, level)
			parent := ""
			if level > 1 {
				parent = headingStack[level-2]
			}

			kind := model.SymbolKindHeading
			if level == 1 {
				kind = model.SymbolKindSection
			}
			namePath := model.BuildNamePath(parent, title)
			headingStack[len(headingStack)-1] = namePath

			loc := model.Location{Line: lineNo, EndLine: lineNo}
			result.Symbols = append(result.Symbols, model.Symbol{
				Kind:     kind,
				Name:     title,
				NamePath: namePath,
				FilePath: filePath,
				Language: "markdown",
				Parent:   parent,
				Text:     line,
				Location: loc,
			})

			if tag != "" {
				tagPath := model.BuildNamePath(namePath, tag)
				result.Symbols = append(result.Symbols, model.Symbol{
					Kind:     model.SymbolKindTag,
					Name:     tag,
					NamePath: tagPath,
					FilePath: filePath,
					Language: "markdown",
					Parent:   namePath,
					Location: loc,
				})
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			flushParagraph(lineNo - 1)
			continue
		}

		if len(paragraphBuf) == 0 {
			paragraphStart = lineNo
		}
		paragraphBuf = append(paragraphBuf, line)

		extractInlineReferences(&result, line, lineNo, filePath)
	}
	flushParagraph(lineNo)

	return result
}

// extractInlineReferences finds every link, image, wiki-link, symbol
// reference, hashtag, and include directive on one line.
func extractInlineReferences(result *Result, line string, lineNo int, filePath string) {
	loc := model.Location{Line: lineNo, EndLine: lineNo}

	for _, m := range linkRe.FindAllStringSubmatch(line, -1) {
		edgeType := EdgeTypeLink
		if m[1] == "!" {
			edgeType = EdgeTypeImage
		}
		result.Edges = append(result.Edges, model.SymbolDependencyEdge{
			From:     filePath,
			To:       m[3],
			Type:     model.EdgeKindTypeReference,
			Location: loc,
			Context:  edgeType,
		})
	}

	for _, m := range wikiLinkRe.FindAllStringSubmatch(line, -1) {
		result.Edges = append(result.Edges, model.SymbolDependencyEdge{
			From:     filePath,
			To:       strings.TrimSpace(m[1]),
			Type:     model.EdgeKindTypeReference,
			Location: loc,
			Context:  EdgeTypeWikiLink,
		})
	}

	for _, m := range symbolRefRe.FindAllStringSubmatch(line, -1) {
		result.Edges = append(result.Edges, model.SymbolDependencyEdge{
			From:     filePath,
			To:       "/" + m[1],
			Type:     model.EdgeKindTypeReference,
			Location: loc,
			Context:  EdgeTypeSymbolRef,
		})
	}

	for _, m := range hashtagRe.FindAllStringSubmatch(line, -1) {
		result.Symbols = append(result.Symbols, model.Symbol{
			Kind:     model.SymbolKindTag,
			Name:     m[1],
			NamePath: m[1],
			FilePath: filePath,
			Language: "markdown",
			Location: loc,
		})
	}

	for _, m := range includeRe.FindAllStringSubmatch(line, -1) {
		result.Edges = append(result.Edges, model.SymbolDependencyEdge{
			From:     filePath,
			To:       strings.TrimSpace(m[1]),
			Type:     model.EdgeKindTypeReference,
			Location: loc,
			Context:  EdgeTypeInclude,
		})
	}
}

// adjustHeadingStack grows or shrinks the stack of open heading namePaths
// to the given level, so a level-2 heading nests under the most recent
// level-1 heading regardless of what came between them.
func adjustHeadingStack(stack []string, level int) []string {
	for len(stack) < level {
		stack = append(stack, "")
	}
	return stack[:level]
}

func currentHeadingPath(stack []string) string {
	if len(stack) == 0 {
		return ""
	}
	return stack[len(stack)-1]
}
