package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const note = `---
title: Sample
tags: [a, b]
TOPIC: "[[Index]]"
NEXT: "[[Two]]"
---
# Body

Text here.
`

func TestParse(t *testing.T) {
	doc, err := Parse(note)
	require.NoError(t, err)

	assert.Equal(t, "Sample", doc.Field("title"))
	assert.Equal(t, "[[Index]]", doc.Field("TOPIC"))
	assert.Equal(t, "", doc.Field("summary"))
	assert.Equal(t, "# Body\n\nText here.\n", doc.Body)
}

func TestParseNoFrontmatter(t *testing.T) {
	_, err := Parse("# Just a heading\n")
	assert.ErrorIs(t, err, ErrNoFrontmatter)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse("---\ntitle: [unclosed\n---\nbody")
	assert.ErrorIs(t, err, ErrInvalidFrontmatter)

	_, err = Parse("---\n- a\n- b\n---\nbody")
	assert.ErrorIs(t, err, ErrInvalidFrontmatter)
}

func TestParseNullField(t *testing.T) {
	doc, err := Parse("---\nsummary:\ncount: 3\n---\n")
	require.NoError(t, err)
	assert.Equal(t, "", doc.Field("summary"))
	assert.Equal(t, "3", doc.Field("count"))
	assert.Equal(t, "", doc.Body)
}

func TestFieldFalsyValues(t *testing.T) {
	doc, err := Parse("---\nflag: false\nzero: 0\nnothing: 0.0\nlist: []\nmap: {}\nset: true\nn: 7\ntags: [a]\n---\n")
	require.NoError(t, err)

	for _, name := range []string{"flag", "zero", "nothing", "list", "map", "missing"} {
		assert.Equal(t, "", doc.Field(name), name)
	}
	assert.Equal(t, "true", doc.Field("set"))
	assert.Equal(t, "7", doc.Field("n"))
	assert.Equal(t, "[a]", doc.Field("tags"))
}

func TestSetFieldInsertsBeforeLinks(t *testing.T) {
	doc, err := Parse(note)
	require.NoError(t, err)

	doc.SetField("summary", "[AI] Short.", DefaultInsertBefore)

	want := "title: Sample\ntags: [a, b]\nsummary: \"[AI] Short.\"\nTOPIC: \"[[Index]]\"\nNEXT: \"[[Two]]\""
	assert.Equal(t, want, doc.YAML)
	assert.Equal(t, "[AI] Short.", doc.Field("summary"))
}

func TestSetFieldAppendsWithoutLinks(t *testing.T) {
	doc, err := Parse("---\ntitle: A\n---\nbody")
	require.NoError(t, err)

	doc.SetField("summary", "x", DefaultInsertBefore)
	assert.Equal(t, "---\ntitle: A\nsummary: \"x\"\n---\nbody", doc.Render())
}

func TestSetFieldReplacesInPlace(t *testing.T) {
	doc, err := Parse("---\ntitle: A\nsummary: old\nNEXT: b\n---\nbody")
	require.NoError(t, err)

	doc.SetField("summary", "new", DefaultInsertBefore)
	assert.Equal(t, "title: A\nsummary: \"new\"\nNEXT: b", doc.YAML)
}

func TestSetFieldReplacesContinuationLines(t *testing.T) {
	src := "---\ntitle: A\nsummary: >\n  folded line one\n\n  line two\nNEXT: b\n---\nbody"
	doc, err := Parse(src)
	require.NoError(t, err)

	doc.SetField("summary", "new", DefaultInsertBefore)
	assert.Equal(t, "title: A\nsummary: \"new\"\nNEXT: b", doc.YAML)

	reparsed, err := Parse(doc.Render())
	require.NoError(t, err)
	assert.Equal(t, "new", reparsed.Field("summary"))
	assert.Equal(t, "b", reparsed.Field("NEXT"))
}

func TestSetFieldEscapesValue(t *testing.T) {
	doc, err := Parse("---\ntitle: A\n---\n")
	require.NoError(t, err)

	value := `say "hi" to C:\path` + "\nthen stop"
	doc.SetField("summary", value, nil)

	reparsed, err := Parse(doc.Render())
	require.NoError(t, err)
	assert.Equal(t, value, reparsed.Field("summary"))
	assert.Equal(t, "A", reparsed.Field("title"))
}

func TestSetFieldIsIdempotent(t *testing.T) {
	doc, err := Parse(note)
	require.NoError(t, err)
	doc.SetField("summary", "[AI] Once.", DefaultInsertBefore)
	first := doc.Render()

	again, err := Parse(first)
	require.NoError(t, err)
	again.SetField("summary", "[AI] Once.", DefaultInsertBefore)
	assert.Equal(t, first, again.Render())
}

func TestRenderKeepsBody(t *testing.T) {
	doc, err := Parse(note)
	require.NoError(t, err)
	doc.SetField("summary", "s", DefaultInsertBefore)

	reparsed, err := Parse(doc.Render())
	require.NoError(t, err)
	assert.Equal(t, doc.Body, reparsed.Body)
	assert.Equal(t, "Sample", reparsed.Field("title"))
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `a\\b\"c\nd`, Escape("a\\b\"c\nd"))
}
