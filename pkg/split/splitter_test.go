package split

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rejoin reverses Plan: part texts joined with the separator must rebuild
// the original document.
func rejoin(parts []Part) string {
	texts := make([]string, len(parts))
	for i, p := range parts {
		texts[i] = p.Text
	}
	return strings.Join(texts, ParagraphSeparator)
}

func TestPlanSingleSmallDocument(t *testing.T) {
	doc := "para1\n\npara2\n\npara3"

	parts := Plan(doc, 1024)

	require.Len(t, parts, 1)
	assert.Equal(t, doc, parts[0].Text)
	assert.Equal(t, int64(len(doc)), parts[0].Size)
}

func TestPlanOnePartPerParagraph(t *testing.T) {
	// Three 100-byte paragraphs with a 150-byte target: each fits alone,
	// but no part can hold a second one.
	p := strings.Repeat("x", 100)
	doc := strings.Join([]string{p, p, p}, ParagraphSeparator)

	parts := Plan(doc, 150)

	require.Len(t, parts, 3)
	for _, part := range parts {
		assert.Equal(t, p, part.Text)
		assert.Equal(t, int64(100), part.Size)
	}
}

func TestPlanOversizedSingleton(t *testing.T) {
	big := strings.Repeat("y", 10000)

	parts := Plan(big, 100)

	require.Len(t, parts, 1)
	assert.Equal(t, big, parts[0].Text)
	assert.Equal(t, int64(10000), parts[0].Size)
}

func TestPlanOversizedSingletonMidDocument(t *testing.T) {
	big := strings.Repeat("y", 500)
	doc := strings.Join([]string{"aa", big, "bb"}, ParagraphSeparator)

	parts := Plan(doc, 50)

	require.Len(t, parts, 3)
	assert.Equal(t, "aa", parts[0].Text)
	assert.Equal(t, big, parts[1].Text)
	assert.Equal(t, int64(500), parts[1].Size)
	assert.Equal(t, "bb", parts[2].Text)
}

func TestPlanSeparatorCostAsymmetry(t *testing.T) {
	// Two 4-byte paragraphs: the second costs 4+2 when continuing a part,
	// so they share a part at target 10 but not at target 9.
	doc := "aaaa\n\nbbbb"

	parts := Plan(doc, 10)
	require.Len(t, parts, 1)
	assert.Equal(t, int64(10), parts[0].Size)

	parts = Plan(doc, 9)
	require.Len(t, parts, 2)
	assert.Equal(t, int64(4), parts[0].Size)
	assert.Equal(t, int64(4), parts[1].Size)
}

func TestPlanFirstParagraphInPartCostsOwnSize(t *testing.T) {
	// The paragraph that opens a new part after an overflow is charged its
	// own size only, with no leading separator: two 5-byte paragraphs both
	// fit exactly at target 5.
	doc := "aaaaa\n\nbbbbb"

	parts := Plan(doc, 5)

	require.Len(t, parts, 2)
	assert.Equal(t, int64(5), parts[0].Size)
	assert.Equal(t, int64(5), parts[1].Size)
}

func TestPlanPreservesEmptyParagraphs(t *testing.T) {
	// Consecutive separators produce empty paragraphs that must survive
	// the round trip.
	doc := "a\n\n\n\nb"

	parts := Plan(doc, 1024)

	require.Len(t, parts, 1)
	assert.Equal(t, doc, parts[0].Text)
}

func TestPlanEmptyDocument(t *testing.T) {
	// Contract: an empty document yields one empty part.
	parts := Plan("", 1024)

	require.Len(t, parts, 1)
	assert.Equal(t, "", parts[0].Text)
	assert.Equal(t, int64(0), parts[0].Size)
}

func TestPlanRoundTrip(t *testing.T) {
	docs := []string{
		"",
		"single paragraph with no separator",
		"para1\n\npara2\n\npara3",
		"a\n\n\n\nb\n\n",
		"\n\nleading empty paragraph",
		"trailing newline paragraph\n",
		strings.Repeat("lorem ipsum dolor sit amet\n\n", 50),
		"unicode: héllo wörld\n\n日本語の段落です\n\nfin",
	}
	targets := []int64{1, 10, 64, 1024}

	for _, doc := range docs {
		for _, target := range targets {
			parts := Plan(doc, target)
			require.NotEmpty(t, parts)
			assert.Equal(t, doc, rejoin(parts),
				"round trip failed for target %d", target)
		}
	}
}

func TestPlanMonotonicSizing(t *testing.T) {
	doc := strings.Repeat("word word word word word\n\n", 100)
	const target = 120

	parts := Plan(doc, target)
	require.Greater(t, len(parts), 1)

	for i, part := range parts {
		assert.Equal(t, int64(len(part.Text)), part.Size, "part %d size mismatch", i)
		if paragraphs := strings.Split(part.Text, ParagraphSeparator); len(paragraphs) > 1 {
			assert.LessOrEqual(t, part.Size, int64(target),
				"multi-paragraph part %d exceeds target", i)
		}
	}
}

func TestPlanSizesCountEncodedBytes(t *testing.T) {
	// "é" is two bytes in UTF-8: sizes are byte counts, not rune counts.
	doc := "ééé\n\nfff"

	parts := Plan(doc, 6)

	require.Len(t, parts, 2)
	assert.Equal(t, int64(6), parts[0].Size)
	assert.Equal(t, int64(3), parts[1].Size)
}

func TestPlanDeterminism(t *testing.T) {
	doc := strings.Repeat("some paragraph text here\n\n", 40)

	first := Plan(doc, 200)
	second := Plan(doc, 200)

	assert.Equal(t, first, second)
}
