package split

import "strings"

// ParagraphSeparator is the sole paragraph boundary marker: a blank line.
const ParagraphSeparator = "\n\n"

// Part is one planned output file: the joined text of a batch of paragraphs
// and that text's size in bytes.
type Part struct {
	Text string
	Size int64
}

// Plan partitions text into paragraphs at blank lines and greedily packs
// them, in document order, into parts of at most target bytes.
//
// The marginal cost of a paragraph is its own byte length when it opens a
// part, and its byte length plus the separator's when it continues one. A
// paragraph whose marginal cost would push the running total over the
// target starts a new part instead — unless the current part is empty, in
// which case the paragraph is emitted alone even if it alone exceeds the
// target (paragraphs are never split).
//
// Joining all returned part texts with the separator reproduces text
// exactly. An empty document yields a single empty part.
func Plan(text string, target int64) []Part {
	paragraphs := strings.Split(text, ParagraphSeparator)

	var parts []Part
	var batch []string
	var batchSize int64

	flush := func() {
		parts = append(parts, Part{
			Text: strings.Join(batch, ParagraphSeparator),
			Size: batchSize,
		})
	}

	for _, paragraph := range paragraphs {
		size := int64(len(paragraph))
		cost := size
		if len(batch) > 0 {
			cost += int64(len(ParagraphSeparator))
		}

		if len(batch) > 0 && batchSize+cost > target {
			flush()
			batch = []string{paragraph}
			batchSize = size
			continue
		}

		batch = append(batch, paragraph)
		batchSize += cost
	}

	// strings.Split never yields zero elements, so the trailing batch holds
	// at least one paragraph.
	flush()
	return parts
}
