package semantic

import (
	"fmt"
	"strings"

	"github.com/interview-coach-team/interview-analyzer/internal/domain/entities"
)

// ChunkSegments groups fine-grained transcript segments into analysis windows
// of roughly chunkDuration seconds. A chunk is closed when the next segment
// starts at or beyond the window boundary, so a single segment longer than
// the window still forms exactly one chunk. The final open chunk is always
// flushed. Concatenating chunk texts in order reproduces the segment texts.
func ChunkSegments(segments []entities.Segment, chunkDuration float64) []entities.Chunk {
	chunks := []entities.Chunk{}
	if len(segments) == 0 {
		return chunks
	}

	var texts []string
	chunkStart := segments[0].Start
	chunkEnd := 0.0

	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)

		if seg.Start-chunkStart >= chunkDuration {
			if len(texts) > 0 {
				chunks = append(chunks, newChunk(chunkStart, chunkEnd, texts))
			}
			texts = []string{text}
			chunkStart = seg.Start
			chunkEnd = seg.End
		} else {
			texts = append(texts, text)
			chunkEnd = seg.End
		}
	}

	if len(texts) > 0 {
		chunks = append(chunks, newChunk(chunkStart, chunkEnd, texts))
	}
	return chunks
}

func newChunk(start, end float64, texts []string) entities.Chunk {
	return entities.Chunk{
		Timestamp: fmt.Sprintf("%ds - %ds", int(start), int(end)),
		Start:     start,
		End:       end,
		Text:      strings.Join(texts, " "),
	}
}
