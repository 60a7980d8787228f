package semantic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/interview-coach-team/interview-analyzer/internal/domain/entities"
)

func seg(start, end float64, text string) entities.Segment {
	return entities.Segment{Start: start, End: end, Text: text}
}

func TestChunkSegments_WindowBoundary(t *testing.T) {
	segments := []entities.Segment{
		seg(0, 10, "s0"),
		seg(10, 20, "s1"),
		seg(20, 30, "s2"),
		seg(30, 40, "s3"),
		seg(40, 50, "s4"),
		seg(50, 60, "s5"),
		seg(60, 70, "s6"),
	}

	chunks := ChunkSegments(segments, 30)

	require.Len(t, chunks, 3)
	require.Equal(t, "s0 s1 s2", chunks[0].Text)
	require.Equal(t, "s3 s4 s5", chunks[1].Text)
	require.Equal(t, "s6", chunks[2].Text)
	require.Equal(t, "0s - 30s", chunks[0].Timestamp)
	require.Equal(t, 30.0, chunks[1].Start)
	require.Equal(t, 60.0, chunks[1].End)
}

func TestChunkSegments_SingleLongSegment(t *testing.T) {
	segments := []entities.Segment{seg(0, 95, "one very long answer")}

	chunks := ChunkSegments(segments, 30)

	require.Len(t, chunks, 1)
	require.Equal(t, "one very long answer", chunks[0].Text)
	require.Equal(t, 0.0, chunks[0].Start)
	require.Equal(t, 95.0, chunks[0].End)
}

func TestChunkSegments_Empty(t *testing.T) {
	chunks := ChunkSegments(nil, 30)
	require.NotNil(t, chunks)
	require.Empty(t, chunks)
}

func TestChunkSegments_TextRoundTrip(t *testing.T) {
	segments := []entities.Segment{
		seg(0, 12, "alpha"),
		seg(12, 31, "beta"),
		seg(31, 44, "gamma"),
		seg(44, 80, "delta"),
		seg(80, 85, "epsilon"),
	}

	chunks := ChunkSegments(segments, 30)

	var out []string
	var lastStart float64
	for _, c := range chunks {
		out = append(out, c.Text)
		require.GreaterOrEqual(t, c.Start, lastStart)
		lastStart = c.Start
	}
	require.Equal(t, "alpha beta gamma delta epsilon", strings.Join(out, " "))
}
