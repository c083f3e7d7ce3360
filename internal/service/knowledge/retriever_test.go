package knowledge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/embedding"

	"github.com/ironcoach/ironcoach/internal/model/health"
)

type fakeEmbedder struct {
	vector []float64
	err    error
}

func (f *fakeEmbedder) EmbedStrings(_ context.Context, texts []string, _ ...embedding.Option) ([][]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float64, len(texts))
	for i := range texts {
		out[i] = f.vector
	}
	return out, nil
}

type fakeChunks struct {
	chunks []health.KnowledgeChunk
	err    error
}

func (f *fakeChunks) KnowledgeChunks(context.Context) ([]health.KnowledgeChunk, error) {
	return f.chunks, f.err
}

func TestContextRanksBySimilarity(t *testing.T) {
	source := &fakeChunks{chunks: []health.KnowledgeChunk{
		{Content: "orthogonal", Embedding: []float64{0, 1, 0}},
		{Content: "aligned", Embedding: []float64{1, 0, 0}},
		{Content: "close", Embedding: []float64{0.9, 0.1, 0}},
	}}
	r := NewRetriever(&fakeEmbedder{vector: []float64{1, 0, 0}}, source, 2)

	got := r.Context(context.Background(), "progressive overload?")
	parts := strings.Split(got, "\n---\n")
	if len(parts) != 2 {
		t.Fatalf("expected top-2 chunks, got %q", got)
	}
	if parts[0] != "aligned" || parts[1] != "close" {
		t.Fatalf("unexpected ranking: %v", parts)
	}
}

func TestContextDegradesOnEmbedderFailure(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{err: errors.New("quota")}, &fakeChunks{}, 3)

	if got := r.Context(context.Background(), "q"); got != "" {
		t.Fatalf("expected empty context on failure, got %q", got)
	}
}

func TestContextEmptyKnowledgeBase(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{vector: []float64{1}}, &fakeChunks{}, 3)

	if got := r.Context(context.Background(), "q"); got != "" {
		t.Fatalf("expected empty context, got %q", got)
	}
}

func TestCosineDegenerateVectors(t *testing.T) {
	if got := cosine(nil, nil); got != -1 {
		t.Fatalf("empty vectors should rank last, got %f", got)
	}
	if got := cosine([]float64{1, 0}, []float64{1}); got != -1 {
		t.Fatalf("mismatched dims should rank last, got %f", got)
	}
}
