// Package knowledge ranks embedded knowledge-base passages against a user
// question by cosine similarity.
package knowledge

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cloudwego/eino/components/embedding"

	"github.com/ironcoach/ironcoach/internal/model/health"
	"github.com/ironcoach/ironcoach/pkg/logger"
)

// DefaultTopK mirrors the retrieval depth the coach prompt was tuned for.
const DefaultTopK = 3

// ChunkSource supplies the embedded knowledge base.
type ChunkSource interface {
	KnowledgeChunks(ctx context.Context) ([]health.KnowledgeChunk, error)
}

// Retriever embeds a question and returns the most similar passages joined
// for prompt insertion.
type Retriever struct {
	embedder embedding.Embedder
	source   ChunkSource
	topK     int
}

// NewRetriever wires a retriever. topK <= 0 falls back to DefaultTopK.
func NewRetriever(embedder embedding.Embedder, source ChunkSource, topK int) *Retriever {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Retriever{embedder: embedder, source: source, topK: topK}
}

// Context returns the joined top-k passages for the question. Any failure
// degrades to an empty context: retrieval must never block an answer.
func (r *Retriever) Context(ctx context.Context, question string) string {
	chunks, err := r.rank(ctx, question)
	if err != nil {
		logger.With("component", "knowledge").WithError(err).Warn("knowledge retrieval degraded to empty context")
		return ""
	}
	return strings.Join(chunks, "\n---\n")
}

func (r *Retriever) rank(ctx context.Context, question string) ([]string, error) {
	if r.embedder == nil {
		return nil, fmt.Errorf("no embedder configured")
	}

	vectors, err := r.embedder.EmbedStrings(ctx, []string{question})
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedder returned no vector")
	}
	query := vectors[0]

	chunks, err := r.source.KnowledgeChunks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load knowledge chunks: %w", err)
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	type scored struct {
		content    string
		similarity float64
	}
	ranked := make([]scored, 0, len(chunks))
	for _, c := range chunks {
		ranked = append(ranked, scored{content: c.Content, similarity: cosine(query, c.Embedding)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].similarity > ranked[j].similarity })

	n := r.topK
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]string, 0, n)
	for _, s := range ranked[:n] {
		out = append(out, s.content)
	}
	return out, nil
}

func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return -1
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return -1
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
