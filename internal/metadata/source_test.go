// file: internal/metadata/source_test.go
// version: 2.0.0
// guid: f6a7b8c9-d0e1-2f3a-4b5c-d6e7f8a9b0c1

package metadata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInterfaceCompliance verifies all clients implement Provider.
func TestInterfaceCompliance(t *testing.T) {
	var _ Provider = (*OpenLibraryClient)(nil)
	var _ Provider = (*GoogleBooksClient)(nil)
}

type stubProvider struct {
	name  string
	meta  *BookMetadata
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Fetch(_ context.Context, _ string) (*BookMetadata, bool) {
	s.calls++
	return s.meta, s.meta != nil
}

func TestChain_FirstHitWins(t *testing.T) {
	miss := &stubProvider{name: "A"}
	hit := &stubProvider{name: "B", meta: &BookMetadata{Title: "From B"}}
	unused := &stubProvider{name: "C", meta: &BookMetadata{Title: "From C"}}

	p := Chain(miss, hit, unused)
	meta, ok := p.Fetch(context.Background(), "123")
	require.True(t, ok)
	assert.Equal(t, "From B", meta.Title)
	assert.Equal(t, 1, miss.calls)
	assert.Equal(t, 0, unused.calls)
	assert.Equal(t, "A > B > C", p.Name())
}

func TestChain_AllAbsent(t *testing.T) {
	a := &stubProvider{name: "A"}
	b := &stubProvider{name: "B"}

	meta, ok := Chain(a, b).Fetch(context.Background(), "123")
	assert.False(t, ok)
	assert.Nil(t, meta)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
}

func TestChain_SingleProviderUnwrapped(t *testing.T) {
	a := &stubProvider{name: "A"}
	assert.Same(t, Provider(a), Chain(a))
}

func TestChain_StopsWhenCancelled(t *testing.T) {
	a := &stubProvider{name: "A", meta: &BookMetadata{Title: "x"}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := Chain(a, &stubProvider{name: "B"}).Fetch(ctx, "123")
	assert.False(t, ok)
	assert.Equal(t, 0, a.calls)
}

func TestNormalize(t *testing.T) {
	meta := normalize(&BookMetadata{
		Title:   "  Dune ",
		Authors: []string{" ", "Frank Herbert", ""},
	}, "9780441013593", "Test")

	assert.Equal(t, "Dune", meta.Title)
	assert.Equal(t, []string{"Frank Herbert"}, meta.Authors)
	assert.Equal(t, "Frank Herbert", meta.AuthorDisplay)
	assert.Equal(t, NotAvailable, meta.Publisher)
	assert.Equal(t, NotAvailable, meta.PublishedDate)
	assert.Equal(t, NotAvailable, meta.Description)
	assert.Equal(t, "9780441013593", meta.ISBN)
	assert.Equal(t, "Test", meta.Source)
}
