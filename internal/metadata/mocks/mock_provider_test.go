// file: internal/metadata/mocks/mock_provider_test.go
// version: 1.0.0
// guid: 7f2d9b14-3e6c-4a50-b8d1-c94e0a7f5263

package mocks

import (
	"context"
	"testing"

	"github.com/jdfalk/isbn-catalog/internal/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMockProvider(t *testing.T) {
	var _ metadata.Provider = (*MockProvider)(nil)

	m := NewMockProvider(t)
	m.EXPECT().Name().Return("Fake")
	m.EXPECT().Fetch(mock.Anything, "9780143127741").
		Return(&metadata.BookMetadata{Title: "Sapiens"}, true)
	m.EXPECT().Fetch(mock.Anything, "0000000000").Return(nil, false)

	assert.Equal(t, "Fake", m.Name())

	meta, ok := m.Fetch(context.Background(), "9780143127741")
	assert.True(t, ok)
	assert.Equal(t, "Sapiens", meta.Title)

	meta, ok = m.Fetch(context.Background(), "0000000000")
	assert.False(t, ok)
	assert.Nil(t, meta)
}
