package utils

import (
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GeneratesSortedV7(t *testing.T) {
	g := NewUUIDGenerator()

	ids := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		ids = append(ids, g.Generate())
	}

	parsed, err := uuid.Parse(ids[0])
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	assert.True(t, sort.StringsAreSorted(ids), "UUIDv7 ids must sort in creation order")
}
