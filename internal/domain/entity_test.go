package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityKinds_AllMapped(t *testing.T) {
	tables := make(map[string]struct{})
	labels := make(map[string]struct{})

	for _, kind := range AllEntityKinds() {
		assert.NotEmpty(t, kind.Table())
		assert.NotEmpty(t, kind.Label())
		tables[kind.Table()] = struct{}{}
		labels[kind.Label()] = struct{}{}
	}

	assert.Len(t, tables, len(AllEntityKinds()))
	assert.Len(t, labels, len(AllEntityKinds()))
}

func TestEntityKind_UnknownIsEmpty(t *testing.T) {
	unknown := EntityKind(99)
	assert.Empty(t, unknown.Table())
	assert.Empty(t, unknown.Label())
}
