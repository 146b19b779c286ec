package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationFiles.ReadDir("migrations")

	assert.NoError(t, err)
	assert.Len(t, entries, 4)
}
