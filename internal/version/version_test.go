package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_ContainsVersionAndCommit(t *testing.T) {
	s := Info()
	assert.Contains(t, s, "registrygen")
	assert.Contains(t, s, Version)
}

func TestShort_TruncatesLongCommits(t *testing.T) {
	assert.Equal(t, "abcdef0", short("abcdef0123456789"))
	assert.Equal(t, "abc", short("abc"))
}
