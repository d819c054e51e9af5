package common

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix([]string{"a", "b", "c"}, []string{"a", "b"}))
	assert.True(t, HasPrefix([]string{"a", "b"}, []string{"a", "b"}))
	assert.True(t, HasPrefix([]string{"a"}, nil))
	assert.False(t, HasPrefix([]string{"a", "bc"}, []string{"a", "b"}))
	assert.False(t, HasPrefix([]string{"a"}, []string{"a", "b"}))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, Unique([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, Unique([]string(nil)))
}

func TestFirst(t *testing.T) {
	v, ok := First([]int{3, 4})
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = First([]int{})
	assert.False(t, ok)
	assert.True(t, IsEmpty([]int{}))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitName("a.b"))
	assert.Nil(t, SplitName(""))

	assert.Equal(t, "teamA.sub", NameFromPath(filepath.Join("teamA", "sub")))
	assert.Equal(t, "", NameFromPath("."))

	assert.Equal(t, filepath.Join("teamA", "sub"), PathFromName("teamA.sub"))
	assert.Equal(t, filepath.Join("teamA", "sub"), PathFromName("teamA/sub"))

	assert.Equal(t, "teamA.sub", NormalizeName("teamA/sub"))
	assert.Equal(t, "teamA.sub", NormalizeName("teamA.sub"))
	assert.Equal(t, "teamA", NormalizeName("teamA/"))
}

func TestIsYAML(t *testing.T) {
	assert.True(t, IsYAML("a.yaml"))
	assert.True(t, IsYAML("dir/a.yml"))
	assert.False(t, IsYAML("a.json"))
	assert.False(t, IsYAML("yaml"))
}
