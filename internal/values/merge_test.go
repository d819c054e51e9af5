package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, doc string) *Map {
	t.Helper()

	m, err := Parse([]byte(doc))
	require.NoError(t, err)

	return m
}

func TestMerge_NestedOverride(t *testing.T) {
	defaults := mustParse(t, `
foo:
  bar: bar2
  bar3: bar5
spam: eggs
test: response
`)
	overlay := mustParse(t, `
foo:
  bar: bar4
  bar2: bar4
spam: ham
animal:
  dog: bark
  cat: meow
`)
	expected := mustParse(t, `
foo:
  bar: bar4
  bar3: bar5
  bar2: bar4
spam: ham
test: response
animal:
  dog: bark
  cat: meow
`)

	got := Merge(defaults, overlay)

	assert.Equal(t, expected, got)
	assert.Equal(t, []string{"foo", "spam", "test", "animal"}, got.Keys())
}

func TestMerge_MappingsRecurse(t *testing.T) {
	got := Merge(mustParse(t, `a: {x: 1}`), mustParse(t, `a: {y: 2}`))

	assert.Equal(t, mustParse(t, `a: {x: 1, y: 2}`), got)
}

func TestMerge_ListsReplacedWholesale(t *testing.T) {
	got := Merge(mustParse(t, `a: [1, 2]`), mustParse(t, `a: [3]`))

	assert.Equal(t, mustParse(t, `a: [3]`), got)
}

func TestMerge_EmptyOverlayKeepsBase(t *testing.T) {
	base := mustParse(t, `
kind: Monitor
incident:
  severity: Low
tags: [{name: a}]
`)

	assert.Equal(t, base, Merge(base, New()))
	assert.Equal(t, base, Merge(base, nil))
}

func TestMerge_NilBase(t *testing.T) {
	overlay := mustParse(t, `a: {b: 1}`)

	assert.Equal(t, overlay, Merge(nil, overlay))
}

func TestMerge_NonMappingBaseTreatedAsEmpty(t *testing.T) {
	got := Merge(mustParse(t, "a: scalar\nb: ~"), mustParse(t, "a: {x: 1}\nb: {y: 2}"))

	assert.Equal(t, mustParse(t, "a: {x: 1}\nb: {y: 2}"), got)
}

func TestMerge_ScalarOverMapping(t *testing.T) {
	got := Merge(mustParse(t, `a: {x: 1}`), mustParse(t, `a: flat`))

	assert.Equal(t, mustParse(t, `a: flat`), got)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	base := mustParse(t, `
a:
  x: 1
list: [1, 2]
`)
	overlay := mustParse(t, `
a:
  y: 2
extra:
  nested: true
`)
	baseBefore := base.Clone()
	overlayBefore := overlay.Clone()

	got := Merge(base, overlay)

	// Mutating the result must not leak into the inputs.
	nested, ok := got.Map("a")
	require.True(t, ok)
	nested.Set("z", 3)

	extra, ok := got.Map("extra")
	require.True(t, ok)
	extra.Set("nested", false)

	list, ok := got.List("list")
	require.True(t, ok)
	list[0] = 99

	assert.Equal(t, baseBefore, base)
	assert.Equal(t, overlayBefore, overlay)
}

func TestMerge_TopLevelKeysOfOverlayPresent(t *testing.T) {
	base := mustParse(t, `{a: 1, b: {c: 2}}`)
	overlay := mustParse(t, `{b: {d: 3}, e: [x]}`)

	got := Merge(base, overlay)

	for _, k := range overlay.Keys() {
		assert.True(t, got.Has(k), "missing key %q", k)
	}

	v, _ := got.Get("a")
	assert.Equal(t, 1, v)
}
