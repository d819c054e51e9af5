package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "missing-key", MissingKey.String())
	assert.Equal(t, "extra-key", ExtraKey.String())
	assert.Equal(t, "type-mismatch", TypeMismatch.String())
	assert.Equal(t, "invalid-literal", InvalidLiteral.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestPathBuilders(t *testing.T) {
	assert.Equal(t, "tags", Key("", "tags"))
	assert.Equal(t, "tags[0]", Index(Key("", "tags"), 0))
	assert.Equal(t, "tags[0].id", Key(Index("tags", 0), "id"))
	assert.Equal(t, "[3]", Index("", 3))
}

func TestBullets(t *testing.T) {
	diags := []Diagnostic{
		{Kind: MissingKey, Path: "a", Detail: "Missing key: a"},
		{Kind: ExtraKey, Path: "b", Detail: "Extra key: b"},
	}

	assert.Equal(t, "- Missing key: a\n- Extra key: b", Bullets(diags))
	assert.Equal(t, []string{"a", "b"}, Paths(diags))
	assert.Empty(t, Bullets(nil))
}
