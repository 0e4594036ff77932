package runemark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runemark/runemark"
)

func TestIDGeneratorSequencing(t *testing.T) {
	t.Parallel()
	g := runemark.NewIDGenerator()

	a := runemark.NewTagNode("tabs", nil)
	b := runemark.NewTagNode("tabs", nil)
	c := runemark.NewTagNode("hint", nil)
	g.GenerateIfMissing(a)
	g.GenerateIfMissing(b)
	g.GenerateIfMissing(c)

	assert.Equal(t, "tabs-0", a.String("id"))
	assert.Equal(t, "tabs-1", b.String("id"))
	assert.Equal(t, "hint-0", c.String("id"))
}

func TestIDGeneratorKeepsExplicitID(t *testing.T) {
	t.Parallel()
	g := runemark.NewIDGenerator()
	n := runemark.NewTagNode("tabs", map[string]any{"id": "mine"})
	g.GenerateIfMissing(n)
	assert.Equal(t, "mine", n.String("id"))
}

func TestIDGeneratorSkipsTakenIndexes(t *testing.T) {
	t.Parallel()
	g := runemark.NewIDGenerator()
	g.GenerateIfMissing(runemark.NewTagNode("step", nil))

	next := runemark.NewTagNode("step", nil)
	g.GenerateIfMissing(next)
	assert.Equal(t, "step-1", next.String("id"))
}

func TestIDGeneratorIgnoresNonTags(t *testing.T) {
	t.Parallel()
	g := runemark.NewIDGenerator()
	n := runemark.NewNode("paragraph", nil)
	g.GenerateIfMissing(n)
	_, ok := n.Attributes["id"]
	assert.False(t, ok)
}
