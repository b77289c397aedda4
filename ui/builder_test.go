package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleAllMergesIntoTheme(t *testing.T) {
	b := NewGuiBuilder(BuildTree(Leaf("root"))).
		StyleAll(Description{Width: Ptr(Percent(50)), Height: Ptr(Percent(50))}).
		StyleAll(Description{Width: Ptr(Px(10))})

	theme := b.Theme()
	assert.Equal(t, Px(10), *theme.Width)
	assert.Equal(t, Percent(50), *theme.Height)
}

func TestStyleByNameMergesExistingRule(t *testing.T) {
	b := NewGuiBuilder(BuildTree(Leaf("root"))).
		StyleByName("root", Description{Width: Ptr(Px(1)), Height: Ptr(Px(1))}).
		StyleByName("root", Description{Width: Ptr(Px(2))})

	rule, ok := b.NameRule("root")
	require.True(t, ok)
	assert.Equal(t, Px(2), *rule.Width)
	assert.Equal(t, Px(1), *rule.Height)
}

func TestStyleByTagMergesExistingRule(t *testing.T) {
	b := NewGuiBuilder(BuildTree(Leaf("root"))).
		StyleByTag("btn", Description{Width: Ptr(Px(1)), Height: Ptr(Px(1))}).
		StyleByTag("btn", Description{Height: Ptr(Px(2))})

	rule, ok := b.TagRule("btn")
	require.True(t, ok)
	assert.Equal(t, Px(1), *rule.Width)
	assert.Equal(t, Px(2), *rule.Height)
}

// A tag rule whose key equals an existing name rule's key must land in the
// tag table and leave the name rule alone.
func TestStyleByTagDoesNotTouchNameTable(t *testing.T) {
	b := NewGuiBuilder(BuildTree(Leaf("root"))).
		StyleByName("shared", Description{Width: Ptr(Px(1))}).
		StyleByTag("shared", Description{Width: Ptr(Px(2))})

	nameRule, ok := b.NameRule("shared")
	require.True(t, ok)
	assert.Equal(t, Px(1), *nameRule.Width)

	tagRule, ok := b.TagRule("shared")
	require.True(t, ok, "tag rule must be created even when a name rule uses the key")
	assert.Equal(t, Px(2), *tagRule.Width)
}

func TestBuilderUpdatesDoNotAlias(t *testing.T) {
	base := NewGuiBuilder(BuildTree(Leaf("root"))).
		StyleByName("root", Description{Width: Ptr(Px(1))})

	a := base.StyleByName("root", Description{Width: Ptr(Px(2))})
	b := base.StyleByTag("btn", Description{Width: Ptr(Px(3))})
	_ = base.StyleAll(Description{Height: Ptr(Px(4))})

	rule, _ := base.NameRule("root")
	assert.Equal(t, Px(1), *rule.Width)
	_, ok := base.TagRule("btn")
	assert.False(t, ok)
	assert.Nil(t, base.Theme().Height)

	rule, _ = a.NameRule("root")
	assert.Equal(t, Px(2), *rule.Width)
	_, ok = b.TagRule("btn")
	assert.True(t, ok)
}

func TestNewGuiBuilderNilRootPanics(t *testing.T) {
	assert.Panics(t, func() { NewGuiBuilder(nil) })
}

func TestResolveCascadePrecedence(t *testing.T) {
	tree := BuildTree(Leaf("node", "a", "b"))
	b := NewGuiBuilder(tree).
		StyleAll(Description{
			Width:  Ptr(Px(1)),
			Height: Ptr(Px(1)),
			Left:   Ptr(Px(1)),
			Right:  Ptr(Px(1)),
		}).
		StyleByTag("a", Description{
			Width:  Ptr(Px(2)),
			Height: Ptr(Px(2)),
			Left:   Ptr(Px(2)),
		}).
		StyleByTag("b", Description{
			Width:  Ptr(Px(3)),
			Height: Ptr(Px(3)),
		}).
		StyleByName("node", Description{Width: Ptr(Px(4))})

	got := b.Resolve(tree)
	assert.Equal(t, Px(4), *got.Width, "name rule beats everything")
	assert.Equal(t, Px(3), *got.Height, "later tag beats earlier tag")
	assert.Equal(t, Px(2), *got.Left, "tag beats theme")
	assert.Equal(t, Px(1), *got.Right, "theme applies when nothing else does")
	assert.Nil(t, got.Top)
	assert.True(t, got.Style().Top.IsAuto(), "unset falls back to the default")
}

func TestResolveTagOrderFollowsNode(t *testing.T) {
	b := NewGuiBuilder(BuildTree(Leaf("root"))).
		StyleByTag("b", Description{Width: Ptr(Px(2))}).
		StyleByTag("a", Description{Width: Ptr(Px(1))})

	ab := BuildTree(Leaf("x", "a", "b"))
	ba := BuildTree(Leaf("x", "b", "a"))
	assert.Equal(t, Px(2), *b.Resolve(ab).Width)
	assert.Equal(t, Px(1), *b.Resolve(ba).Width)
}

func TestResolveUnknownKeysIgnored(t *testing.T) {
	b := NewGuiBuilder(BuildTree(Leaf("root"))).
		StyleByTag("other", Description{Width: Ptr(Px(2))}).
		StyleByName("other", Description{Width: Ptr(Px(2))})

	assert.True(t, b.Resolve(BuildTree(Leaf("x", "y"))).IsEmpty())
}
