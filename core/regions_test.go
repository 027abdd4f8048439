package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalRegion(t *testing.T) {
	assert.Equal(t, "nsw", CanonicalRegion("NSW"))
	assert.Equal(t, "nsw", CanonicalRegion("new south wales"))
	assert.Equal(t, "nsw", CanonicalRegion("  New South Wales "))
	assert.Equal(t, "vic", CanonicalRegion("Victoria"))
	assert.Equal(t, "somewhere else", CanonicalRegion("Somewhere Else"))
}

func TestRegionName(t *testing.T) {
	name, ok := RegionName("qld")
	assert.True(t, ok)
	assert.Equal(t, "queensland", name)

	name, ok = RegionName("Queensland")
	assert.True(t, ok)
	assert.Equal(t, "queensland", name)

	_, ok = RegionName("atlantis")
	assert.False(t, ok)
}

func TestSameRegion(t *testing.T) {
	assert.True(t, SameRegion("NSW", "new south wales"))
	assert.True(t, SameRegion("act", "Australian Capital Territory"))
	assert.False(t, SameRegion("nsw", "vic"))
	assert.False(t, SameRegion("", ""))
}
