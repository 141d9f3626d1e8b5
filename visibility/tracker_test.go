package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleIsInvolutive(t *testing.T) {
	tr := NewTracker("Date")
	tr.Toggle("B")

	before := tr.Snapshot()
	assert.True(t, tr.Toggle("A"))
	assert.False(t, tr.Toggle("A"))
	assert.Equal(t, before, tr.Snapshot())
}

func TestIndexColumnIsProtected(t *testing.T) {
	tr := NewTracker("Date")
	assert.False(t, tr.Toggle("Date"))
	assert.False(t, tr.IsHidden("Date"))
	assert.Equal(t, 0, tr.Len())

	tr = FromSet("Date", Set{"Date": {}, "A": {}})
	assert.Equal(t, []string{"A"}, tr.Hidden())
}

func TestSnapshotIsIndependent(t *testing.T) {
	tr := NewTracker("Date")
	tr.Toggle("A")

	snap := tr.Snapshot()
	tr.Toggle("A")
	tr.Toggle("C")

	assert.True(t, snap.Has("A"))
	assert.False(t, snap.Has("C"))
	assert.Equal(t, []string{"C"}, tr.Hidden())
}

func TestFromSetCopies(t *testing.T) {
	src := Set{"A": {}}
	tr := FromSet("Date", src)
	tr.Toggle("A")

	assert.True(t, src.Has("A"))
	assert.False(t, tr.IsHidden("A"))
}

func TestHiddenIsSorted(t *testing.T) {
	tr := NewTracker("i")
	for _, n := range []string{"z", "b", "m"} {
		tr.Toggle(n)
	}
	assert.Equal(t, []string{"b", "m", "z"}, tr.Hidden())

	tr.Clear()
	assert.Empty(t, tr.Hidden())
}
