// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"testing"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// closeCounter is a face that records Close calls.
type closeCounter struct {
	xfont.Face
	closed *int
}

func (c closeCounter) Close() error {
	*c.closed++
	return nil
}

func TestFaceCacheEviction(t *testing.T) {
	var c faceCache
	closed := 0
	key := func(i int) faceKey { return faceKey{ppem: fixed.I(i)} }
	for i := 0; i < maxSize; i++ {
		c.Put(key(i), closeCounter{Face: basicfont.Face7x13, closed: &closed})
	}
	// Touch the oldest entry so that key 1 becomes the oldest.
	if _, ok := c.Get(key(0)); !ok {
		t.Fatal("key 0 missing before eviction")
	}
	c.Put(key(maxSize), closeCounter{Face: basicfont.Face7x13, closed: &closed})
	if _, ok := c.Get(key(1)); ok {
		t.Error("least recently used key 1 was not evicted")
	}
	for _, i := range []int{0, 2, maxSize - 1, maxSize} {
		if _, ok := c.Get(key(i)); !ok {
			t.Errorf("key %d was evicted", i)
		}
	}
	if closed != 1 {
		t.Errorf("%d faces closed, want 1", closed)
	}
}

func TestFaceCacheMiss(t *testing.T) {
	var c faceCache
	if _, ok := c.Get(faceKey{}); ok {
		t.Error("empty cache reported a hit")
	}
}
