// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/boxlayout/boxlayout/font"
)

type faceCache struct {
	m          map[faceKey]*faceElem
	head, tail *faceElem
}

type faceElem struct {
	next, prev *faceElem
	key        faceKey
	face       xfont.Face
}

type faceKey struct {
	font font.Font
	ppem fixed.Int26_6
}

const maxSize = 64

func (l *faceCache) Get(k faceKey) (xfont.Face, bool) {
	if f, ok := l.m[k]; ok {
		l.remove(f)
		l.insert(f)
		return f.face, true
	}
	return nil, false
}

func (l *faceCache) Put(k faceKey, face xfont.Face) {
	if l.m == nil {
		l.m = make(map[faceKey]*faceElem)
		l.head = new(faceElem)
		l.tail = new(faceElem)
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	val := &faceElem{key: k, face: face}
	l.m[k] = val
	l.insert(val)
	if len(l.m) > maxSize {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
		if oldest.face != nil {
			oldest.face.Close()
		}
	}
}

func (l *faceCache) remove(f *faceElem) {
	f.next.prev = f.prev
	f.prev.next = f.next
}

func (l *faceCache) insert(f *faceElem) {
	f.next = l.head
	f.prev = l.head.prev
	f.prev.next = f
	f.next.prev = f
}
