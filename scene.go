package hittest

import (
	"iter"
	"reflect"

	"deedles.dev/xiter"
)

// Scene is a stack of elements, ordered from bottom to top, that can
// be queried for the elements under a point or touching another
// element. A Scene must not be modified while it is being queried.
type Scene struct {
	tester   *Tester
	elements []Element
}

// NewScene returns an empty scene that tests elements with t.
func NewScene(t *Tester) *Scene {
	return &Scene{tester: t}
}

// Add pushes elements onto the top of the stack in order.
func (s *Scene) Add(elements ...Element) {
	s.elements = append(s.elements, elements...)
}

// Len returns the number of elements in the scene.
func (s *Scene) Len() int {
	return len(s.elements)
}

func (s *Scene) topDown() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for i := len(s.elements) - 1; i >= 0; i-- {
			if !yield(s.elements[i]) {
				return
			}
		}
	}
}

// At returns an iterator over the elements hit by the point (x, y),
// topmost first.
func (s *Scene) At(x, y int) iter.Seq[Element] {
	return xiter.Filter(s.topDown(), func(el Element) bool {
		return s.tester.Point(el, x, y)
	})
}

// Top returns the topmost element hit by the point (x, y).
func (s *Scene) Top(x, y int) (Element, bool) {
	for el := range s.At(x, y) {
		return el, true
	}
	return nil, false
}

// Colliding returns an iterator over the elements of the scene other
// than el that el hits, topmost first. el does not need to be in the
// scene. Elements whose dynamic type is not comparable are never
// considered to be el, so if such an element is in the scene and hits
// itself, it is yielded.
func (s *Scene) Colliding(el Element) iter.Seq[Element] {
	return xiter.Filter(s.topDown(), func(other Element) bool {
		return !same(other, el) && s.tester.Object(el, other)
	})
}

// same reports whether a and b are the same element without
// panicking on dynamic types that can't be compared.
func same(a, b Element) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
