// Package figdiff reconciles a drawn scene with a newly compiled one.
// Elements are matched by their stable IDs, so an adapter can update a live
// drawing surface in place instead of clearing and redrawing it.
package figdiff

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"oss.terrastruct.com/mathfig/figtarget"
)

type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
)

type Change struct {
	Op      Op                 `json:"op"`
	ID      string             `json:"id"`
	Element *figtarget.Element `json:"element,omitempty"`
}

func (c Change) String() string {
	return fmt.Sprintf("%s %s", c.Op, c.ID)
}

// Diff returns the changes that turn old into new, sorted by element ID.
// A nil old scene adds every element of new and a nil new scene removes every element of old.
func Diff(old, new *figtarget.Scene) ([]Change, error) {
	oldEls, err := index(old)
	if err != nil {
		return nil, err
	}
	newEls, err := index(new)
	if err != nil {
		return nil, err
	}

	var changes []Change
	for id, ne := range newEls {
		oe, ok := oldEls[id]
		switch {
		case !ok:
			changes = append(changes, Change{Op: OpAdd, ID: id, Element: ne.el})
		case oe.raw != ne.raw:
			changes = append(changes, Change{Op: OpUpdate, ID: id, Element: ne.el})
		}
	}
	for id := range oldEls {
		if _, ok := newEls[id]; !ok {
			changes = append(changes, Change{Op: OpRemove, ID: id})
		}
	}

	slices.SortFunc(changes, func(a, b Change) bool {
		return a.ID < b.ID
	})
	return changes, nil
}

// IDs lists the element IDs of a scene in sorted order.
func IDs(s *figtarget.Scene) ([]string, error) {
	els, err := index(s)
	if err != nil {
		return nil, err
	}
	ids := maps.Keys(els)
	slices.Sort(ids)
	return ids, nil
}

type indexed struct {
	el  *figtarget.Element
	raw string
}

func index(s *figtarget.Scene) (map[string]indexed, error) {
	out := make(map[string]indexed)
	if s == nil {
		return out, nil
	}
	for _, el := range s.Elements() {
		el := el
		b, err := json.Marshal(el.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", el.ID, err)
		}
		out[el.ID] = indexed{el: &el, raw: string(b)}
	}
	return out, nil
}
