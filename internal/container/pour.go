package container

import "github.com/shinji-kodama/color-pour/internal/model"

// Pour moves the top element of src onto dst.
//
// The checks run in this order, and the first that fails returns its
// condition with both containers unchanged:
//  1. src and dst are the same container: model.ErrSelfPour
//  2. src is empty: model.ErrSourceEmpty
//  3. dst is full: model.ErrDestinationFull (the element popped from src
//     is pushed back)
//
// On success src loses one element and dst gains it on top.
func Pour(src, dst *Container) error {
	if src == dst {
		return model.ErrSelfPour
	}

	if src.IsEmpty() {
		return model.ErrSourceEmpty
	}

	e := src.pop()
	if dst.IsFull() {
		src.push(e)
		return model.ErrDestinationFull
	}
	dst.push(e)
	return nil
}
