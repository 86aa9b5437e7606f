// Package container implements the bounded, stack-like Container and the
// Pour operation that moves the top element between two containers.
//
// Containers follow last-in-first-out discipline: elements are appended
// at the back and removed from the back. A container never holds more
// than model.MaxElements elements. Every rejected operation returns a
// *model.Condition and leaves all containers unchanged.
package container
