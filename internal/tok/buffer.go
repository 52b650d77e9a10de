package tok

import "github.com/Vivtek/Lingua-Tok/internal/token"

// deque is the queue of pending tokens owned by a Tokenizer. Punctuation
// splitting pushes remainders back onto the front, so both ends are
// first-class operations.
type deque struct {
	items []token.Token
}

// Len returns the number of pending items.
func (d *deque) Len() int {
	return len(d.items)
}

// PushBack appends an item at the tail.
func (d *deque) PushBack(t token.Token) {
	d.items = append(d.items, t)
}

// PushFront inserts an item at the head.
func (d *deque) PushFront(t token.Token) {
	d.items = append(d.items, token.Token{})
	copy(d.items[1:], d.items)
	d.items[0] = t
}

// PopFront removes and returns the head item.
func (d *deque) PopFront() (token.Token, bool) {
	if len(d.items) == 0 {
		return token.Token{}, false
	}
	head := d.items[0]
	d.items = d.items[1:]
	return head, true
}

// Reset clears the queue for reuse.
func (d *deque) Reset() {
	d.items = nil
}
