package list

// Node is one element of a singly linked list. A nil *Node is the
// empty list; appending never shares a node between two chains.
type Node struct {
	Value int
	Next  *Node
}

// Appender is implemented by a tail-append strategy. Append links a
// new node holding value as the new tail of the chain rooted in the
// slot head points at, updating the head slot itself only when the
// list was empty. Strategies are interchangeable: same inputs, same
// resulting chain, they differ only in how they find the tail.
type Appender interface {
	Append(value int, head **Node)
	// String returns the strategy name
	String() string
}

// Indirect appends through a pointer-to-pointer cursor.
type Indirect struct{}

// Append walks a cursor over slots(the head slot and each node's Next
// field are the same kind of thing, a location holding an optional
// node) until it finds an empty one, then stores the new node through
// the cursor. The empty list is not a special case: the head slot is
// simply the first slot the cursor visits.
func (Indirect) Append(value int, head **Node) {
	indirect := head
	for *indirect != nil {
		indirect = &(*indirect).Next
	}
	*indirect = &Node{Value: value}
}

// String returns the strategy name
func (Indirect) String() string {
	return "indirect"
}

// Direct appends by walking node pointers with a trailing predecessor.
type Direct struct{}

// Append reads the head slot into a current pointer and walks it to
// the end of the chain, tracking the predecessor. The final write
// targets either the head slot(prev still nil, the list was empty) or
// prev.Next. Those are two different kinds of assignment target, which
// is exactly the branch Indirect avoids.
func (Direct) Append(value int, head **Node) {
	var prev *Node
	current := *head
	for current != nil {
		prev = current
		current = current.Next
	}
	n := &Node{Value: value}
	if prev == nil {
		*head = n
	} else {
		prev.Next = n
	}
}

// String returns the strategy name
func (Direct) String() string {
	return "direct"
}

// Collect walks the chain and returns its values in traversal order.
// An empty chain yields an empty slice.
func Collect(head *Node) []int {
	values := make([]int, 0, Len(head))
	for n := head; n != nil; n = n.Next {
		values = append(values, n.Value)
	}
	return values
}

// Len returns the number of nodes in the chain.
func Len(head *Node) int {
	length := 0
	for n := head; n != nil; n = n.Next {
		length++
	}
	return length
}

// Release severs every node in the chain and empties the head slot,
// returning the number of nodes released. After Release no node is
// reachable from head and a subsequent append starts a fresh list.
func Release(head **Node) int {
	released := 0
	n := *head
	for n != nil {
		next := n.Next
		n.Next = nil
		n = next
		released++
	}
	*head = nil
	return released
}
