package routing

import "container/heap"

// frontierItem is one heap entry. seq preserves push order so equal
// priorities pop first-in first-out.
type frontierItem struct {
	node     string
	priority float64
	seq      int
}

// frontier is a min-heap over priority with FIFO tie-breaking. Stale
// entries from lazy decrease-key are filtered by the callers' settled
// sets, not here.
type frontier struct {
	items  []*frontierItem
	pushes int
}

func newFrontier() *frontier { return &frontier{} }

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x any) { f.items = append(f.items, x.(*frontierItem)) }

func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]
	return it
}

// push adds a node with the given priority.
func (f *frontier) push(node string, priority float64) {
	heap.Push(f, &frontierItem{node: node, priority: priority, seq: f.pushes})
	f.pushes++
}

// pop removes and returns the lowest-priority entry.
func (f *frontier) pop() *frontierItem {
	return heap.Pop(f).(*frontierItem)
}
