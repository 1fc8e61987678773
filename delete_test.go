package shapeindex

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertThenSearchScenario(t *testing.T) {
	re := require.New(t)
	rt, err := New(4)
	re.NoError(err)

	for i := 1; i <= 6; i++ {
		f := float64(i)
		rt.Insert(Item{ID: i, Name: fmt.Sprintf("rect-%d", i)}, NewRect(f, f, f+1, f+1))
	}

	// Six inserts with capacity 4 force exactly one root split: an
	// intermediate root over two leaves.
	root := rt.nodes[rt.root]
	re.False(root.isLeaf)
	re.Len(root.entries, 2)
	re.True(rt.nodes[root.entries[0].child].isLeaf)
	re.True(rt.nodes[root.entries[1].child].isLeaf)

	re.Equal([]int{1, 2, 3}, searchIDs(rt, NewRect(0, 0, 3, 3)))
}

func TestDeleteScenario(t *testing.T) {
	re := require.New(t)
	rt, err := New(4)
	re.NoError(err)

	for i := 1; i <= 6; i++ {
		f := float64(i)
		rt.Insert(Item{ID: i, Name: fmt.Sprintf("rect-%d", i)}, NewRect(f, f, f+1, f+1))
	}

	re.True(rt.DeleteByID(3))
	re.False(rt.DeleteByID(3))

	_, ok := rt.SearchByID(3)
	re.False(ok)

	re.Equal([]int{1, 2, 4, 5, 6}, searchIDs(rt, NewRect(0, 0, 10, 10)))
	checkInvariants(t, rt)
}

func TestDeleteOddIDs(t *testing.T) {
	re := require.New(t)
	rt, err := New(8)
	re.NoError(err)

	rnd := rand.New(rand.NewSource(3))
	shapes := make(map[int]Shape)
	for i := 1; i <= 100; i++ {
		s := Rect{Box: randomBox(rnd, 0.9, 0.1)}
		shapes[i] = s
		rt.Insert(Item{ID: i, Name: fmt.Sprintf("item-%d", i)}, s)
	}

	for i := 1; i <= 100; i += 2 {
		re.True(rt.DeleteByID(i))
		checkInvariants(t, rt)
	}

	world := NewRect(-10, -10, 10, 10)
	var want []int
	for i := 2; i <= 100; i += 2 {
		want = append(want, i)
	}
	re.Equal(want, searchIDs(rt, world))
	re.Equal(50, rt.Len())
}

func TestDeleteToEmptyAndReuse(t *testing.T) {
	re := require.New(t)
	rt, err := New(2)
	re.NoError(err)

	// Drive the tree up a few levels, then strip it back down. Capacity 2
	// gives the tallest tree per item, which exercises both orphan
	// reinsertion and root collapse.
	for i := 0; i < 40; i++ {
		rt.Insert(Item{ID: i}, NewRect(float64(i), 0, float64(i)+1, 1))
		checkInvariants(t, rt)
	}
	for i := 0; i < 40; i++ {
		re.True(rt.DeleteByID(i))
		checkInvariants(t, rt)
	}

	re.Equal(0, rt.Len())
	re.True(rt.nodes[rt.root].isLeaf)
	re.Empty(rt.nodes[rt.root].entries)

	// Released handles must be reusable.
	slabBefore := len(rt.nodes)
	for i := 0; i < 40; i++ {
		rt.Insert(Item{ID: i}, NewRect(float64(i), 0, float64(i)+1, 1))
		checkInvariants(t, rt)
	}
	re.LessOrEqual(len(rt.nodes), slabBefore)
}

func TestUpdateMovesItem(t *testing.T) {
	re := require.New(t)
	rt, err := New(4)
	re.NoError(err)

	for i := 1; i <= 10; i++ {
		f := float64(i)
		rt.Insert(Item{ID: i, Name: fmt.Sprintf("item-%d", i)}, NewRect(f, f, f+1, f+1))
	}

	const k = 5
	re.True(rt.UpdateByID(k, Disk{CenterX: 500, CenterY: 500, Radius: 100}))
	checkInvariants(t, rt)

	// The payload survives the move.
	item, ok := rt.SearchByID(k)
	re.True(ok)
	re.Equal(Item{ID: k, Name: "item-5"}, item)

	// The old neighborhood no longer finds it, the new one does.
	re.NotContains(searchIDs(rt, NewRect(0, 0, 20, 20)), k)
	re.Equal([]int{k}, searchIDs(rt, NewRect(450, 450, 550, 550)))

	re.False(rt.UpdateByID(999, NewRect(0, 0, 1, 1)))
}
