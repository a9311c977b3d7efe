package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ed-w-lee/advent-of-code-2021/bfs"
)

// adjacency turns an undirected edge list into a neighbor function with
// neighbors in insertion order.
func adjacency(edges ...[2]string) func(string) []string {
	adj := make(map[string][]string)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		if e[0] != e[1] {
			adj[e[1]] = append(adj[e[1]], e[0])
		}
	}
	return func(v string) []string { return adj[v] }
}

// TestWalk_Errors verifies that invalid inputs and options are rejected.
func TestWalk_Errors(t *testing.T) {
	if _, err := bfs.Walk[string]("A", nil); !errors.Is(err, bfs.ErrNilNext) {
		t.Errorf("nil next: want ErrNilNext, got %v", err)
	}
	next := adjacency([2]string{"A", "B"})
	if _, err := bfs.Walk("A", next, bfs.WithMaxDepth[string](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestWalk_SingleVertex covers a start vertex with no neighbors.
func TestWalk_SingleVertex(t *testing.T) {
	res, err := bfs.Walk("A", adjacency())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
	if _, ok := res.Parent["A"]; ok {
		t.Errorf("start vertex must not have a parent")
	}
}

// TestWalk_CycleAndDepths covers a simple cycle and checks depths.
func TestWalk_CycleAndDepths(t *testing.T) {
	// A–B–C–D–A cycle plus a self-loop on C
	next := adjacency(
		[2]string{"A", "B"}, [2]string{"B", "C"},
		[2]string{"C", "D"}, [2]string{"D", "A"},
		[2]string{"C", "C"},
	)
	res, err := bfs.Walk("A", next)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	want := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	if !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
}

// TestWalk_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestWalk_MaxDepth(t *testing.T) {
	next := adjacency([2]string{"A", "B"}, [2]string{"B", "C"})
	cases := []struct {
		depth int
		want  []string
	}{
		{1, []string{"A", "B"}},
		{0, []string{"A", "B", "C"}},
		{10, []string{"A", "B", "C"}},
	}
	for _, tc := range cases {
		res, err := bfs.Walk("A", next, bfs.WithMaxDepth[string](tc.depth))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(res.Order, tc.want) {
			t.Errorf("MaxDepth=%d: got %v; want %v", tc.depth, res.Order, tc.want)
		}
	}
}

// TestWalk_Filter shows how filtering prunes certain edges.
func TestWalk_Filter(t *testing.T) {
	next := adjacency([2]string{"A", "B"}, [2]string{"B", "C"})
	res, _ := bfs.Walk("A", next,
		bfs.WithFilter(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Filter: got %v; want %v", res.Order, want)
	}
}

// TestWalk_OnVisitError checks that a hook error aborts and is wrapped.
func TestWalk_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	next := adjacency([2]string{"A", "B"}, [2]string{"B", "C"})
	res, err := bfs.Walk("A", next,
		bfs.WithOnVisit(func(v string, _ int) error {
			if v == "B" {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("partial Order = %v; want %v", res.Order, want)
	}
}

// TestWalk_Cancelled ensures a done context stops the walk.
func TestWalk_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Walk("A", adjacency([2]string{"A", "B"}), bfs.WithContext[string](ctx))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

// TestResult_PathTo reconstructs a shortest hop path.
func TestResult_PathTo(t *testing.T) {
	// Route1: A–B–C–K, Route2: A–E–K
	next := adjacency(
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "K"},
		[2]string{"A", "E"}, [2]string{"E", "K"},
	)
	res, err := bfs.Walk("A", next)
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo("K")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "E", "K"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(K) = %v; want %v", path, want)
	}
	if p, _ := res.PathTo("A"); !reflect.DeepEqual(p, []string{"A"}) {
		t.Errorf("PathTo(A) = %v; want [A]", p)
	}
	if _, err := res.PathTo("Z"); err == nil {
		t.Errorf("PathTo(Z) should fail for an unreached vertex")
	}
}
