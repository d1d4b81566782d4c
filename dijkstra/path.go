package dijkstra

import "fmt"

// PathTo rebuilds the shortest path from r.Source to v as a list of 1-based
// vertices, source first. PathTo(r.Source) returns [Source].
//
// Errors:
//   - ErrVertexOutOfRange if v is not a vertex of the solved graph.
//   - ErrPathNotRecorded  if the Result was computed without WithReturnPath.
//   - ErrUnreachable      if v has no path from the source.
//
// Complexity: O(len(path))
func (r Result) PathTo(v int) ([]int, error) {
	if v < 1 || v > len(r.Dist) {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}
	if r.Prev == nil {
		return nil, ErrPathNotRecorded
	}
	if r.Dist[v-1] == Unreachable {
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, v, r.Source)
	}

	var rev []int
	for cur := v; cur != 0; cur = r.Prev[cur-1] {
		rev = append(rev, cur)
		if cur == r.Source {
			break
		}
	}

	path := make([]int, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}

	return path, nil
}
