// Package dfs counts walks between two vertices of a core.Graph.
//
// What:
//
//   - CountPaths explores, depth first and in sorted neighbor order, every
//     walk from a start vertex that ends on first arrival at a target.
//     Supports:
//   - A revisit policy: WithRevisitable marks vertices that may repeat
//     without limit; WithRevisitBudget lets one other vertex per walk
//     take extra entries
//   - A per-walk hook (WithOnPath) for listing or early abort
//   - Cancellation via context.Context
//
// Why:
//   - Count routes through cave systems where large caves may be revisited
//     and small caves may not
//   - Enumerate reachable routes of bounded, policy-driven graphs
//
// Key Types:
//
//   - Option:  functional options for CountPaths
//   - Options: holds Context, Revisitable, RevisitBudget, OnPath
//
// Complexity:
//
//   - CountPaths: Time O(W·L) for W walks of length at most L, Memory O(V+E)
//
// Errors:
//
//   - ErrGraphNil              graph pointer is nil
//   - ErrStartVertexNotFound   start vertex ID not in graph
//   - ErrTargetVertexNotFound  target vertex ID not in graph
//   - ErrOptionViolation       negative RevisitBudget
//   - ErrUnboundedPaths        adjacent revisitable vertices
//   - context.Canceled         counting canceled via context
//   - hook errors              propagated from OnPath
package dfs
