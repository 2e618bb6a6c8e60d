// Package ldag models a leveled binary expression tree (an "LDAG", although no
// node sharing ever occurs) and the analyses run over it.
//
// # Model
//
// Every Node is either an operator application or an operand reference. The
// two variants are carried by Kind, a small tagged value, so there is no
// sentinel symbol that marks "not an operator". A node owns at most one left
// and one right child; Attach maintains a parent back-link so each node has a
// single owner and the structure stays acyclic.
//
// Each node carries two integers:
//   - Level: nominal depth chosen by whoever built the tree. It is never
//     derived or checked against the actual shape.
//   - QHPosition: the horizontal scheduling offset written by AssignPositions.
//     It is 0 until positions have been assigned.
//
// # Analyses
//
//   - InOrder, PreOrder and LevelOrder walk a tree lazily. The sequences are
//     restartable and never modify the tree.
//   - AssignPositions is the only writer: left children inherit the parent's
//     position, right children advance it by one.
//   - CountNodes and Distance are breadth-first queries with growable frontiers.
//     Distance keys its visited set by node identity because positions repeat
//     along left branches.
//
// Nothing in this package is safe for concurrent mutation. A tree is expected
// to be owned by a single caller at a time.
package ldag
