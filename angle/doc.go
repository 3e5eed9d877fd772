// Package angle decomposes normalized amplitude vectors into binary trees
// of rotation angles for quantum state preparation.
//
// A vector of length 2^n is split recursively into halves. Each tree node
// stores one Y-rotation angle derived from the L2 norms of its two child
// blocks and, for complex input, one Z-rotation angle derived from the mean
// phases of the child blocks. Subtrees whose aggregate L2 contribution fits
// into a shared epsilon budget are pruned and emit no gates.
//
// Nodes are addressed by heap index: the root is 1 and node k has children
// 2k and 2k+1. Index i of the input vector corresponds to the n-bit binary
// expansion of i with qubit 0 as the most significant bit.
package angle
