// Package hypercube implements Nelson's hypercube matrix multiplication:
// a group of 2^d ranks cooperatively computes C += A×B by exchanging
// operands with neighbours along hypercube dimensions and splitting the
// group in half at every recursion level.
//
// Every rank holds complete n×n copies of A and B and its own accumulator C.
// Multiply is called once per rank (SPMD) with that rank's comm.Group
// handle. At each level a rank
//
//   - swaps A with its horizontal neighbour (rank bit 0 flipped) and B with
//     its vertical neighbour (bit 1 flipped);
//   - in a group of four, combines original and exchanged operands in
//     closed form: the diagonal ranks 0 and 3 add A×B' and A'×B, ranks 1
//     and 2 add A×B and A'×B';
//   - otherwise splits the group on the top rank bit and recurses twice in
//     its half, once into C and once into a temporary that is added to C.
//
// The two products formed at a level cover complementary halves of the
// contraction index range, so every rank's C ends up holding exactly A×B
// regardless of the group size. Results agree with the sequential kernel
// within floating-point tolerance; a single rank reproduces it bit for bit.
//
// Group sizes must be powers of two. Multiply does not check this; callers
// validate with PowerOfTwo before launching the ranks.
package hypercube
