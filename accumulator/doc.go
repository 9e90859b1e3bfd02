/*
Package accumulator implements a dynamic cryptographic accumulator over a
prime-order elliptic-curve group, following Camenisch, Kohlweiss and
Soriente, "An Accumulator Based on Bilinear Maps and Efficient Revocation
for Anonymous Credentials" (PKC 2009). An accumulator is a short, constant
size commitment to a set of elements that supports insertion and deletion in
time independent of the set's size, together with witnesses (proofs of
membership) that can be verified against the current commitment.

Two actors are modeled.

  - Accumulator holds a secret scalar c and mutates a commitment z on Add and
    Del. It can also Prove membership directly (it knows c) and Verify any
    witness against its current commitment.

  - Prover holds no secret. Given only the public update messages emitted by
    Accumulator.Add and Accumulator.Del, it can recompute a membership
    witness for any element it currently believes is accumulated, using the
    point sequence Q it has learned from those updates rather than c itself.

Unlike a signature scheme, the "public key" here (the commitment z) changes
every time the Accumulator revokes (deletes) an element; the two actors
exchange small update messages to stay in agreement about its current value.
The usual flow is: client -> Accumulator.Add(d) -> WitnessUpdate ->
Prover.Update(msg). Later: client -> Prover.Prove(d) -> Witness ->
Accumulator.Verify(w) or Accumulator.Del(w).

This package owns only the group-theoretic state machine; it is parameterized
by a curve.Group (elliptic-curve group and scalar field) and a
hashing.Hasher (hash-to-scalar), both supplied by the caller. It never
persists, signs, or transmits anything itself: those are ambient concerns
layered on top by a host, e.g. using the wire package to encode byte-level
copies of the record types defined here.
*/
package accumulator
