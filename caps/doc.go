// Package caps defines the capability predicates that gate participation
// in spacekit's algebraic structures.
//
// 🚀 What is a capability predicate?
//
//	A structural check — not a mathematical one — answering a single
//	question: may this type, or this operation implementation, occupy a
//	given algebraic role? Three predicates exist:
//	  • Field    — may this scalar type parameterize a vector space?
//	  • Measure  — may this type carry distance/norm results?
//	  • Callable — is this operation implementation actually invocable?
//
// ✨ How checking splits between compile time and construction time:
//
//   - Field and Measure are generic constraints (type sets). Instantiating
//     an assembler with a type outside the set does not compile.
//   - Exact operation signatures (arity, argument types, return type) are
//     typed generic function slots in the assemblers; a mismatched
//     implementation does not compile either.
//   - The one thing Go cannot reject statically — a nil (or typed-nil)
//     function value arriving where an implementation is required — is
//     rejected by Verify exactly once, at structure construction. There is
//     no runtime path on which an invalid implementation reaches execution.
//
// What caps deliberately does NOT check: mathematical law. A Callable
// "distance" that is asymmetric, or a Field type whose division by zero is
// invoked, passes every predicate here. Repeatability (same inputs → same
// outputs, no side effects) is likewise a caller obligation the signature
// cannot carry.
//
// Errors:
//
//	ErrNotCallable - operation implementation is nil or not a function.
package caps
