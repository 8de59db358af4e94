// Package customorder provides the domain model of the custom order broker:
// manager-initiated proposals that resolve from pending to exactly one of
// accepted or rejected, and on acceptance materialize into a binding order
// under the lifecycle engine with the negotiated price and delivery terms
// carried over.
package customorder
