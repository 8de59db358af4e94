// Package kernel provides shared value objects used across the marketplace
// domain model: UUID identifiers, Money amounts, and user Roles.
//
// All value objects are immutable, validate on construction, and treat their
// zero value as invalid so that aggregates can detect improperly constructed
// inputs before any state change happens.
package kernel
