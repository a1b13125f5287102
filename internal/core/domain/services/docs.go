// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the ordering conversation. It implements
// complex behavior that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - Matcher: tiered bilingual resolution of spoken names against the catalog
//   - AliasTable / Phrasebook: the YAML-embedded language data behind matching
//     and phrase heuristics
//   - Timeparse: Korean relative date and time-of-day parsing for delivery slots
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
