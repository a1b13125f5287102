// Package catalog holds the read-mostly menu catalog: dinners with their
// course components and style exclusions, serving styles with surcharges,
// and standalone menu items.
//
// The catalog is loaded from persistence into a process-wide Cache once at
// startup and only replaced by an explicit reload; conversation logic reads
// immutable snapshots and never mutates catalog entries.
package catalog
