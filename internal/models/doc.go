// Package models defines the domain records for the Gurukul coaching-center
// core and the root Document that aggregates them.
//
// # State model
//
// All application state lives in a single Document: users, batches, homework,
// homework completions, announcements, attendance records, demand bills and
// the payment settings singleton. The Document is persisted as one JSON blob
// and mutated only through the store package, which treats each mutation as a
// pure transform over a cloned copy.
//
// # Design principles
//
//  1. **Whole-document state**: there is exactly one writer; granular
//     per-entity storage would buy nothing here.
//  2. **References by ID**: entities point at each other with ID strings,
//     never pointers, so the Document stays trivially serialisable.
//  3. **Dangling references are tolerated**: deleting a batch or user leaves
//     dependent rows behind; projections render the missing side as
//     "unknown". This mirrors the documented behaviour of the product.
//  4. **The session is not state**: the logged-in user is held by the auth
//     layer and is never part of the Document, persisted or otherwise.
package models
