// Package record implements the record reconciliation engine, the core of
// the collection server.
//
// Mobile clients work offline and resend the entire current state of an
// observation on every save: metadata, the full image set, and all survey
// answers. The engine converges stored state with each submission instead of
// replacing it:
//
//   - The record row is found by (owner, uuid) and updated in place; a
//     unique index plus a per-key lock close the double-submit race.
//   - Image rows are diffed against the upload by the natural key
//     (uuid, section, file name). Only genuinely new files are stored and
//     inserted; rows missing from the upload are deleted one by one, so an
//     unchanged image keeps its storage key and is never re-uploaded.
//   - Survey answers are upserted per (record, question). List answers are
//     stored as JSON array text; the answer timestamp is refreshed on every
//     submission.
//
// The whole call runs inside one database transaction. Blob writes are not
// part of that transaction: a failure after a blob was stored leaves an
// orphaned object, which is accepted rather than attempting a two-phase
// commit.
package record
