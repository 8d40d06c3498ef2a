// Package corecatalogs holds the tooling for the WWT core dataset catalogs.
//
// Overview
//
// The catalogs are flat directories of shard files: imagesets as WTML XML
// documents and places as multi-document YAML streams.  Shard membership is
// never edited by hand; cattool recomputes it from the full in-memory
// collection on every rewrite, so the files stay deterministic and
// diff-stable no matter how records arrived.
//
// The pieces:
//
// 1. wtml — the document model: typed ImageSet, Place, and Folder records
// and the XML round-trip for them.
//
// 2. xmlfmt — normalized XML text: a minimal element tree, an indented
// writer, and the reflow pass that puts every attribute on its own line in
// alphabetical order.
//
// 3. catalog — the two shard stores and the atomic directory swap that
// commits a rewrite.
//
// 4. cmd/cattool — the operator CLI: format-imagesets, format-places,
// ingest, prettify, and statistics subcommands.
package corecatalogs
