// Package responder provides simulated response generators.
//
// Template produces the single canned answer that echoes the query.
// Catalogue picks one of several longer canned analyses by keyword.
// Neither reads document content; both cite the first documents of the
// registry snapshot they are given.
package responder
