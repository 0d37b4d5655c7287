// Package ntil retries an asynchronous operation with exponential backoff
// until a caller-supplied predicate accepts its result or the attempt
// budget is exhausted.
//
// A handler is built either directly with [New] or through the chained
// [Builder]; each call to the handler runs one independent attempt
// sequence, reporting its outcome through the optional success and failure
// callbacks.
package ntil
