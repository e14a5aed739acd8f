// Package handler is the first entry point after the router.
//
// Each content handler decodes one request body encoding, optionally
// runs it through the matching validation rule set, and responds with
// a normalized JSON description of what was received. Handlers are
// stateless and isolated: no decode state is shared across requests
// or between content types.
package handler
