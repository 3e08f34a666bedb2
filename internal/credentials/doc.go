// Package credentials resolves dynamic credentials from node parameters and
// applies them to outbound request descriptors.
//
// Dynamic credentials are opt-in per node: a boolean flag parameter enables
// them, a discriminator parameter selects the authentication variant, and the
// variant-specific fields are read from the same per-item parameter snapshot.
// Resolution is keyed solely by item index; items in a batch resolve
// independently with no shared state.
//
// Two call-site styles are supported. The direct Resolver API surfaces
// resolution failures to the caller. WithFallback wraps the host's static
// credential lookup so that any dynamic failure silently falls back to the
// stored credential instead of aborting the request.
package credentials
