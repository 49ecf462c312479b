// Package errors provides structured error handling for GenshinTools.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("character not found")
//	err := errors.InvalidArgumentf("invalid rarity: %d", rarity)
//
// Adding metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character", name)
//
// Wrapping errors:
//
//	if err := repo.GetCharacter(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// Changing error semantics:
//
//	if err := client.Get(ctx, key); err != nil {
//	    if errors.Is(err, redis.Nil) {
//	        return errors.WrapWithCode(err, errors.CodeNotFound, "character not found")
//	    }
//	    return errors.Wrap(err, "storage error")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 90, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Client layer (genshinblue):
//   - Return Unavailable for transport failures
//   - Expose the typed FetchError for upstream HTTP status failures
//   - Never invent data on malformed payloads; skip and log instead
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant record names in metadata
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Wrap repository and client errors with business context
//
// Command layer:
//   - Extract user-friendly messages for terminal output
//   - Log internal errors for debugging
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Record not found
//   - InvalidArgument: Invalid input provided
//   - AlreadyExists: Record already exists
//   - Internal: Internal error
//   - Unavailable: Upstream or storage temporarily unavailable
//   - FailedPrecondition: Operation requirements not met
//   - Unimplemented: Feature not implemented
//   - Canceled: Operation canceled
//   - DeadlineExceeded: Operation timeout
package errors
