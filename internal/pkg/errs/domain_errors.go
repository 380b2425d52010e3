package errs

import "errors"

// Sentinel errors shared by the use case and handler layers
var (
	// Mutation errors
	ErrMutationPending = errors.New("mutation already in progress")

	// Remote slot service errors
	ErrSlotServiceRequest = errors.New("slot service request failed")
	ErrSlotServiceNetwork = errors.New("slot service unreachable")

	// Flash cookie errors
	ErrFlashTooLarge = errors.New("flash exceeds cookie size limit")
)
