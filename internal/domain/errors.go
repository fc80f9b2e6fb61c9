package domain

import "errors"

// Domain errors.
var (
	ErrStageNotFound       = errors.New("stage not found")
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrEmptyStageID        = errors.New("stage id cannot be empty")
	ErrDuplicateStage      = errors.New("duplicate stage id")
	ErrEmptyOpportunityID  = errors.New("opportunity id cannot be empty")
	ErrInvalidValue        = errors.New("opportunity value must be non-negative")
	ErrInvalidProbability  = errors.New("probability must be between 0 and 100")
	ErrMovePending         = errors.New("a move for this opportunity is already in flight")
	ErrDragInProgress      = errors.New("a drag is already in progress")
	ErrSameStage           = errors.New("opportunity is already in the target stage")
	ErrMoveRejected        = errors.New("move rejected by server")
	ErrNoService           = errors.New("no API base URL configured (run 'pipeboard config init' or pass --fixture)")
)
