package interfaces

import "errors"

// ErrDuplicateKey is returned by repositories when a write violates a
// uniqueness constraint ((gig_id, applicant_id) or external_session_id).
var ErrDuplicateKey = errors.New("duplicate key")
