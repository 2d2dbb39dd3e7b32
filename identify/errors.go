package identify

import "errors"

// ErrMissingIdentifiedEstimand is returned by
// IdentificationResult.IdentifiedEstimand when the result carries no
// "identified_estimand" value of the expected type — it should not arise
// from IdentifyEstimand itself, which always derives one on success.
var ErrMissingIdentifiedEstimand = errors.New("identify: result carries no identified estimand")
