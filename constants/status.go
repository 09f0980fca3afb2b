package constants

// ValidationStatus is the terminal verdict of a pipeline run.
type ValidationStatus string

// Stable values (these exact strings are stored in drafts and read by reviewers).
const (
	StatusInit      ValidationStatus = "INIT"      // draft assembled, not yet validated
	StatusOK        ValidationStatus = "OK"        // item sum matched a total candidate
	StatusNoTotal   ValidationStatus = "NO_TOTAL"  // no total candidate was found
	StatusMismatch  ValidationStatus = "MISMATCH"  // single candidate outside tolerance
	StatusAmbiguous ValidationStatus = "AMBIGUOUS" // multiple candidates, none matched
	StatusError     ValidationStatus = "error"     // collaborator fault (OCR failed)
)

// Completeness-classifier verdicts. The completeness strategy classifies on
// required-field presence only and uses its own value set.
const (
	StatusSuccess        ValidationStatus = "success"
	StatusReviewRequired ValidationStatus = "review_required"
)

// IsLedgerReady reports whether a draft with this status may be mapped to a
// ledger payload and handed to persistence.
func (s ValidationStatus) IsLedgerReady() bool {
	return s == StatusOK || s == StatusSuccess
}
