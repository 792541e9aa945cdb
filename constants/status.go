package constants

// RunStatus is the canonical status for rows in the processing audit log.
type RunStatus string

// Stable values (store these exact strings in the DB).
const (
	RunStatusRunning  RunStatus = "RUNNING"   // in progress
	RunStatusTextOK   RunStatus = "TEXT_OK"   // stage 1 completed (text acquired)
	RunStatusParsedOK RunStatus = "PARSED_OK" // stage 2 completed (fields extracted)
	RunStatusFailed   RunStatus = "FAILED"    // terminal failure
)
