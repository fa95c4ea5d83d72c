package models

// BackupState is a step of the backup or restore state machine.
type BackupState string

const (
	StateIdle BackupState = "idle"

	// backup path
	StateCollecting  BackupState = "collecting"
	StateSerializing BackupState = "serializing"
	StateEncrypting  BackupState = "encrypting"
	StateWriting     BackupState = "writing"

	// restore path
	StateReading       BackupState = "reading"
	StateDecrypting    BackupState = "decrypting"
	StateDeserializing BackupState = "deserializing"
	StateValidating    BackupState = "validating"
	StateMerging       BackupState = "merging"

	StateDone   BackupState = "done"
	StateFailed BackupState = "failed"
)

// Terminal reports whether no further transition follows s.
func (s BackupState) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// BackupOperation names the engine operation a state belongs to.
type BackupOperation string

const (
	OperationBackup  BackupOperation = "backup"
	OperationRestore BackupOperation = "restore"
)

// StateChange is published on every transition of an engine operation.
type StateChange struct {
	Operation BackupOperation
	From      BackupState
	To        BackupState
	// Err is set when To is StateFailed.
	Err error
}
