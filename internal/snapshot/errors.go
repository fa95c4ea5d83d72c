package snapshot

import "errors"

// ErrUnsupportedFormat is returned when a document is not a snapshot this
// version can read: malformed JSON, a missing formatVersion, or a version
// other than [models.CurrentSnapshotFormat].
var ErrUnsupportedFormat = errors.New("unsupported snapshot format")
