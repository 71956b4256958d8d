package models

import "time"

// PendingOpKind distinguishes the remote operations that can be queued for
// replay after a failed best-effort write.
type PendingOpKind string

const (
	// OpInsert replays a record insert.
	OpInsert PendingOpKind = "insert"

	// OpDelete replays a record delete.
	OpDelete PendingOpKind = "delete"
)

// PendingOp is a remote write that failed and was queued in the local
// write-ahead table. The reconcile job replays pending ops in creation
// order once the remote becomes reachable again.
type PendingOp struct {
	// OpID is the local auto-increment identifier, used for ordering.
	OpID int64 `json:"op_id"`

	// Kind selects the remote operation to replay.
	Kind PendingOpKind `json:"kind"`

	// RecordID is the reservoir record the operation targets.
	RecordID string `json:"record_id"`

	// Payload is the JSON-encoded record for OpInsert, empty for OpDelete.
	Payload []byte `json:"payload,omitempty"`

	// CreatedAt is when the remote write originally failed.
	CreatedAt time.Time `json:"created_at"`
}
