package storage

import "github.com/cloudfit/interviewd/internal/scheduling"

// Snapshotter is the registry surface the store persists.
type Snapshotter interface {
	ExportState() scheduling.State
	ImportState(s scheduling.State) error
}
