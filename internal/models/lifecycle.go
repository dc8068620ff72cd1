package models

// Lifecycle is the existence state shared by every catalog entity.
// Deleted rows are kept for booking history.
type Lifecycle string

const (
	LifecycleActive  Lifecycle = "active"
	LifecycleDeleted Lifecycle = "deleted"
)

func (l Lifecycle) IsDeleted() bool {
	return l == LifecycleDeleted
}
