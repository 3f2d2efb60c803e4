package repository

// Repository defines the uniform data access contract shared by every
// entity type. Missing rows are reported as nil/false results, never as
// errors; any error returned by an implementation is a storage failure.
type Repository[T any] interface {
	// GetAll returns every stored entity in insertion order.
	GetAll() ([]T, error)

	// GetByID returns the entity with the given id, or nil when absent.
	GetByID(id uint64) (*T, error)

	// Create persists a new entity, assigning its id and timestamps, and
	// returns the persisted value.
	Create(entity *T) (*T, error)

	// Update overwrites every mutable field of the stored entity with the
	// replacement's values and refreshes updated_at. Returns the reloaded
	// row, or nil when no entity with the given id exists.
	Update(id uint64, entity *T) (*T, error)

	// Delete removes the entity and reports whether a row was removed.
	Delete(id uint64) (bool, error)
}

// StorageError wraps a datastore failure with the operation that hit it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
