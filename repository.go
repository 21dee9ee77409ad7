package hotel

type Repository[T any] interface {
	// Save persists an aggregate
	Save(aggregate *T) error
	// Load retrieves an aggregate by its ID
	Load(id ID) (*T, error)
	// Delete removes an aggregate from the repository
	Delete(id ID) error
}
