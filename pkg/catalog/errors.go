package catalog

// ErrNotFound is returned when the target of a read or delete does not exist.
type ErrNotFound struct {
	Path string
}

func (e ErrNotFound) Error() string {
	if e.Path == "" {
		return "conversation log not found"
	}

	return "conversation log not found: " + e.Path
}
