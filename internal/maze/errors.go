package maze

import "errors"

var (
	// ErrMissingMarker indicates a layout without exactly one 'S' and one 'G'.
	ErrMissingMarker = errors.New("maze: layout must contain exactly one start and one goal marker")
	// ErrBadEndpoint indicates a start or goal on a wall or out of bounds.
	ErrBadEndpoint = errors.New("maze: endpoint must be on a passable cell")
	// ErrNotFound indicates a maze ID that is neither bundled nor on disk.
	ErrNotFound = errors.New("maze: not found")
)
