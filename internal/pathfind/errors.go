package pathfind

import "errors"

// ErrInvalidEndpoint indicates a start or goal coordinate that is out of
// bounds or blocked. It is a caller error, surfaced before any search work
// is done. An unreachable goal is NOT an error; see Result.Found.
var ErrInvalidEndpoint = errors.New("pathfind: endpoint out of bounds or blocked")
