package types

// LookupRequest is the body of POST /planets.
//
// ID is a pointer so that an absent or null id can be told apart from zero.
type LookupRequest struct {
	ID *int64 `json:"id"`
}
