package types

// Identity is the caller identity decoded from a bearer credential.
// Services receive it (or its ID) as an explicit argument; there is no
// ambient request state beyond the Fiber locals the middleware fills.
type Identity struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
