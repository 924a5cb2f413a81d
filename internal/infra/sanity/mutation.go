package sanity

// Mutation is one entry in a mutation batch. Exactly one field is set.
type Mutation struct {
	Create any    `json:"create,omitempty"`
	Patch  *Patch `json:"patch,omitempty"`
}

// Patch sets fields on an existing document in place.
type Patch struct {
	ID  string         `json:"id"`
	Set map[string]any `json:"set,omitempty"`
}

type MutateResult struct {
	TransactionID string           `json:"transactionId"`
	Results       []MutationResult `json:"results"`
}

type MutationResult struct {
	ID        string `json:"id"`
	Operation string `json:"operation"`
}

// Ref builds a document reference field.
func Ref(id string) map[string]any {
	return map[string]any{"_type": "reference", "_ref": id}
}
