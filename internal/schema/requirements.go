package schema

// CredentialRequirement declares a node's dependency on a stored credential
// type.
type CredentialRequirement struct {
	// Name is the credential type name in the host's credential store.
	Name string `json:"name"`
	// Required indicates the node cannot run without this credential.
	Required bool `json:"required,omitempty"`
}

// MarkCredentialsOptional returns a copy of the requirements with every entry
// marked optional. Nodes that offer dynamic credentials can run without a
// stored credential, so their declared static requirements must not block
// execution. The input slice is not modified.
func MarkCredentialsOptional(reqs []CredentialRequirement) []CredentialRequirement {
	out := make([]CredentialRequirement, len(reqs))
	for i, req := range reqs {
		req.Required = false
		out[i] = req
	}
	return out
}
