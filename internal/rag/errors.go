package rag

import "errors"

// ErrNoDocuments means a grounded question arrived for a session that never
// indexed a document. Defined empty-result case: the handler prompts the user
// to upload first, and the oracle is never called.
var ErrNoDocuments = errors.New("no documents indexed for this session")
