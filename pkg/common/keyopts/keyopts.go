package keyopts

type KeyData struct {
	ID  string
	SKI string
}

type Options interface {
	Set(kVs ...interface{}) (Options, error)
	Get(key string) (interface{}, bool)
}

// KeyOpts maps key labels (the "id" option) to key identifiers (SKI).
type KeyOpts interface {
	// Import links the key identified by ski to the label found in opts.
	Import(ski string, opts Options) error

	// Get returns the key metadata linked to the label found in opts.
	Get(opts Options) (*KeyData, error)

	// GetAll returns the metadata of every linked key.
	GetAll() []*KeyData

	// Delete removes the label found in opts.
	Delete(opts Options) error
}
