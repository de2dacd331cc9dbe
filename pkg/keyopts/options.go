package keyopts

import (
	"errors"

	com_keyopts "github.com/mr-shifu/rsa-lib/pkg/common/keyopts"
)

// OptionID is the option holding the label of a key.
const OptionID = "id"

type Options map[string]interface{}

var _ com_keyopts.Options = Options{}

func NewOptions() Options {
	return make(Options)
}

func (opts Options) Set(kVs ...interface{}) (com_keyopts.Options, error) {
	if len(kVs)%2 != 0 {
		return nil, errors.New("keyopts: invalid options")
	}

	for i := 0; i < len(kVs); i += 2 {
		key, ok := kVs[i].(string)
		if !ok {
			return nil, errors.New("keyopts: option name must be a string")
		}
		opts[key] = kVs[i+1]
	}

	return opts, nil
}

func (opts Options) Get(key string) (interface{}, bool) {
	val, ok := opts[key]
	return val, ok
}

// ID returns the key label held by opts.
func ID(opts com_keyopts.Options) (string, error) {
	if opts == nil {
		return "", ErrInvalidParamsKeyID
	}
	v, ok := opts.Get(OptionID)
	if !ok {
		return "", ErrInvalidParamsKeyID
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return "", ErrInvalidParamsKeyID
	}
	return id, nil
}
