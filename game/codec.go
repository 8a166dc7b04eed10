package game

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Serializable states produce a tag-free snapshot from which an equivalent
// state can be rebuilt.
type Serializable[P any] interface {
	Serialize() P
}

// Encode turns a snapshot into the payload sent to out-of-process workers.
func Encode[P any](snapshot P) ([]byte, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

func Decode[P any](data []byte) (P, error) {
	var snapshot P
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return snapshot, fmt.Errorf("%w: %v", ErrMalformedNotation, err)
	}
	return snapshot, nil
}
