// Package prototype holds monster prototypes and the registry that clones
// and customizes them on demand.
package prototype

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Prototype is anything the registry can hand out copies of.
//
// Clone must return a fully independent copy: owned slices, maps and
// pointers are copied, never aliased, so that mutating the copy leaves the
// receiver untouched.
type Prototype interface {
	Clone() Prototype
	Kind() string
	// Attributes lists the settable attributes in display order.
	Attributes() []Attribute
	// Set applies a single override. Unknown keys fail with
	// ErrUnknownAttribute, values of the wrong type with ErrInvalidAttribute.
	Set(key string, value any) error
}

// Attribute is one named field of a prototype.
type Attribute struct {
	Key   string
	Label string
	Value any
}

// Overrides maps attribute keys to the values applied after cloning.
type Overrides map[string]any

// Fingerprint hashes the kind and attribute values of p. Two prototypes with
// the same kind and values share a fingerprint. Nil prototypes, including
// typed nil pointers, hash to 0.
func Fingerprint(p Prototype) (sum uint64) {
	if p == nil {
		return 0
	}
	defer func() {
		if recover() != nil {
			sum = 0
		}
	}()
	d := xxhash.New()
	writeField(d, p.Kind())
	for _, a := range p.Attributes() {
		writeField(d, a.Key)
		writeField(d, fmt.Sprint(a.Value))
	}
	return d.Sum64()
}

// writeField length-prefixes s so no value can mimic a field boundary.
func writeField(d *xxhash.Digest, s string) {
	_, _ = fmt.Fprintf(d, "%d:", len(s))
	_, _ = d.WriteString(s)
}
