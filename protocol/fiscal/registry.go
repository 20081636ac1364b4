// Copyright 2024 OFD Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fiscal

import (
	"sync"

	"github.com/ofd-go/ofd/ofderr"
)

// parentSet is a small set of parent tags. A nil/empty set means "no
// parent constraint" (the field may appear under any parent, or at
// the root).
type parentSet map[uint16]struct{}

func parents(tags ...uint16) parentSet {
	if len(tags) == 0 {
		return nil
	}
	s := make(parentSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

func (p parentSet) has(tag uint16) bool {
	if p == nil {
		return false
	}
	_, ok := p[tag]
	return ok
}

// Entry is one row of the tag registry: a tag number's kind, names,
// size and cardinality constraints, and (for ambiguous names) the set
// of parent tags it is valid under.
type Entry struct {
	Tag         uint16
	Kind        ScalarKind
	Name        string
	Description string
	MaxLen      uint32
	Cardinality Cardinality
	Parents     parentSet // nil: unconstrained / root-eligible
}

func (e Entry) codec() scalarCodec {
	switch e.Kind {
	case KindByte:
		return byteCodec{}
	case KindU32:
		return u32Codec{}
	case KindUnixTime:
		return unixTimeCodec{}
	case KindVLN:
		return vlnCodec{max: e.MaxLen}
	case KindFVLN:
		return fvlnCodec{max: e.MaxLen}
	case KindString:
		return stringCodec{max: e.MaxLen}
	case KindByteArray:
		return byteArrayCodec{max: e.MaxLen}
	default:
		return nil
	}
}

// Registry is the static, read-only catalog of every known tag. It is
// built once (see DefaultRegistry) and is safe for unsynchronized
// concurrent reads thereafter — it is never mutated after
// construction.
type Registry struct {
	byTag  map[uint16]Entry
	byDesc map[string]Entry
	byName map[string][]Entry // in the order the entries were supplied
}

// NewRegistry builds a Registry from a flat list of entries. It panics
// on a duplicate tag or duplicate description, since those indicate a
// corrupt table rather than a runtime condition callers can recover
// from: the registry is built once at startup and trusted thereafter.
func NewRegistry(entries []Entry) *Registry {
	r := &Registry{
		byTag:  make(map[uint16]Entry, len(entries)),
		byDesc: make(map[string]Entry, len(entries)),
		byName: make(map[string][]Entry, len(entries)),
	}
	for _, e := range entries {
		if _, dup := r.byTag[e.Tag]; dup {
			panic("fiscal: duplicate tag in registry: " + itoa(e.Tag))
		}
		if _, dup := r.byDesc[e.Description]; dup {
			panic("fiscal: duplicate description in registry: " + e.Description)
		}
		r.byTag[e.Tag] = e
		r.byDesc[e.Description] = e
		r.byName[e.Name] = append(r.byName[e.Name], e)
	}
	return r
}

func itoa(tag uint16) string {
	const digits = "0123456789"
	if tag == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for tag > 0 {
		i--
		buf[i] = digits[tag%10]
		tag /= 10
	}
	return string(buf[i:])
}

// ByTag looks up an entry by its wire tag number.
func (r *Registry) ByTag(tag uint16) (Entry, bool) {
	e, ok := r.byTag[tag]
	return e, ok
}

// ByDescription looks up an entry by its (unique) human description.
func (r *Registry) ByDescription(desc string) (Entry, bool) {
	e, ok := r.byDesc[desc]
	return e, ok
}

// Resolve picks the entry for name under the given parent tag: prefer
// a candidate whose Parents set contains parentTag; if none matches
// and parentTag is nil (root), fall back to the single candidate with
// no parent constraint; otherwise fail with AmbiguousName (or
// UnknownTag if the name isn't registered at all).
func (r *Registry) Resolve(name string, parentTag *uint16) (Entry, error) {
	candidates := r.byName[name]
	if len(candidates) == 0 {
		return Entry{}, ofderr.New(ofderr.UnknownTag, "unknown field name %q", name)
	}
	if len(candidates) == 1 && candidates[0].Parents == nil {
		return candidates[0], nil
	}
	if parentTag != nil {
		for _, c := range candidates {
			if c.Parents.has(*parentTag) {
				return c, nil
			}
		}
	}
	if parentTag == nil {
		var unconstrained *Entry
		count := 0
		for i := range candidates {
			if candidates[i].Parents == nil {
				unconstrained = &candidates[i]
				count++
			}
		}
		if count == 1 {
			return *unconstrained, nil
		}
	}
	return Entry{}, ofderr.New(ofderr.AmbiguousName, "name %q is ambiguous under parent %s", name, parentTagString(parentTag))
}

func parentTagString(parentTag *uint16) string {
	if parentTag == nil {
		return "<root>"
	}
	return itoa(*parentTag)
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the process-wide tag registry, built once
// on first use from the table in registry_data.go and thereafter
// read-only.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(registryEntries)
	})
	return defaultRegistry
}
