package prototype

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/zeusync/bestiary/internal/core/observability/log"
)

// Registry stores named prototypes and produces customized clones of them.
// It is safe for concurrent use; clones it returns are owned by the caller.
type Registry struct {
	mu         sync.RWMutex
	prototypes map[string]Prototype
	log        log.Log
}

// NewRegistry returns an empty registry. A nil logger discards output.
func NewRegistry(logger log.Log) *Registry {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Registry{
		prototypes: make(map[string]Prototype),
		log:        logger.With(log.String("component", "registry")),
	}
}

// Register stores p under name, replacing any prototype already there.
func (r *Registry) Register(name string, p Prototype) {
	r.mu.Lock()
	prev, replaced := r.prototypes[name]
	r.prototypes[name] = p
	r.mu.Unlock()

	fields := []log.Field{
		log.String("name", name),
		log.Uint64("fingerprint", Fingerprint(p)),
	}
	if replaced {
		fields = append(fields, log.Uint64("previous_fingerprint", Fingerprint(prev)))
		r.log.Debug("prototype replaced", fields...)
		return
	}
	r.log.Debug("prototype registered", fields...)
}

// Unregister removes name and reports whether it was present.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	_, ok := r.prototypes[name]
	delete(r.prototypes, name)
	r.mu.Unlock()
	return ok
}

// Create clones the prototype registered under name and applies overrides in
// key order. Any failure is returned as *CreationError and no monster is
// returned with it.
func (r *Registry) Create(name string, overrides Overrides) (Prototype, error) {
	return r.spawn(name, overrides, nil)
}

// CreateAs is Create for callers that know which variant name refers to.
func CreateAs[T Prototype](r *Registry, name string, overrides Overrides) (T, error) {
	var zero T
	p, err := r.spawn(name, overrides, func(p Prototype) error {
		if _, ok := p.(T); !ok {
			return fmt.Errorf("%w: %s is %T, want %T", ErrKindMismatch, name, p, zero)
		}
		return nil
	})
	if err != nil {
		return zero, err
	}
	return p.(T), nil
}

// spawn runs create and accept, then logs the outcome. Only monsters handed
// back to the caller are logged as created.
func (r *Registry) spawn(name string, overrides Overrides, accept func(Prototype) error) (Prototype, error) {
	monster, err := r.create(name, overrides)
	if err == nil && accept != nil {
		err = accept(monster)
	}
	if err != nil {
		r.log.Debug("monster creation failed", log.String("name", name), log.Error(err))
		return nil, &CreationError{Name: name, Err: err}
	}
	r.log.Debug("monster created",
		log.String("name", name),
		log.String("spawn_id", uuid.NewString()),
		log.Int("overrides", len(overrides)),
	)
	return monster, nil
}

// create turns panics from Clone or Set into ErrCloneFailed.
func (r *Registry) create(name string, overrides Overrides) (monster Prototype, err error) {
	r.mu.RLock()
	proto, ok := r.prototypes[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPrototypeNotFound, name)
	}
	if isNil(proto) {
		return nil, ErrNilPrototype
	}

	defer func() {
		if rec := recover(); rec != nil {
			monster, err = nil, fmt.Errorf("%w: %v", ErrCloneFailed, rec)
		}
	}()

	monster = proto.Clone()
	if isNil(monster) {
		return nil, fmt.Errorf("%w: %s returned nil", ErrCloneFailed, proto.Kind())
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err = monster.Set(k, overrides[k]); err != nil {
			return nil, err
		}
	}
	return monster, nil
}

// isNil also catches interfaces holding a nil pointer, map or slice.
func isNil(p Prototype) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.prototypes))
	for name := range r.prototypes {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// KindOf reports the kind of the prototype registered under name.
func (r *Registry) KindOf(name string) (string, bool) {
	r.mu.RLock()
	p, ok := r.prototypes[name]
	r.mu.RUnlock()
	if !ok || p == nil {
		return "", false
	}
	return p.Kind(), true
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.prototypes)
}
