package source

import (
	"context"
	"sort"
)

// Registry maps disk names to backends. The empty disk name is the default disk.
type Registry struct {
	defaultBackend Backend
	disks          map[string]Backend
}

var _ Repository = (*Registry)(nil)

func NewRegistry(defaultBackend Backend, disks map[string]Backend) *Registry {
	registered := make(map[string]Backend, len(disks))
	for name, backend := range disks {
		if name != "" {
			registered[name] = backend
		}
	}

	return &Registry{defaultBackend, registered}
}

func (r *Registry) Fetch(ctx context.Context, disk, imagePath string) ([]byte, error) {
	backend, err := r.backend(disk)
	if err != nil {
		return nil, err
	}

	return backend.Read(ctx, imagePath)
}

// Disks returns the sorted names of registered disks.
func (r *Registry) Disks() []string {
	names := make([]string, 0, len(r.disks))
	for name := range r.disks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) backend(disk string) (Backend, error) {
	if disk == "" {
		return r.defaultBackend, nil
	}

	backend, found := r.disks[disk]
	if !found {
		return nil, ErrUnknownDisk
	}

	return backend, nil
}
