package confloader

import (
	"errors"

	"github.com/knadh/koanf/maps"
)

// koanfMapProvider adapts a flat key map to the koanf.Provider interface.
type koanfMapProvider struct {
	data map[string]any
}

func mapProvider(data map[string]any) *koanfMapProvider {
	return &koanfMapProvider{data: data}
}

// ReadBytes is not supported for map providers.
func (p *koanfMapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("map provider does not support ReadBytes")
}

// Read returns the map unflattened on the "." delimiter.
func (p *koanfMapProvider) Read() (map[string]any, error) {
	return maps.Unflatten(p.data, "."), nil
}
