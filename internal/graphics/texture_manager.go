package graphics

import (
	"sync"
)

var (
	textureCache = make(map[string]uint32)
	cacheMutex   sync.Mutex
)

// GetTexture returns the texture for path, loading it on first use.
// Callers must be on the GL thread.
func GetTexture(path string) (uint32, error) {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	if tex, ok := textureCache[path]; ok {
		return tex, nil
	}

	tex, _, _, err := LoadTexture(path)
	if err != nil {
		return 0, err
	}

	textureCache[path] = tex
	return tex, nil
}

// ReleaseTextures deletes every cached texture
func ReleaseTextures() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	for path, tex := range textureCache {
		DeleteTexture(tex)
		delete(textureCache, path)
	}
}
