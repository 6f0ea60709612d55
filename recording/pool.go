// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import "github.com/gogpu/mandel"

// ResourcePool stores the images referenced by DrawImage commands.
// Adding the same pixmap twice returns the same reference.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	images []*mandel.Pixmap
	index  map[*mandel.Pixmap]ImageRef
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		images: make([]*mandel.Pixmap, 0, 8),
		index:  make(map[*mandel.Pixmap]ImageRef),
	}
}

// AddImage adds pm to the pool and returns its reference.
func (p *ResourcePool) AddImage(pm *mandel.Pixmap) ImageRef {
	if ref, ok := p.index[pm]; ok {
		return ref
	}
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := ImageRef(uint32(len(p.images)))
	p.images = append(p.images, pm)
	p.index[pm] = ref
	return ref
}

// GetImage returns the image for ref, or nil if ref is out of range.
func (p *ResourcePool) GetImage(ref ImageRef) *mandel.Pixmap {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of distinct images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}
