package gpu

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/webgpu/wgpu"
)

const cacheSize = 16

// PipelineConfig is the cache key for a specialized render pipeline.
// Two frames asking for the same config share one pipeline.
type PipelineConfig interface {
	comparable

	// Specialize builds the render pipeline for this config.
	Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error)
}

type CachedPipeline struct {
	Pipeline   *wgpu.RenderPipeline
	bindGroups *lru.Cache[uint32, *wgpu.BindGroupLayout]
}

// GetBindGroupLayout caches the layouts derived from the pipeline so
// per frame bind group creation does not leak a layout each call.
func (pc *CachedPipeline) GetBindGroupLayout(idx uint32) *wgpu.BindGroupLayout {
	if layout, ok := pc.bindGroups.Get(idx); ok {
		return layout
	}

	layout := pc.Pipeline.GetBindGroupLayout(idx)
	pc.bindGroups.Add(idx, layout)

	return layout
}

type PipelineCache[C PipelineConfig] struct {
	device *wgpu.Device
	cache  *lru.Cache[C, CachedPipeline]
}

func NewPipelineCache[C PipelineConfig](ctx *Context) *PipelineCache[C] {
	cache, _ := lru.NewWithEvict[C, CachedPipeline](cacheSize, evictPipeline[C])

	return &PipelineCache[C]{
		device: ctx.Device,
		cache:  cache,
	}
}

func (p *PipelineCache[C]) Get(conf C) (CachedPipeline, error) {
	if cached, ok := p.cache.Get(conf); ok {
		return cached, nil
	}

	pipeline, err := conf.Specialize(p.device)
	if err != nil {
		return CachedPipeline{}, fmt.Errorf("build pipeline: %w", err)
	}

	layouts, _ := lru.NewWithEvict[uint32, *wgpu.BindGroupLayout](cacheSize, evictBindGroupLayout)

	pc := CachedPipeline{Pipeline: pipeline, bindGroups: layouts}
	p.cache.Add(conf, pc)

	return pc, nil
}

func evictPipeline[C any](_ C, pipe CachedPipeline) {
	pipe.bindGroups.Purge()
	pipe.Pipeline.Release()
}

func evictBindGroupLayout(_ uint32, layout *wgpu.BindGroupLayout) {
	layout.Release()
}

var samplers, _ = lru.NewWithEvict[wgpu.SamplerDescriptor, *wgpu.Sampler](cacheSize, evictSampler)

func evictSampler(_ wgpu.SamplerDescriptor, sampler *wgpu.Sampler) {
	sampler.Release()
}

// CachedSampler returns a sampler for the description, sharing one
// sampler between all textures asking for the same parameters. The
// returned sampler must not be released by the caller.
func CachedSampler(dev *wgpu.Device, desc wgpu.SamplerDescriptor) *wgpu.Sampler {
	if sampler, ok := samplers.Get(desc); ok {
		return sampler
	}

	sampler := dev.CreateSampler(&desc)
	samplers.Add(desc, sampler)

	return sampler
}
