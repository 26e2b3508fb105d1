// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

// Renderer executes drawing commands to a render target.
//
// Renderers are stateless between Render calls, allowing the same renderer
// to be used with different targets and scenes.
//
// Thread Safety: Renderers are NOT thread-safe. Each renderer should be used
// from a single goroutine, or external synchronization must be used.
type Renderer interface {
	// Render draws the scene to the target in command order.
	// The scene is not modified and can be rendered again.
	Render(target RenderTarget, scene *Scene) error

	// Flush ensures all pending rendering operations are complete.
	Flush() error
}

// RendererCapabilities describes the features supported by a renderer.
type RendererCapabilities struct {
	// IsGPU indicates if this is a GPU-accelerated renderer.
	IsGPU bool

	// SupportsAntialiasing indicates if anti-aliased rendering is supported.
	SupportsAntialiasing bool

	// SupportsTextures indicates if pattern paints are supported.
	SupportsTextures bool

	// SupportsText indicates if label commands are drawn.
	SupportsText bool
}

// CapableRenderer is an optional interface for renderers that can
// report their capabilities.
type CapableRenderer interface {
	Renderer

	// Capabilities returns the renderer's capabilities.
	Capabilities() RendererCapabilities
}
