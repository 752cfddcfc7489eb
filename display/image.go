// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
)

// Image is a shareable image: a snapshot handle over one context's
// texture that sibling contexts, or other client APIs entirely, can bind
// as their own texture source. The image records the backend (global)
// name of the texture it aliases, so a sibling binds by registering a
// fresh local name and rebinding it to GlobalTextureName (see
// share.Group.ReplaceGlobalName).
type Image struct {
	id        ImageHandle
	width     int
	height    int
	format    gputypes.TextureFormat
	globalTex uint32

	texture gpucontext.Texture
	pix     []byte
}

// NewImage creates a shareable image aliasing the backend texture name
// globalTex. The image has no handle until registered with
// Display.AddImage.
func NewImage(width, height int, format gputypes.TextureFormat, globalTex uint32) *Image {
	return &Image{
		width:     width,
		height:    height,
		format:    format,
		globalTex: globalTex,
	}
}

// ID returns the image handle assigned by Display.AddImage, or 0 if the
// image was never registered.
func (im *Image) ID() ImageHandle { return im.id }

// Width returns the image width in pixels.
func (im *Image) Width() int { return im.width }

// Height returns the image height in pixels.
func (im *Image) Height() int { return im.height }

// Format returns the backend texture format of the image source.
func (im *Image) Format() gputypes.TextureFormat { return im.format }

// GlobalTextureName returns the backend name of the texture this image
// aliases.
func (im *Image) GlobalTextureName() uint32 { return im.globalTex }

// SetTexture attaches the backend texture object realizing this image,
// when the provider exposes one.
func (im *Image) SetTexture(t gpucontext.Texture) { im.texture = t }

// Texture returns the attached backend texture, or nil.
func (im *Image) Texture() gpucontext.Texture { return im.texture }

// SetPixels captures src as the image's RGBA pixel content, converting
// and, if the bounds differ from the image dimensions, rescaling.
// Providers without texture sharing fall back to this copy path.
func (im *Image) SetPixels(src image.Image) {
	dst := image.NewRGBA(image.Rect(0, 0, im.width, im.height))
	b := src.Bounds()
	if b.Dx() == im.width && b.Dy() == im.height {
		xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	}
	im.pix = dst.Pix
}

// Pixels returns the captured RGBA pixels, or nil if SetPixels was never
// called. The slice is owned by the image.
func (im *Image) Pixels() []byte { return im.pix }
