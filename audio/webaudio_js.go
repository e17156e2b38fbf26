//go:build js
// +build js

package audio

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
)

// WebAudioBackend plays effects through the browser's Web Audio API.
type WebAudioBackend struct {
	ctx        *js.Object
	masterGain *js.Object
}

// NewWebAudioBackend creates an AudioContext. It must be called from a user
// gesture handler in browsers that gate autoplay.
func NewWebAudioBackend() (b *WebAudioBackend, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrNotReady, r)
		}
	}()

	audioCtx := js.Global.Get("AudioContext")
	if audioCtx == nil || audioCtx == js.Undefined {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	if audioCtx == nil || audioCtx == js.Undefined {
		return nil, ErrNotReady
	}

	b = &WebAudioBackend{ctx: audioCtx.New()}
	b.masterGain = b.ctx.Call("createGain")
	b.masterGain.Call("connect", b.ctx.Get("destination"))
	b.masterGain.Get("gain").Set("value", 1)
	b.resume()
	return b, nil
}

// resume wakes a suspended context.
func (b *WebAudioBackend) resume() {
	if b.ctx.Get("state").String() == "suspended" {
		b.ctx.Call("resume")
	}
}

// Play implements Backend.
func (b *WebAudioBackend) Play(samples []float32, sampleRate int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("webaudio: %v", r)
		}
	}()
	if len(samples) == 0 {
		return nil
	}

	b.resume()

	buffer := b.ctx.Call("createBuffer", 1, len(samples), sampleRate)
	buffer.Call("getChannelData", 0).Call("set", samples)

	source := b.ctx.Call("createBufferSource")
	source.Set("buffer", buffer)
	source.Call("connect", b.masterGain)
	source.Call("start", 0)
	return nil
}
