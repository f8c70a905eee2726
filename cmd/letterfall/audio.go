package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

func (a *app) initAudio() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		a.audio = true
	}
	return err
}

// playClearSound beeps once per clear; deeper cascade levels pitch up.
func (a *app) playClearSound(depth int) {
	if !a.audio {
		return
	}
	freq := 440.0 * float64(depth)
	if freq > 1760 {
		freq = 1760
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(60*time.Millisecond), sine))
}
