// Package soundtrack plays an optional looping music file behind the dance
// scene. It never feeds anything back into the visuals.
package soundtrack

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/ambient-scenes/internal/logs"
)

var ErrUnsupportedAudio = errors.New("unsupported audio file type")

type decodeFunc func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

func decoderFor(path string) (decodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		return func(r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(r) }, nil
	case ".mp3":
		return mp3.Decode, nil
	case ".flac":
		return func(r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(r) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAudio, ext)
	}
}

// Player owns the speaker and at most one looping track.
type Player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	path     string

	paused   bool
	initDone bool
}

func NewPlayer() *Player {
	return &Player{}
}

// Play replaces the current track with the file at path, looping forever.
func (p *Player) Play(path string) error {
	decode, err := decoderFor(path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}

	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !p.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			return err
		}
		p.initDone = true
	case p.format.SampleRate != format.SampleRate:
		// re-init when the sample rate changes
		p.Stop()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			return err
		}
	default:
		p.Stop()
	}

	p.streamer = streamer
	p.format = format
	p.path = path
	p.paused = false
	p.ctrl = &beep.Ctrl{Streamer: beep.Loop(-1, streamer), Paused: false}

	logs.InfoLogger.Printf("playing %s (%v)", filepath.Base(path), p.Duration())
	speaker.Play(p.ctrl)
	return nil
}

// Stop clears the speaker and closes the current track.
func (p *Player) Stop() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	p.ctrl = nil
	p.path = ""
}

func (p *Player) TogglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

func (p *Player) Playing() bool {
	return p.ctrl != nil
}

func (p *Player) Paused() bool {
	return p.paused
}

func (p *Player) Duration() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// Position is the playback position inside the current loop pass.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

// Status is a short line for the on-screen help.
func (p *Player) Status() string {
	if !p.Playing() {
		return ""
	}
	state := "playing"
	if p.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s %s %s / %s", state, filepath.Base(p.path), formatDuration(p.Position()), formatDuration(p.Duration()))
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
