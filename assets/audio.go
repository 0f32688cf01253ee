package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of sound effects from a directory
type AudioLoader struct {
	sfxCache   map[string][]byte // Cache decoded audio bytes for SFX
	context    *audio.Context
	sampleRate int
	fsys       fs.FS
}

// NewAudioLoader creates a loader reading sound files from fsys
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return newAudioLoader(ctx, ctx.SampleRate(), fsys)
}

func newAudioLoader(ctx *audio.Context, sampleRate int, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		sfxCache:   make(map[string][]byte),
		context:    ctx,
		sampleRate: sampleRate,
		fsys:       fsys,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}

	decoded, err := l.decode(path)
	if err != nil {
		return err
	}
	l.sfxCache[path] = decoded
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
// SFX are cached as decoded bytes for instant playback.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[path]))
}

// Cached reports whether path has been decoded.
func (l *AudioLoader) Cached(path string) bool {
	_, ok := l.sfxCache[path]
	return ok
}

func (l *AudioLoader) decode(path string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		stream = s

	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		stream = s

	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}
