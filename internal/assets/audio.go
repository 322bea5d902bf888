// internal/assets/audio.go
package assets

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const (
	sampleRate   = 44100
	beepDuration = 0.08
	beepVolume   = 0.3
)

// AudioPlayer проигрывает короткие звуки. Клипы декодируются заранее в PCM;
// отсутствующий файл заменяется синтезированным сигналом.
type AudioPlayer struct {
	ctx    *audio.Context
	clips  map[string][]byte
	logger *slog.Logger
	muted  bool
}

// NewAudioPlayer загружает клипы из assets/Audio (ogg, затем wav).
func NewAudioPlayer(assetsDir string, clips []string, logger *slog.Logger) *AudioPlayer {
	p := &AudioPlayer{
		ctx:    audio.NewContext(sampleRate),
		clips:  make(map[string][]byte, len(clips)),
		logger: logger,
	}
	dir := filepath.Join(assetsDir, "Audio")
	for _, clip := range clips {
		if _, ok := p.clips[clip]; ok {
			continue
		}
		pcm, err := decodeClip(dir, clip)
		if err != nil {
			logger.Debug("audio clip missing, using beep", "clip", clip, "err", err)
			pcm = beep(beepFrequency(clip), beepDuration)
		}
		p.clips[clip] = pcm
	}
	return p
}

// Play запускает клип и не ждёт его окончания.
func (p *AudioPlayer) Play(clip string) {
	if p.muted {
		return
	}
	pcm, ok := p.clips[clip]
	if !ok {
		p.logger.Debug("unknown audio clip", "clip", clip)
		return
	}
	p.ctx.NewPlayerFromBytes(pcm).Play()
}

// ToggleMute переключает звук и возвращает новое состояние.
func (p *AudioPlayer) ToggleMute() bool {
	p.muted = !p.muted
	return p.muted
}

func decodeClip(dir, clip string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(dir, clip+".ogg")); err == nil {
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s.ogg: %w", clip, err)
		}
		return io.ReadAll(stream)
	}
	data, err := os.ReadFile(filepath.Join(dir, clip+".wav"))
	if err != nil {
		return nil, fmt.Errorf("no audio file for %q: %w", clip, err)
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s.wav: %w", clip, err)
	}
	return io.ReadAll(stream)
}

// beepFrequency даёт каждому клипу свой тон, чтобы заглушки различались на слух.
func beepFrequency(clip string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(clip))
	return 220 + float64(h.Sum32()%660)
}

// beep синтезирует синусоиду в формате контекста: 16 бит, стерео, little-endian.
func beep(freq, durSec float64) []byte {
	n := int(sampleRate * durSec)
	pcm := make([]byte, n*4)
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * beepVolume * fade
		s := int16(v * math.MaxInt16)
		for ch := 0; ch < 2; ch++ {
			pcm[4*i+2*ch] = byte(s)
			pcm[4*i+2*ch+1] = byte(s >> 8)
		}
	}
	return pcm
}
