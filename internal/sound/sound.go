//go:build !ci

package sound

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const sampleRate = beep.SampleRate(44100)

// 没有音效文件时使用的提示音：频率（Hz）和时长
var tones = map[Cue]struct {
	freq     float64
	duration time.Duration
}{
	CueDeal:     {523.25, 60 * time.Millisecond},
	CueYourTurn: {880, 120 * time.Millisecond},
	CueLandlord: {659.25, 200 * time.Millisecond},
	CuePlay:     {440, 50 * time.Millisecond},
	CuePass:     {220, 80 * time.Millisecond},
	CueBomb:     {110, 300 * time.Millisecond},
	CueRocket:   {98, 450 * time.Millisecond},
	CueWin:      {1046.5, 400 * time.Millisecond},
	CueLose:     {164.81, 400 * time.Millisecond},
}

var standardFormat = beep.Format{
	SampleRate:  sampleRate,
	NumChannels: 2,
	Precision:   4,
}

type SoundManager struct {
	buffers map[Cue]*beep.Buffer
	enabled bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		buffers: make(map[Cue]*beep.Buffer),
		enabled: false,
	}
}

// Init 初始化扬声器，加载 dir 下的音效文件，缺失的音效用提示音代替
func (sm *SoundManager) Init(dir string) error {
	// 较小的缓冲区延迟更低
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	sm.enabled = true

	if err := sm.loadSoundFiles(dir); err != nil {
		return err
	}
	for _, cue := range AllCues {
		if _, ok := sm.buffers[cue]; !ok {
			sm.buffers[cue] = synthesize(cue)
		}
	}
	return nil
}

// loadSoundFiles 加载目录下的 mp3/wav 文件，目录不存在时跳过
func (sm *SoundManager) loadSoundFiles(dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read sound directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".mp3" && ext != ".wav" {
			continue
		}
		// 单个文件失败不影响其他音效
		_ = sm.loadSoundFile(filepath.Join(dir, name), Cue(strings.TrimSuffix(name, filepath.Ext(name))), ext)
	}
	return nil
}

func (sm *SoundManager) loadSoundFile(path string, cue Cue, ext string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return err
	}
	defer func() { _ = streamer.Close() }()

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(standardFormat)
	buffer.Append(resampled)
	sm.buffers[cue] = buffer
	return nil
}

// synthesize 生成带淡出的正弦提示音
func synthesize(cue Cue) *beep.Buffer {
	tone := tones[cue]
	total := sampleRate.N(tone.duration)
	step := 2 * math.Pi * tone.freq / float64(sampleRate)

	pos := 0
	sine := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			fade := 1 - float64(pos)/float64(total)
			v := 0.3 * fade * math.Sin(step*float64(pos))
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})

	buffer := beep.NewBuffer(standardFormat)
	buffer.Append(beep.Take(total, sine))
	return buffer
}

func (sm *SoundManager) Play(cue Cue) {
	if !sm.enabled || cue == CueNone {
		return
	}

	buffer, ok := sm.buffers[cue]
	if !ok {
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (sm *SoundManager) Close() {
	sm.enabled = false
}
