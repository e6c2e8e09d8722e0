package timer

import (
	"context"
	"os/exec"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/kballard/go-shellquote"
)

const (
	bellSampleRate = beep.SampleRate(44100)
	bellFrequency  = 880.0
	bellLength     = 350 * time.Millisecond
	bellGap        = 150 * time.Millisecond
)

var (
	speakerInit = speaker.Init
	speakerPlay = speaker.Play

	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker opens the audio device once. A failed init is returned by
// every later call.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speakerInit(bellSampleRate, bellSampleRate.N(time.Second/10))
	})

	return speakerErr
}

// ringBell plays a short generated tone rings times and blocks until it
// finishes.
func ringBell(rings int) error {
	if err := initSpeaker(); err != nil {
		return err
	}

	tone, err := generators.SineTone(bellSampleRate, bellFrequency)
	if err != nil {
		return err
	}

	var seq []beep.Streamer

	for range rings {
		seq = append(
			seq,
			beep.Take(bellSampleRate.N(bellLength), tone),
			generators.Silence(bellSampleRate.N(bellGap)),
		)
	}

	done := make(chan struct{})

	speakerPlay(&effects.Volume{
		Streamer: beep.Seq(append(seq, beep.Callback(func() {
			close(done)
		}))...),
		Base:   2,
		Volume: -2,
	})

	wait := time.Duration(rings)*(bellLength+bellGap) + time.Second

	select {
	case <-done:
		return nil
	case <-time.After(wait):
		return errBellTimeout
	}
}

func desktopNotify(title, msg string) error {
	return beeep.Notify(title, msg, "")
}

// runSessionCmd executes the user's post-workout command.
func runSessionCmd(ctx context.Context, sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Fmt(sessionCmd).Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	//nolint:gosec // the command comes from the user's own config
	cmd := exec.CommandContext(ctx, cmdSlice[0], cmdSlice[1:]...)

	return cmd.Run()
}
