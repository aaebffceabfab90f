package glyphcli

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"oss.terrastruct.com/util-go/xmain"
)

// BURST_DELAY is how long the watcher waits after the last file system event
// before re-rendering, so that one save producing several events renders
// once.
const BURST_DELAY = 16 * time.Millisecond

type watcher struct {
	ctx  context.Context
	ms   *xmain.State
	fw   *fsnotify.Watcher
	opts renderOpts

	inputPath  string
	outputPath string
}

func newWatcher(ctx context.Context, ms *xmain.State, inputPath, outputPath string, opts renderOpts) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &watcher{
		ctx:        ctx,
		ms:         ms,
		fw:         fw,
		opts:       opts,
		inputPath:  inputPath,
		outputPath: outputPath,
	}, nil
}

func (w *watcher) run() error {
	defer w.fw.Close()

	lastModified, err := w.ensureAddWatch(w.ctx)
	if err != nil {
		return err
	}
	w.render()

	eatBurstTimer := time.NewTimer(0)
	<-eatBurstTimer.C
	pollTicker := time.NewTicker(time.Second * 10)
	defer pollTicker.Stop()

	pending := false
	for {
		select {
		case <-pollTicker.C:
			// Editors that replace the file drop the watch without telling us.
			mt, err := w.ensureAddWatch(w.ctx)
			if err != nil {
				return err
			}
			if !mt.Equal(lastModified) {
				lastModified = mt
				w.render()
			}
		case ev, ok := <-w.fw.Events:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			w.ms.Log.Debug.Printf("received file system event %v", ev)
			mt, err := w.ensureAddWatch(w.ctx)
			if err != nil {
				return err
			}
			if ev.Op == fsnotify.Chmod && mt.Equal(lastModified) {
				continue
			}
			lastModified = mt
			pending = true
			eatBurstTimer.Reset(BURST_DELAY)
		case <-eatBurstTimer.C:
			if !pending {
				continue
			}
			pending = false
			w.ms.Log.Info.Printf("detected change in %s: re-rendering...", w.ms.HumanPath(w.inputPath))
			w.render()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			w.ms.Log.Error.Printf("fsnotify error: %v", err)
		case <-w.ctx.Done():
			return w.ctx.Err()
		}
	}
}

// render logs failures instead of returning them so that the watcher keeps
// running while the input is being edited.
func (w *watcher) render() {
	ctx, cancel := context.WithTimeout(w.ctx, time.Minute)
	defer cancel()

	if err := compile(ctx, w.ms, w.inputPath, w.outputPath, w.opts); err != nil {
		w.ms.Log.Error.Printf("%v", err)
		return
	}
	w.ms.Log.Success.Printf("successfully rendered %s to %s", w.ms.HumanPath(w.inputPath), w.ms.HumanPath(w.outputPath))
}

func (w *watcher) ensureAddWatch(ctx context.Context) (time.Time, error) {
	interval := BURST_DELAY
	tc := time.NewTimer(0)
	<-tc.C
	for {
		mt, err := w.addWatch()
		if err == nil {
			return mt, nil
		}
		if interval >= time.Second {
			w.ms.Log.Error.Printf("failed to watch %q: %v (retrying in %v)", w.ms.HumanPath(w.inputPath), err, interval)
		}

		tc.Reset(interval)
		select {
		case <-tc.C:
			if interval < time.Second {
				interval = time.Second
			}
			if interval < time.Second*16 {
				interval *= 2
			}
		case <-ctx.Done():
			return time.Time{}, ctx.Err()
		}
	}
}

func (w *watcher) addWatch() (time.Time, error) {
	if err := w.fw.Add(w.inputPath); err != nil {
		return time.Time{}, err
	}
	d, err := os.Stat(w.inputPath)
	if err != nil {
		return time.Time{}, err
	}
	return d.ModTime(), nil
}
