package keyfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/bstree"
)

// DefaultCapacity is the default buffer size of subscriber channels.
const DefaultCapacity = 64

// ErrMalformedKey is flagged for tokens which are not decimal integers.
var ErrMalformedKey = errors.New("keyfile: malformed key")

// ErrAlreadyStarted is returned when subscribing to a loader which is
// already reading.
var ErrAlreadyStarted = errors.New("keyfile: loader already started")

// Event is broadcast to subscribers for every key read, for every malformed
// token, and once at the end of the file.
type Event struct {
	Key  int64 // the key, if Err is nil and Done is false
	Line int   // line number of the token, starting at 1
	Err  error // set for malformed tokens and read errors
	Done bool  // end of file reached; no more events follow
}

// Options configures a Loader. A nil *Options selects the defaults.
type Options struct {
	Capacity uint // buffer size of subscriber channels
}

// Loader reads keys from a file and broadcasts them as events.
type Loader struct {
	path      string         // file name
	info      os.FileInfo    // result from Stat(path)
	file      *os.File       // file handle
	cast      *caster.Caster // broadcaster for loaded keys
	capacity  uint
	mx        sync.Mutex
	started   bool
	closeFile sync.Once
}

// Open opens a key file for reading. The file must be a regular file.
// Nothing is read before Start is called.
func Open(name string, opts *Options) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("keyfile: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	l := &Loader{
		path:     name,
		info:     fi,
		file:     file,
		cast:     caster.New(nil),
		capacity: DefaultCapacity,
	}
	if opts != nil && opts.Capacity > 0 {
		l.capacity = opts.Capacity
	}
	return l, nil
}

// Subscribe returns a channel on which the loader's events will be delivered,
// as values of type Event. Subscriptions have to be made before calling Start.
// The channel is closed when the loader is closed, or when ctx is done.
func (l *Loader) Subscribe(ctx context.Context) (<-chan interface{}, error) {
	l.mx.Lock()
	defer l.mx.Unlock()
	if l.started {
		return nil, ErrAlreadyStarted
	}
	ch, ok := l.cast.Sub(ctx, l.capacity)
	if !ok {
		return nil, fmt.Errorf("keyfile: loader for %s is closed", l.path)
	}
	return ch, nil
}

// Start begins reading the file in the background. Calling Start more than
// once has no effect.
func (l *Loader) Start() {
	l.mx.Lock()
	defer l.mx.Unlock()
	if l.started {
		return
	}
	l.started = true
	T().Debugf("keyfile: start loading %s (%d bytes)", l.path, l.info.Size())
	go l.readKeys()
}

// Close stops broadcasting and releases the file. Subscriber channels are
// closed.
func (l *Loader) Close() error {
	l.cast.Close()
	return l.release()
}

func (l *Loader) release() error {
	var err error
	l.closeFile.Do(func() {
		err = l.file.Close()
	})
	return err
}

func (l *Loader) readKeys() {
	defer l.release()
	scanner := bufio.NewScanner(l.file)
	// a single line may hold the whole file
	scanner.Buffer(nil, max(bufio.MaxScanTokenSize, int(l.info.Size())+1))
	line, count := 0, 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(text, "#") {
			continue
		}
		for _, token := range strings.Fields(text) {
			key, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				T().Infof("keyfile: %s:%d: cannot parse %q", l.path, line, token)
				l.cast.Pub(Event{Line: line, Err: fmt.Errorf("%w: %s:%d: %q", ErrMalformedKey, l.path, line, token)})
				continue
			}
			count++
			l.cast.Pub(Event{Key: key, Line: line})
		}
	}
	if err := scanner.Err(); err != nil {
		T().Errorf("keyfile: error reading %s: %v", l.path, err)
		l.cast.Pub(Event{Line: line, Err: fmt.Errorf("keyfile: reading %s: %w", l.path, err)})
	}
	T().Infof("keyfile: read %d keys from %d lines of %s", count, line, l.path)
	l.cast.Pub(Event{Line: line, Done: true})
}

// Load reads all keys from a key file and builds a tree of minimal height from
// them. If the file contains malformed tokens, the tree built from the valid
// keys is returned together with the error for the first malformed token.
func Load(name string) (*bstree.Tree[int64], error) {
	l, err := Open(name, nil)
	if err != nil {
		return nil, err
	}
	defer l.Close()
	events, err := l.Subscribe(context.Background())
	if err != nil {
		return nil, err
	}
	l.Start()
	var keys []int64
	var firstErr error
	for msg := range events {
		ev, ok := msg.(Event)
		if !ok {
			continue
		}
		if ev.Done {
			break
		}
		if ev.Err != nil {
			if firstErr == nil {
				firstErr = ev.Err
			}
			continue
		}
		keys = append(keys, ev.Key)
	}
	return bstree.Build(keys), firstErr
}
