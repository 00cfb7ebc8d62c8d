package textfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/textview"
)

// Some constants for fragment size defaults
const (
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Progress is published to subscribers after every loaded fragment.
type Progress struct {
	Loaded int64 // bytes loaded so far
	Size   int64 // size of the file
}

// File is a text file being loaded into memory.
type File struct {
	path     string
	size     int64
	fragSize int64
	file     *os.File
	cast     *caster.Caster // broadcaster for loading progress
	done     chan struct{}  // closed when loading has finished
	view     textview.View
	err      error
}

// Load opens a file, which must be a UTF-8 text file, and starts reading it
// in the background. Clients may recommend a fragment length; 0 lets Load
// use a default depending on the file size.
//
// Opening the file is always done synchronously. Loading stops early if ctx
// is cancelled.
func Load(ctx context.Context, name string, fragSize int64) (*File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file: %w", name, textview.ErrInvalidArgument)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &File{
		path:     name,
		size:     fi.Size(),
		fragSize: fragmentSize(fi.Size(), fragSize),
		file:     file,
		cast:     caster.New(nil),
		done:     make(chan struct{}),
	}
	tracer().Debugf("textfile: loading %s, %d bytes in fragments of %d", name, tf.size, tf.fragSize)
	go tf.load(ctx)
	return tf, nil
}

func fragmentSize(size, recommended int64) int64 {
	if recommended > 0 && recommended <= tenKb {
		return recommended
	}
	switch {
	case size < 64:
		return max(size, 1)
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return 2048
	}
	return 6144
}

// Name returns the path the file has been loaded from.
func (tf *File) Name() string {
	return tf.path
}

// Size returns the size of the file in bytes.
func (tf *File) Size() int64 {
	return tf.size
}

// Progress subscribes to loading progress. The returned channel is closed
// when loading has finished or ctx is done. Fragments loaded before the
// subscription are not reported.
func (tf *File) Progress(ctx context.Context) <-chan Progress {
	out := make(chan Progress, 1)
	sub, ok := tf.cast.Sub(ctx, 16)
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for msg := range sub {
			if p, ok := msg.(Progress); ok {
				select {
				case out <- p:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// View waits until the file is completely loaded and returns a view spanning
// its content.
func (tf *File) View(ctx context.Context) (textview.View, error) {
	select {
	case <-tf.done:
		return tf.view, tf.err
	case <-ctx.Done():
		return textview.View{}, ctx.Err()
	}
}

// --- File loading goroutine ------------------------------------------------

func (tf *File) load(ctx context.Context) {
	defer close(tf.done)
	defer tf.cast.Close()
	defer tf.file.Close()
	//
	buf := make([]byte, tf.size)
	for pos := int64(0); pos < tf.size; pos += tf.fragSize {
		if err := ctx.Err(); err != nil {
			tf.err = err
			return
		}
		end := min(pos+tf.fragSize, tf.size)
		cnt, err := tf.file.ReadAt(buf[pos:end], pos)
		if err != nil && err != io.EOF {
			tf.err = fmt.Errorf("loading text fragment at %d: %w", pos, err)
			return
		} else if int64(cnt) < end-pos {
			tf.err = fmt.Errorf("not all bytes loaded for text fragment at %d: %w", pos,
				io.ErrUnexpectedEOF)
			return
		}
		tf.cast.Pub(Progress{Loaded: end, Size: tf.size})
	}
	if !utf8.Valid(buf) {
		tf.err = fmt.Errorf("%s is not a UTF-8 text file: %w", tf.path, textview.ErrInvalidArgument)
		return
	}
	tf.view = textview.FromString(string(buf))
	tracer().Debugf("textfile: %s loaded", tf.path)
}
