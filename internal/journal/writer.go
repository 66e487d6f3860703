package journal

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"

	"main/internal/codec"
	"main/internal/schema"
	"main/pkg/exception"
)

const (
	defaultSegmentMaxBytes int64 = 1 << 30
	defaultBufferSize            = 256 * 1024
	defaultFilePrefix            = "events"
)

// Config controls journal writer behavior.
type Config struct {
	Dir             string
	SegmentMaxBytes int64
	BufferSize      int
	FilePrefix      string
}

// DefaultConfig returns a baseline configuration for the journal writer.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:             dir,
		SegmentMaxBytes: defaultSegmentMaxBytes,
		BufferSize:      defaultBufferSize,
		FilePrefix:      defaultFilePrefix,
	}
}

func (c Config) withDefaults() Config {
	if c.SegmentMaxBytes == 0 {
		c.SegmentMaxBytes = defaultSegmentMaxBytes
	}
	if c.BufferSize == 0 {
		c.BufferSize = defaultBufferSize
	}
	if c.FilePrefix == "" {
		c.FilePrefix = defaultFilePrefix
	}
	return c
}

// Validate checks if the configuration is usable.
func (c Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("invalid journal config: Dir is empty")
	}
	if c.SegmentMaxBytes <= 0 {
		return fmt.Errorf("invalid journal config: SegmentMaxBytes must be > 0")
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("invalid journal config: BufferSize must be > 0")
	}
	return nil
}

// Writer appends events to journal segments. It is not safe for concurrent
// use; the engine's single consumer is the only expected caller.
type Writer struct {
	cfg   Config
	seg   *segment
	segID uint64
	seq   uint64

	headerBuf   []byte
	checksumBuf [recordChecksumSize]byte
	closed      bool
}

type segment struct {
	file     *os.File
	buf      *bufio.Writer
	size     int64
	openedAt time.Time
}

// NewWriter creates a journal writer and ensures the target directory
// exists.
func NewWriter(cfg Config) (*Writer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}
	return &Writer{
		cfg:       cfg,
		headerBuf: make([]byte, recordHeaderSize),
	}, nil
}

// Append journals one event. The assigned sequence number is returned.
func (w *Writer) Append(ev schema.Event) (uint64, error) {
	if w.closed {
		return 0, exception.ErrJournalClosed
	}
	rec, err := codec.Encode(ev)
	if err != nil {
		return 0, err
	}
	payload, err := sonic.Marshal(rec)
	if err != nil {
		return 0, err
	}
	if uint64(len(payload)) > maxPayloadLen {
		return 0, exception.ErrJournalPayloadTooLarge
	}

	recordSize := int64(recordHeaderSize + len(payload) + recordChecksumSize)
	if w.seg == nil || (w.cfg.SegmentMaxBytes > 0 && w.seg.size+recordSize > w.cfg.SegmentMaxBytes) {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	w.seq++
	encodeFrame(w.headerBuf, frame{
		Type:    ev.Type(),
		Seq:     w.seq,
		TsEvent: ev.EventTime(),
	}, len(payload))
	sum := checksum(w.headerBuf, payload)
	binary.LittleEndian.PutUint32(w.checksumBuf[:], sum)

	if _, err := w.seg.buf.Write(w.headerBuf); err != nil {
		return 0, err
	}
	if _, err := w.seg.buf.Write(payload); err != nil {
		return 0, err
	}
	if _, err := w.seg.buf.Write(w.checksumBuf[:]); err != nil {
		return 0, err
	}
	w.seg.size += recordSize
	return w.seq, nil
}

// Flush pushes buffered frames to the OS.
func (w *Writer) Flush() error {
	if w.seg == nil {
		return nil
	}
	return w.seg.buf.Flush()
}

// Sync flushes and fsyncs the current segment.
func (w *Writer) Sync() error {
	if w.seg == nil {
		return nil
	}
	if err := w.seg.buf.Flush(); err != nil {
		return err
	}
	return w.seg.file.Sync()
}

// Close flushes, syncs, and closes the current segment. Further appends
// fail.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.closeSegment()
}

func (w *Writer) rotate() error {
	if err := w.closeSegment(); err != nil {
		return err
	}
	now := time.Now().UTC()
	ts := now.Format("20060102-150405")
	for {
		w.segID++
		name := fmt.Sprintf("%s-%s-%06d.evj", w.cfg.FilePrefix, ts, w.segID)
		path := filepath.Join(w.cfg.Dir, name)
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
		if err != nil {
			if errors.Is(err, os.ErrExist) {
				continue
			}
			return err
		}
		w.seg = &segment{
			file:     file,
			buf:      bufio.NewWriterSize(file, w.cfg.BufferSize),
			openedAt: now,
		}
		return nil
	}
}

func (w *Writer) closeSegment() error {
	if w.seg == nil {
		return nil
	}
	seg := w.seg
	w.seg = nil
	if err := seg.buf.Flush(); err != nil {
		_ = seg.file.Close()
		return err
	}
	if err := seg.file.Sync(); err != nil {
		_ = seg.file.Close()
		return err
	}
	return seg.file.Close()
}
