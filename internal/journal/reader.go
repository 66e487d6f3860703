package journal

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bytedance/sonic"

	"main/internal/codec"
	"main/internal/schema"
	"main/pkg/exception"
)

// Entry is one journaled event with its frame metadata.
type Entry struct {
	Seq     uint64
	TsEvent int64
	Event   schema.Event
}

// ReaderOptions controls frame decoding.
type ReaderOptions struct {
	DisableChecksum bool
	MaxPayloadSize  int
}

// Reader decodes journal frames sequentially from one segment.
type Reader struct {
	r         *bufio.Reader
	opts      ReaderOptions
	headerBuf []byte
	payload   []byte
}

// NewReader wraps an io.Reader with journal decoding.
func NewReader(r io.Reader, opts ReaderOptions) *Reader {
	return &Reader{
		r:         bufio.NewReader(r),
		opts:      opts,
		headerBuf: make([]byte, recordHeaderSize),
	}
}

// Next returns the next journaled entry. A clean segment end yields io.EOF.
func (r *Reader) Next() (Entry, error) {
	n, err := io.ReadFull(r.r, r.headerBuf)
	if err != nil {
		if err == io.EOF && n == 0 {
			return Entry{}, io.EOF
		}
		if err == io.EOF {
			return Entry{}, io.ErrUnexpectedEOF
		}
		return Entry{}, err
	}

	f, payloadLen, err := decodeFrame(r.headerBuf)
	if err != nil {
		return Entry{}, err
	}
	if r.opts.MaxPayloadSize > 0 && payloadLen > uint32(r.opts.MaxPayloadSize) {
		return Entry{}, exception.ErrJournalPayloadTooLarge
	}

	if cap(r.payload) < int(payloadLen) {
		r.payload = make([]byte, payloadLen)
	}
	r.payload = r.payload[:payloadLen]
	if payloadLen > 0 {
		if _, err := io.ReadFull(r.r, r.payload); err != nil {
			return Entry{}, err
		}
	}

	var checksumBuf [recordChecksumSize]byte
	if _, err := io.ReadFull(r.r, checksumBuf[:]); err != nil {
		return Entry{}, err
	}
	if !r.opts.DisableChecksum {
		expected := binary.LittleEndian.Uint32(checksumBuf[:])
		if sum := checksum(r.headerBuf, r.payload); sum != expected {
			return Entry{}, exception.ErrJournalChecksum
		}
	}

	rec := codec.Record{}
	if err := sonic.Unmarshal(r.payload, &rec); err != nil {
		return Entry{}, err
	}
	ev, err := codec.Decode(rec)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Seq: f.Seq, TsEvent: f.TsEvent, Event: ev}, nil
}

// Replay streams every entry of one segment into fn, stopping on the first
// error fn returns.
func Replay(r io.Reader, opts ReaderOptions, fn func(Entry) error) error {
	jr := NewReader(r, opts)
	for {
		entry, err := jr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(entry); err != nil {
			return err
		}
	}
}

// ReplayDir replays all segments in a journal directory in file-name order,
// which matches write order for segments produced by one writer.
func ReplayDir(dir, filePrefix string, opts ReaderOptions, fn func(Entry) error) error {
	if filePrefix == "" {
		filePrefix = defaultFilePrefix
	}
	pattern := filepath.Join(dir, filePrefix+"-*.evj")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}
	sort.Strings(paths)
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		err = Replay(file, opts, fn)
		_ = file.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
