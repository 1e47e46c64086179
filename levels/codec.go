package levels

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/speedgame/common"
)

// FileExt is the conventional extension for level files.
const FileExt = ".sgld"

// Version is the only layout this package reads and writes.
const Version uint16 = 1

const (
	headerSize = 4 + 2 + 8
	recordSize = 20
)

// Magic identifies a level file ("sgld").
var Magic = [4]byte{'s', 'g', 'l', 'd'}

var (
	ErrBadMagic           = errors.New("bad magic")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrTruncated          = errors.New("truncated header")
	ErrRecordSize         = errors.New("platform data is not a whole number of records")
)

// FormatError reports a level file that could be read but is not a valid
// level. It matches its sentinel through errors.Is.
type FormatError struct {
	Path   string
	Err    error
	Detail string
}

func (e *FormatError) Error() string {
	msg := "sgld: " + e.Err.Error()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

type fileHeader struct {
	Magic   [4]byte
	Version uint16
	StartX  float32
	StartY  float32
}

type platformRecord struct {
	X, Y, W, H float32
	Friction   float32
}

// Encode writes the level in the sgld binary layout.
func (l *Level) Encode(w io.Writer) error {
	buf := bytes.NewBuffer(make([]byte, 0, headerSize+recordSize*len(l.platforms)))
	hdr := fileHeader{
		Magic:   Magic,
		Version: Version,
		StartX:  l.playerStart.X,
		StartY:  l.playerStart.Y,
	}
	if err := binary.Write(buf, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	records := make([]platformRecord, len(l.platforms))
	for i, p := range l.platforms {
		records[i] = platformRecord{X: p.Pos.X, Y: p.Pos.Y, W: p.Size.X, H: p.Size.Y, Friction: p.Friction}
	}
	if err := binary.Write(buf, binary.LittleEndian, records); err != nil {
		return fmt.Errorf("encode platforms: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Decode reads a level in the sgld binary layout. Malformed input yields a
// *FormatError; read failures are returned as-is.
func Decode(r io.Reader) (*Level, error) {
	var raw [headerSize]byte
	n, err := io.ReadFull(r, raw[:])
	if n >= len(Magic) && !bytes.Equal(raw[:len(Magic)], Magic[:]) {
		return nil, &FormatError{Err: ErrBadMagic, Detail: fmt.Sprintf("got %q", raw[:len(Magic)])}
	}
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &FormatError{Err: ErrTruncated, Detail: fmt.Sprintf("%d of %d bytes", n, headerSize)}
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var hdr fileHeader
	if err := binary.Read(bytes.NewReader(raw[:]), binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}
	if hdr.Version != Version {
		return nil, &FormatError{Err: ErrUnsupportedVersion, Detail: fmt.Sprintf("version %d", hdr.Version)}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read platforms: %w", err)
	}
	if len(data)%recordSize != 0 {
		return nil, &FormatError{Err: ErrRecordSize, Detail: fmt.Sprintf("%d trailing bytes", len(data)%recordSize)}
	}

	records := make([]platformRecord, len(data)/recordSize)
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, records); err != nil {
		return nil, fmt.Errorf("decode platforms: %w", err)
	}
	platforms := make([]Platform, len(records))
	for i, rec := range records {
		platforms[i] = Platform{
			Pos:      common.V(rec.X, rec.Y),
			Size:     common.V(rec.W, rec.H),
			Friction: rec.Friction,
		}
	}
	return &Level{platforms: platforms, playerStart: common.V(hdr.StartX, hdr.StartY)}, nil
}

// WriteFile truncates path and writes the level to it, flushing to disk
// before returning.
func (l *Level) WriteFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open level: %w", err)
	}
	if err := l.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("write level %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync level %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close level %s: %w", path, err)
	}
	return nil
}

// ReadFile loads a level from disk.
func ReadFile(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level: %w", err)
	}
	defer f.Close()

	lvl, err := Decode(bufio.NewReader(f))
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}
	return lvl, nil
}
