package player

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extOGG  = ".ogg"
	extWAV  = ".wav"
)

// decoded is an opened and decoded audio file.
type decoded struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	kind     string
}

// close releases the decoder and the underlying file.
func (d *decoded) close() {
	if d.streamer != nil {
		d.streamer.Close()
	}
	if d.file != nil {
		d.file.Close()
	}
}

// decodeFile opens path and picks a decoder from its extension.
func decodeFile(path string) (*decoded, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case extMP3, extFLAC, extOGG, extWAV:
	default:
		return nil, fmt.Errorf("unsupported format: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case extMP3:
		streamer, format, err = decodeGoMP3(f)
	case extFLAC:
		// Some taggers prepend an ID3v2 block the FLAC decoder can't parse.
		if err := skipID3v2(f); err != nil {
			f.Close()
			return nil, err
		}
		streamer, format, err = flac.Decode(f)
	case extOGG:
		streamer, format, err = vorbis.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	return &decoded{
		file:     f,
		streamer: streamer,
		format:   format,
		kind:     strings.ToUpper(strings.TrimPrefix(ext, ".")),
	}, nil
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of r.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && n == 0 {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// Syncsafe integer: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])

	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
