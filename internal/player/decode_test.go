package player

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipID3v2_NoTag(t *testing.T) {
	r := bytes.NewReader([]byte("fLaC\x00\x00\x00\x22rest-of-stream"))

	require.NoError(t, skipID3v2(r))

	pos, _ := r.Seek(0, io.SeekCurrent)
	assert.Equal(t, int64(0), pos)
}

func TestSkipID3v2_WithTag(t *testing.T) {
	// Header declares a 5-byte body (syncsafe 0x00 0x00 0x00 0x05).
	data := append([]byte("ID3\x03\x00\x00\x00\x00\x00\x05"), []byte("XXXXXfLaC")...)
	r := bytes.NewReader(data)

	require.NoError(t, skipID3v2(r))

	rest, _ := io.ReadAll(r)
	assert.Equal(t, "fLaC", string(rest))
}

func TestSkipID3v2_ShortInput(t *testing.T) {
	r := bytes.NewReader([]byte("ID3"))

	require.NoError(t, skipID3v2(r))

	pos, _ := r.Seek(0, io.SeekCurrent)
	assert.Equal(t, int64(0), pos)
}

func TestDecodeFile_UnsupportedExtension(t *testing.T) {
	_, err := decodeFile("/music/song.m4a")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestDecodeFile_MissingFile(t *testing.T) {
	_, err := decodeFile(filepath.Join(t.TempDir(), "missing.mp3"))

	require.Error(t, err)
}

func TestDecodeFile_GarbageWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wav")
	require.NoError(t, os.WriteFile(path, []byte("definitely not RIFF"), 0o600))

	_, err := decodeFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.wav")
}

func TestPlayer_OpenFailureKeepsState(t *testing.T) {
	p := New()

	err := p.Open("/music/song.m4a")

	require.Error(t, err)
	assert.Equal(t, Stopped, p.State())
	assert.Nil(t, p.TrackInfo())
	assert.Equal(t, int64(0), int64(p.Position()))

	// Commands on an empty engine are tolerated.
	p.Play()
	p.Pause()
	p.Stop()
	p.SetPosition(0)
	assert.Equal(t, Stopped, p.State())
}
