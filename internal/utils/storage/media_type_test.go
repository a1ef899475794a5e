package storage

import (
	"RecipeHub/domain"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	mp4Header = []byte("\x00\x00\x00\x18ftypmp42\x00\x00\x00\x00mp42isom")
)

// webmHeader is the EBML magic followed by a DocType element naming webm.
var webmHeader = []byte("\x1a\x45\xdf\xa3\x42\x82\x84webm")

func TestClassifyImage(t *testing.T) {
	mt, ext, err := Classify(bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.Equal(t, domain.MediaKindImage, mt.Kind)
	assert.Equal(t, "image/png", mt.MIME)
	assert.Equal(t, ".png", ext)
}

func TestClassifyVideo(t *testing.T) {
	mt, _, err := Classify(bytes.NewReader(mp4Header))
	require.NoError(t, err)
	assert.Equal(t, domain.MediaKindVideo, mt.Kind)
}

func TestClassifyRejectsDisallowedType(t *testing.T) {
	_, _, err := Classify(bytes.NewReader([]byte("just some plain text")))
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)

	_, _, err = Classify(bytes.NewReader(mp4Header), AllowImage...)
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)
}

func TestClassifyMatchesAliases(t *testing.T) {
	mt, ext, err := Classify(bytes.NewReader(webmHeader), "audio/webm")
	require.NoError(t, err)
	assert.Equal(t, "video/webm", mt.MIME)
	assert.Equal(t, domain.MediaKindVideo, mt.Kind)
	assert.Equal(t, ".webm", ext)

	_, _, err = Classify(bytes.NewReader(webmHeader), AllowImage...)
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)
}

func TestClassifyFileNil(t *testing.T) {
	_, _, err := ClassifyFile(nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, domain.MediaKindVideo, KindOf("https://cdn/x/abc.MP4"))
	assert.Equal(t, domain.MediaKindImage, KindOf("https://cdn/x/abc.jpg"))
}
