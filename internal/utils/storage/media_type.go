package storage

import (
	"RecipeHub/domain"
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
)

var (
	AllowImage = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	AllowVideo = []string{"video/mp4", "video/webm", "video/quicktime"}
	AllowMedia = append(append([]string{}, AllowImage...), AllowVideo...)

	videoExtensions = []string{".mp4", ".webm", ".mov"}
)

// MediaType is the outcome of sniffing an upload.
type MediaType struct {
	MIME string
	Kind string
}

// ClassifyFile sniffs the content of an uploaded part and checks it against
// the allowed MIME types. It returns the media kind and the canonical file
// extension.
func ClassifyFile(file *multipart.FileHeader, allowed ...string) (MediaType, string, error) {
	if file == nil {
		return MediaType{}, "", domain.ErrUnsupportedMedia
	}
	if file.Size > MaxUploadSize {
		return MediaType{}, "", domain.ErrMediaTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return MediaType{}, "", err
	}
	defer src.Close()

	return Classify(src, allowed...)
}

// Classify sniffs r and checks the detected type against allowed. An empty
// allowed list accepts any image or video.
func Classify(r io.Reader, allowed ...string) (MediaType, string, error) {
	if len(allowed) == 0 {
		allowed = AllowMedia
	}

	mtype, err := mimetype.DetectReader(r)
	if err != nil {
		return MediaType{}, "", err
	}
	if !isAny(mtype, allowed) {
		return MediaType{}, "", domain.ErrUnsupportedMedia
	}

	kind := domain.MediaKindImage
	if isAny(mtype, AllowVideo) {
		kind = domain.MediaKindVideo
	}

	return MediaType{MIME: mtype.String(), Kind: kind}, mtype.Extension(), nil
}

// isAny reports whether mtype or one of its aliases is in mimes.
func isAny(mtype *mimetype.MIME, mimes []string) bool {
	for _, m := range mimes {
		if mtype.Is(m) {
			return true
		}
	}
	return false
}
