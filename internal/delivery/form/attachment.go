package form

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gabriel-vasile/mimetype"

	"charity-care-portal/internal/domain/entity"
)

// MaxAttachmentSize is the per-file upload limit.
const MaxAttachmentSize = 5 << 20

var allowedMIME = []string{
	"image/jpeg",
	"image/png",
	"application/pdf",
	"text/plain",
}

const (
	RejectUnsupportedType = "Unsupported file type"
	RejectTooLarge        = "File is larger than 5 MB"
	RejectDuplicate       = "File is already attached"
)

// Upload is one file as received. Size is the declared size, which may
// exceed len(Content) when the reader stopped early.
type Upload struct {
	Name    string
	Size    int64
	Content []byte
}

// Rejection explains why one upload was not accepted.
type Rejection struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// DetectMIME sniffs content and returns the allow-listed type it matches.
func DetectMIME(content []byte) (string, bool) {
	for m := mimetype.Detect(content); m != nil; m = m.Parent() {
		for _, allowed := range allowedMIME {
			if m.Is(allowed) {
				return allowed, true
			}
		}
	}
	return "", false
}

// AttachmentSet is the pending file list of one form instance.
type AttachmentSet struct {
	files []entity.Attachment
}

func NewAttachmentSet(staged []entity.Attachment) *AttachmentSet {
	files := make([]entity.Attachment, len(staged))
	copy(files, staged)
	return &AttachmentSet{files: files}
}

// Add validates each upload independently. Accepted files are appended once;
// every other upload yields its own rejection.
func (s *AttachmentSet) Add(uploads ...Upload) []Rejection {
	var rejections []Rejection
	for _, u := range uploads {
		size := u.Size
		if size < int64(len(u.Content)) {
			size = int64(len(u.Content))
		}

		mime, ok := DetectMIME(u.Content)
		if !ok {
			rejections = append(rejections, Rejection{Name: u.Name, Reason: RejectUnsupportedType})
			continue
		}
		if size > MaxAttachmentSize {
			rejections = append(rejections, Rejection{Name: u.Name, Reason: RejectTooLarge})
			continue
		}

		fingerprint := xxhash.Sum64(u.Content)
		if s.contains(fingerprint, size) {
			rejections = append(rejections, Rejection{Name: u.Name, Reason: RejectDuplicate})
			continue
		}

		s.files = append(s.files, entity.Attachment{
			Name:        u.Name,
			Size:        size,
			MIME:        mime,
			Fingerprint: fingerprint,
			Content:     u.Content,
		})
	}
	return rejections
}

// Remove drops the file at index; it reports false for an out-of-range index.
func (s *AttachmentSet) Remove(index int) bool {
	if index < 0 || index >= len(s.files) {
		return false
	}
	s.files = append(s.files[:index], s.files[index+1:]...)
	return true
}

func (s *AttachmentSet) Files() []entity.Attachment {
	files := make([]entity.Attachment, len(s.files))
	copy(files, s.files)
	return files
}

func (s *AttachmentSet) contains(fingerprint uint64, size int64) bool {
	for _, f := range s.files {
		if f.Fingerprint == fingerprint && f.Size == size {
			return true
		}
	}
	return false
}
