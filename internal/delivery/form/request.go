package form

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"charity-care-portal/pkg/validator"
)

const (
	// FormIDField names the form instance in the body; FormIDHeader is the
	// alternative for clients that cannot add a body field.
	FormIDField  = "formId"
	FormIDHeader = "X-Form-ID"

	attachmentsField = "attachments"
	maxMemory        = 32 << 20
)

var ErrUnsupportedBody = errors.New("unsupported request body")

// Submission is a decoded request body.
type Submission struct {
	FormID  string
	Values  validator.Values
	Uploads []Upload
}

// ReadSubmission decodes JSON, urlencoded and multipart bodies into raw
// values. Uploaded files are read up to one byte past MaxAttachmentSize.
func ReadSubmission(r *http.Request) (*Submission, error) {
	sub := &Submission{Values: validator.Values{}}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		if err := readJSON(r.Body, sub.Values); err != nil {
			return nil, err
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedBody, err)
		}
		copyValues(sub.Values, r.PostForm)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedBody, err)
		}
		copyValues(sub.Values, r.MultipartForm.Value)
		uploads, err := readUploads(r)
		if err != nil {
			return nil, err
		}
		sub.Uploads = uploads
	case "":
		// empty body, e.g. a bare POST action
	default:
		return nil, ErrUnsupportedBody
	}

	sub.FormID = sub.Values.Get(FormIDField)
	if sub.FormID == "" {
		sub.FormID = strings.TrimSpace(r.Header.Get(FormIDHeader))
	}
	return sub, nil
}

func readJSON(body io.Reader, values validator.Values) error {
	decoder := json.NewDecoder(body)
	decoder.UseNumber()

	raw := map[string]interface{}{}
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUnsupportedBody, err)
	}
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
		case string:
			values[k] = val
		case json.Number:
			values[k] = val.String()
		case bool:
			if val {
				values[k] = "true"
			} else {
				values[k] = "false"
			}
		default:
			return fmt.Errorf("%w: field %q is not a scalar", ErrUnsupportedBody, k)
		}
	}
	return nil
}

func copyValues(dst validator.Values, src map[string][]string) {
	for k, vs := range src {
		if len(vs) > 0 {
			dst[k] = vs[0]
		}
	}
}

func readUploads(r *http.Request) ([]Upload, error) {
	headers := r.MultipartForm.File[attachmentsField]
	uploads := make([]Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(io.LimitReader(f, MaxAttachmentSize+1))
		f.Close()
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, Upload{Name: fh.Filename, Size: fh.Size, Content: content})
	}
	return uploads, nil
}
