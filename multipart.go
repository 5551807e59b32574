package loxo

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cast"
)

const defaultResumeFileName = "resume.pdf"

// Part is one multipart/form-data part. Content is held in memory so that a
// retried request resends the same bytes. A part with a FileName is sent as a file.
type Part struct {
	Name        string
	FileName    string
	ContentType string
	Content     []byte
}

// FieldPart returns a plain form field.
func FieldPart(name, value string) Part {
	return Part{Name: name, Content: []byte(value)}
}

// BytesPart returns a file part with the given content.
func BytesPart(name, fileName string, content []byte) Part {
	return Part{Name: name, FileName: fileName, Content: content}
}

// ReaderPart reads r fully and returns a file part.
func ReaderPart(name, fileName string, r io.Reader) (Part, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Part{}, fmt.Errorf("%w: reading %s: %w", ErrInvalidArgument, name, err)
	}
	return BytesPart(name, fileName, content), nil
}

// FilePart reads the file at path and returns a file part named after its base name.
func FilePart(name, path string) (Part, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Part{}, fmt.Errorf("%w: reading %s: %w", ErrInvalidArgument, name, err)
	}
	return BytesPart(name, filepath.Base(path), content), nil
}

// ApplicationParts converts apply-to-job data into multipart parts.
//
// The "resume" entry must be []byte or an io.Reader (sent as resume.pdf), or the
// path of an existing file. Slice values become repeated name[] fields and
// everything else a single field. Parts are ordered by key.
func ApplicationParts(data map[string]any) ([]Part, error) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]Part, 0, len(data))

	for _, key := range keys {
		value := data[key]

		if key == "resume" {
			part, err := resumePart(value)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
			continue
		}

		if value == nil {
			continue
		}

		rv := reflect.ValueOf(value)
		if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() != reflect.Uint8 {
			for i := 0; i < rv.Len(); i++ {
				s, err := fieldString(rv.Index(i).Interface())
				if err != nil {
					return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidArgument, key, err)
				}
				parts = append(parts, FieldPart(key+"[]", s))
			}
			continue
		}

		s, err := fieldString(value)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidArgument, key, err)
		}
		parts = append(parts, FieldPart(key, s))
	}

	return parts, nil
}

var errInvalidResume = fmt.Errorf("%w: resume must be a file reader, bytes or a valid file path", ErrInvalidArgument)

func resumePart(value any) (Part, error) {
	switch v := value.(type) {
	case []byte:
		return BytesPart("resume", defaultResumeFileName, v), nil
	case io.Reader:
		return ReaderPart("resume", defaultResumeFileName, v)
	case string:
		info, err := os.Stat(v)
		if err != nil || info.IsDir() {
			return Part{}, errInvalidResume
		}
		return FilePart("resume", v)
	}
	return Part{}, errInvalidResume
}

func fieldString(v any) (string, error) {
	if b, ok := v.(bool); ok {
		if b {
			return "1", nil
		}
		return "0", nil
	}
	return cast.ToStringE(v)
}

// multipartFields converts parts into fresh resty fields for one attempt.
func multipartFields(parts []Part) ([]*resty.MultipartField, error) {
	fields := make([]*resty.MultipartField, 0, len(parts))

	for i, p := range parts {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: multipart part %d has no name", ErrInvalidRequest, i)
		}
		fields = append(fields, &resty.MultipartField{
			Param:       p.Name,
			FileName:    p.FileName,
			ContentType: p.ContentType,
			Reader:      bytes.NewReader(p.Content),
		})
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: multipart request has no parts", ErrInvalidRequest)
	}

	return fields, nil
}
