package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/url"
	"strconv"
)

// encodeFileForm wraps body in a multipart form under the "file" field,
// returning the encoded payload and its boundary-carrying content type.
func encodeFileForm(filename string, body io.Reader) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, body); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func urlValues(key string, id int64) url.Values {
	v := url.Values{}
	v.Set(key, strconv.FormatInt(id, 10))
	return v
}
