package utils

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/textproto"
)

// BuildProductForm packages a product record, plus an optional image upload,
// into one multipart body. The record travels as a JSON part named "product"
// so the backend can bind it next to the file part.
func BuildProductForm(record interface{}, image *multipart.FileHeader) ([]byte, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="product"`)
	header.Set("Content-Type", "application/json")
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if err := json.NewEncoder(part).Encode(record); err != nil {
		return nil, "", err
	}

	if image != nil {
		src, err := image.Open()
		if err != nil {
			return nil, "", err
		}
		defer src.Close()

		dst, err := writer.CreateFormFile("image", image.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(dst, src); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), writer.FormDataContentType(), nil
}
