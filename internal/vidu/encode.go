package vidu

import (
	"encoding/base64"
	"fmt"
	"os"
)

// EncodeImageFile reads an image file and returns it as a data URI suitable
// for the images field of a submission request. contentType defaults to
// image/png.
func EncodeImageFile(path, contentType string) (string, error) {
	if contentType == "" {
		contentType = "image/png"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}
