package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vparshin/greenclue/internal/extract"
)

// ReadDocument loads the text of one document. "-" reads stdin.
// Files with an .html/.htm extension are reduced to visible text first;
// everything else is treated as already extracted plain text.
func ReadDocument(path string) (string, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	text := string(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = extract.Text(text)
		if err != nil {
			return "", fmt.Errorf("parse html: %w", err)
		}
	}

	return text, nil
}
