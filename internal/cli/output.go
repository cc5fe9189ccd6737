package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/hexboard/pkg/errors"
	"github.com/matzehuels/hexboard/pkg/observability"
	"github.com/matzehuels/hexboard/pkg/pipeline"
)

// stdoutPath is the --output value that writes the artifact to stdout.
const stdoutPath = "-"

// basePath derives the base output path for multiple formats.
// If output is empty, it uses the default base name.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output string) string {
	if output == "" {
		return defaultBaseName
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.ToLower(strings.TrimPrefix(ext, "."))] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns the file an artifact of format is written to. A single
// format is written to output as given; multiple formats share a base path.
func outputPath(output, format string, formats int) string {
	if formats == 1 && output != "" {
		return output
	}
	return basePath(output) + "." + format
}

// configOutput turns the output of a config file into an --output value for
// formats. A config file names a base path, so a single format still gets
// its extension.
func configOutput(output string, formats []string) string {
	if output == stdoutPath || len(formats) != 1 {
		return output
	}
	return basePath(output) + "." + formats[0]
}

// writeOutput writes data to path, creating parent directories as needed.
// The stdout path writes to stdout instead.
func writeOutput(ctx context.Context, stdout io.Writer, path string, data []byte) error {
	if path == stdoutPath {
		_, err := stdout.Write(data)
		return err
	}

	err := writeFile(path, data)
	observability.Files().OnFileWrite(ctx, path, len(data), err)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	loggerFromContext(ctx).Debugf("Wrote %s: %d bytes", path, len(data))
	return nil
}

func writeFile(path string, data []byte) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		return os.MkdirAll(dir, 0o755)
	}
	return nil
}

// fileSize returns the size of the file at path, or 0 if it cannot be read.
func fileSize(path string) int {
	fi, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return int(fi.Size())
}
