// Package archive распаковывает ZIP и RAR архивы в директорию.
package archive

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/nwaples/rardecode/v2"
)

// Extractor восстанавливает дерево директорий архива внутри destDir.
// Записи, выходящие за пределы destDir, отклоняются целиком.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (x *Extractor) Extract(ctx context.Context, archivePath, destDir string) error {
	var err error

	switch strings.ToLower(filepath.Ext(archivePath)) {
	case ".zip":
		err = extractZip(ctx, archivePath, destDir)
	case ".rar":
		err = extractRar(ctx, archivePath, destDir)
	default:
		return e.ErrUnsupportedArchive
	}

	if err == nil || errors.Is(err, e.ErrUnsafeArchivePath) || errors.Is(err, ctx.Err()) {
		return err
	}

	return e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrArchiveExtract, err))
}

func extractZip(ctx context.Context, archivePath, destDir string) error {
	// ErrInsecurePath возвращается вместе с рабочим reader, такие записи отсекает safeJoin.
	zr, err := zip.OpenReader(archivePath)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return err
	}
	defer zr.Close()

	for _, f := range zr.File {
		if err := ctx.Err(); err != nil {
			return err
		}

		if f.Mode()&fs.ModeSymlink != 0 {
			continue
		}

		if err := extractZipFile(f, destDir); err != nil {
			return err
		}
	}

	return nil
}

func extractZipFile(f *zip.File, destDir string) error {
	if f.FileInfo().IsDir() {
		return writeEntry(destDir, f.Name, true, nil)
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	return writeEntry(destDir, f.Name, false, rc)
}

func extractRar(ctx context.Context, archivePath, destDir string) error {
	rc, err := rardecode.OpenReader(archivePath)
	if err != nil {
		return err
	}
	defer rc.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		hdr, err := rc.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := writeEntry(destDir, hdr.Name, hdr.IsDir, rc); err != nil {
			return err
		}
	}
}

func writeEntry(root, name string, isDir bool, r io.Reader) error {
	target, err := safeJoin(root, name)
	if err != nil {
		return err
	}

	if isDir {
		return os.MkdirAll(target, 0o750)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return err
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

// safeJoin возвращает путь записи внутри root или ErrUnsafeArchivePath.
func safeJoin(root, name string) (string, error) {
	clean := filepath.FromSlash(strings.ReplaceAll(name, `\`, "/"))
	target := filepath.Join(root, clean)

	rel, err := filepath.Rel(root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", e.NewDetailedError(e.ErrUnsafeArchivePath, map[string]any{"entry": name})
	}

	return target, nil
}
