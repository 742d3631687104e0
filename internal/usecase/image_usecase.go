package usecase

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/DRSN-tech/lca-catalog/internal/domain"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/DRSN-tech/lca-catalog/pkg/logger"
	"github.com/DRSN-tech/lca-catalog/pkg/retry"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/samber/lo"
)

var (
	supportedArchives = []string{".zip", ".rar"}
	supportedImages   = []string{".jpg", ".jpeg", ".png", ".gif"}
)

// scratchScope — временная директория одного запроса.
type scratchScope struct {
	root        string
	archivePath string
	extractDir  string
}

// ImageUseCase раскладывает изображения из архива по продуктам.
type ImageUseCase struct {
	productRepo    ProductRepository
	extractor      ArchiveExtractor
	host           ImageHost
	classification ClassificationUC
	scratchDir     string
	retry          retry.Policy
	logger         logger.Logger
}

func NewImageUC(
	productRepo ProductRepository,
	extractor ArchiveExtractor,
	host ImageHost,
	classification ClassificationUC,
	scratchDir string,
	retryPolicy retry.Policy,
	logger logger.Logger,
) *ImageUseCase {
	return &ImageUseCase{
		productRepo:    productRepo,
		extractor:      extractor,
		host:           host,
		classification: classification,
		scratchDir:     scratchDir,
		retry:          retryPolicy,
		logger:         logger,
	}
}

// DistributeImages распаковывает архив, загружает изображения каждой папки-кода
// на внешний хост и привязывает URL к продукту. Временные файлы удаляются всегда.
// Уже привязанные изображения остаются привязанными при ошибке на середине.
func (u *ImageUseCase) DistributeImages(ctx context.Context, req *DistributeImagesReq) (*DistributeImagesRes, error) {
	const op = "ImageUseCase.DistributeImages"

	if err := validateAccountID(req.AccountID); err != nil {
		return nil, e.Wrap(op, err)
	}

	requestID := uuid.NewString()
	log := u.logger.With("account_id", req.AccountID, "request_id", requestID)

	ext := strings.ToLower(filepath.Ext(req.FileName))

	scope, err := u.newScratchScope(req.AccountID, requestID, ext)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer u.cleanup(scope, log)

	if !lo.Contains(supportedArchives, ext) {
		return nil, e.Wrap(op, e.ErrUnsupportedArchive)
	}

	if err := os.WriteFile(scope.archivePath, req.Archive, 0o600); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := u.extractor.Extract(ctx, scope.archivePath, scope.extractDir); err != nil {
		return nil, e.Wrap(op, err)
	}

	res, err := u.distribute(ctx, req, scope.extractDir, log)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	log.Infof("uploaded %d images, linked %d, unmatched codes: %v", res.Uploaded, res.Linked, res.UnmatchedCodes)

	if _, err := u.classification.Trigger(ctx, req.AccountID); err != nil {
		log.Errorf(err, "failed to trigger classification after image distribution")
	}

	return res, nil
}

// distribute обходит папки верхнего уровня в отсортированном порядке.
// Загрузки выполняются строго последовательно.
func (u *ImageUseCase) distribute(ctx context.Context, req *DistributeImagesReq, root string, log logger.Logger) (*DistributeImagesRes, error) {
	dirs, err := os.ReadDir(root)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name() < dirs[j].Name() })

	var (
		uploaded, linked int
		unmatched        = make([]string, 0)
	)

	for _, dir := range dirs {
		code := dir.Name()
		if !dir.IsDir() || strings.HasPrefix(code, ".") || code == "__MACOSX" {
			continue
		}

		files, err := os.ReadDir(filepath.Join(root, code))
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		matched := true
		for _, f := range files {
			if f.IsDir() || !isImage(f.Name()) {
				continue
			}

			image, err := newScratchImage(req.AccountID, code, filepath.Join(root, code, f.Name()), f)
			if err != nil {
				return nil, e.Wrap(whereami.WhereAmI(), err)
			}

			uploadRes, err := retry.Do(ctx, u.retry, func(ctx context.Context) (*UploadImageRes, error) {
				return u.host.Upload(ctx, NewUploadImageReq(image, req.Origin))
			})
			if err != nil {
				return nil, e.Wrap(whereami.WhereAmI(), err)
			}
			uploaded++

			ok, err := u.productRepo.AppendImage(ctx, req.AccountID, code, uploadRes.URL)
			if err != nil {
				return nil, e.Wrap(whereami.WhereAmI(), err)
			}

			if ok {
				linked++
				continue
			}

			log.Warnf("no product with code %q, image %s uploaded to %s but not linked", code, f.Name(), uploadRes.URL)
			matched = false
		}

		if !matched {
			unmatched = append(unmatched, code)
		}
	}

	return NewDistributeImagesRes(uploaded, linked, unmatched), nil
}

// newScratchScope создаёт <scratch>/<account>/<request>/extracted.
func (u *ImageUseCase) newScratchScope(accountID, requestID, ext string) (*scratchScope, error) {
	root := filepath.Join(u.scratchDir, accountID, requestID)
	scope := &scratchScope{
		root:        root,
		archivePath: filepath.Join(root, "upload"+ext),
		extractDir:  filepath.Join(root, "extracted"),
	}

	if err := os.MkdirAll(scope.extractDir, 0o750); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return scope, nil
}

// cleanup удаляет архив и распакованные файлы. Ошибки только логируются.
func (u *ImageUseCase) cleanup(scope *scratchScope, log logger.Logger) {
	if err := os.Remove(scope.archivePath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Errorf(err, "failed to remove uploaded archive %s", scope.archivePath)
	}

	if err := os.RemoveAll(scope.extractDir); err != nil {
		log.Errorf(err, "failed to remove extraction directory %s", scope.extractDir)
	}

	if err := os.RemoveAll(scope.root); err != nil {
		log.Errorf(err, "failed to remove scratch directory %s", scope.root)
	}
}

func newScratchImage(accountID, code, path string, entry fs.DirEntry) (*domain.Image, error) {
	info, err := entry.Info()
	if err != nil {
		return nil, err
	}

	name := uuid.NewString() + filepath.Ext(entry.Name())

	return domain.NewImage(name, entry.Name(), path, code, accountID, info.Size()), nil
}

func isImage(name string) bool {
	return lo.Contains(supportedImages, strings.ToLower(filepath.Ext(name)))
}
