package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DRSN-tech/lca-catalog/internal/usecase"
	"github.com/DRSN-tech/lca-catalog/internal/usecase/mocks"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/DRSN-tech/lca-catalog/pkg/logger"
	"github.com/DRSN-tech/lca-catalog/pkg/retry"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// extractTree возвращает Run-функцию, которая раскладывает файлы так, как это сделал бы распаковщик.
func extractTree(files map[string]string) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		dest := args.String(2)
		for name, content := range files {
			path := filepath.Join(dest, filepath.FromSlash(name))
			_ = os.MkdirAll(filepath.Dir(path), 0o750)
			_ = os.WriteFile(path, []byte(content), 0o600)
		}
	}
}

func TestDistributeImages(t *testing.T) {
	t.Parallel()

	type deps struct {
		repo      *mocks.MockProductRepository
		extractor *mocks.MockArchiveExtractor
		host      *mocks.MockImageHost
		trigger   *mocks.MockClassificationUC
	}

	accountID := gofakeit.UUID()
	origin := "https://" + gofakeit.DomainName()
	imageURL := origin + "/public/images?file=" + gofakeit.UUID() + ".jpg"

	type testCase struct {
		name     string
		fileName string
		setup    func(d deps)
		assert   func(t *testing.T, res *usecase.DistributeImagesRes, err error, d deps)
	}

	tests := []testCase{
		{
			name:     "image linked to existing product",
			fileName: "images.zip",
			setup: func(d deps) {
				d.extractor.On("Extract", mock.Anything, mock.MatchedBy(func(p string) bool {
					return strings.HasSuffix(p, "upload.zip")
				}), mock.Anything).
					Run(extractTree(map[string]string{"ABC123/img1.jpg": "jpeg"})).
					Return(nil).
					Once()

				d.host.On("Upload", mock.Anything, mock.MatchedBy(func(r *usecase.UploadImageReq) bool {
					return r.Origin == origin &&
						r.Image.ProductCode == "ABC123" &&
						r.Image.OriginalName == "img1.jpg" &&
						strings.HasSuffix(r.Image.Name, ".jpg") &&
						r.Image.Name != "img1.jpg"
				})).
					Return(usecase.NewUploadImageRes(imageURL), nil).
					Once()

				d.repo.On("AppendImage", mock.Anything, accountID, "ABC123", imageURL).
					Return(true, nil).
					Once()

				d.trigger.On("Trigger", mock.Anything, accountID).
					Return(usecase.NewTriggerRes(1), nil).
					Once()
			},
			assert: func(t *testing.T, res *usecase.DistributeImagesRes, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, 1, res.Uploaded)
				assert.Equal(t, 1, res.Linked)
				assert.Empty(t, res.UnmatchedCodes)
			},
		},
		{
			name:     "unknown directory code is uploaded but not linked",
			fileName: "IMAGES.RAR",
			setup: func(d deps) {
				d.extractor.On("Extract", mock.Anything, mock.MatchedBy(func(p string) bool {
					return strings.HasSuffix(p, "upload.rar")
				}), mock.Anything).
					Run(extractTree(map[string]string{
						"ZZZ/photo.PNG":     "png",
						"ZZZ/notes.txt":     "skip",
						"__MACOSX/._photo":  "skip",
						"readme.jpg":        "top-level file",
						"ZZZ/nested/a.jpeg": "skip",
					})).
					Return(nil).
					Once()

				d.host.On("Upload", mock.Anything, mock.MatchedBy(func(r *usecase.UploadImageReq) bool {
					return r.Image.ProductCode == "ZZZ" && strings.HasSuffix(r.Image.Name, ".PNG")
				})).
					Return(usecase.NewUploadImageRes(imageURL), nil).
					Once()

				d.repo.On("AppendImage", mock.Anything, accountID, "ZZZ", imageURL).
					Return(false, nil).
					Once()

				d.trigger.On("Trigger", mock.Anything, accountID).
					Return(usecase.NewTriggerRes(0), nil).
					Once()
			},
			assert: func(t *testing.T, res *usecase.DistributeImagesRes, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, 1, res.Uploaded)
				assert.Equal(t, 0, res.Linked)
				assert.Equal(t, []string{"ZZZ"}, res.UnmatchedCodes)
			},
		},
		{
			name:     "upload retried once",
			fileName: "images.zip",
			setup: func(d deps) {
				d.extractor.On("Extract", mock.Anything, mock.Anything, mock.Anything).
					Run(extractTree(map[string]string{"ABC123/img1.gif": "gif"})).
					Return(nil).
					Once()

				d.host.On("Upload", mock.Anything, mock.Anything).
					Return(nil, e.ErrImageUpload).
					Once()
				d.host.On("Upload", mock.Anything, mock.Anything).
					Return(usecase.NewUploadImageRes(imageURL), nil).
					Once()

				d.repo.On("AppendImage", mock.Anything, accountID, "ABC123", imageURL).
					Return(true, nil).
					Once()

				d.trigger.On("Trigger", mock.Anything, accountID).
					Return(nil, errors.New("claim failed")).
					Once()
			},
			assert: func(t *testing.T, res *usecase.DistributeImagesRes, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, 1, res.Linked)
			},
		},
		{
			name:     "upload failing twice aborts the run",
			fileName: "images.zip",
			setup: func(d deps) {
				d.extractor.On("Extract", mock.Anything, mock.Anything, mock.Anything).
					Run(extractTree(map[string]string{"ABC123/img1.jpg": "jpeg", "ABC124/img2.jpg": "jpeg"})).
					Return(nil).
					Once()

				d.host.On("Upload", mock.Anything, mock.Anything).
					Return(nil, e.ErrImageUpload).
					Twice()
			},
			assert: func(t *testing.T, res *usecase.DistributeImagesRes, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, e.ErrImageUpload)
				assert.Nil(t, res)

				d.repo.AssertNotCalled(t, "AppendImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				d.trigger.AssertNotCalled(t, "Trigger", mock.Anything, mock.Anything)
			},
		},
		{
			name:     "unsupported archive extension",
			fileName: "images.7z",
			setup:    func(d deps) {},
			assert: func(t *testing.T, res *usecase.DistributeImagesRes, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, e.ErrUnsupportedArchive)
				assert.Nil(t, res)

				d.extractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name:     "extraction failure",
			fileName: "images.zip",
			setup: func(d deps) {
				d.extractor.On("Extract", mock.Anything, mock.Anything, mock.Anything).
					Return(e.ErrArchiveExtract).
					Once()
			},
			assert: func(t *testing.T, res *usecase.DistributeImagesRes, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, e.ErrArchiveExtract)
				assert.Nil(t, res)
			},
		},
		{
			name:     "store failure stops the loop",
			fileName: "images.zip",
			setup: func(d deps) {
				d.extractor.On("Extract", mock.Anything, mock.Anything, mock.Anything).
					Run(extractTree(map[string]string{"A/1.jpg": "1", "B/2.jpg": "2"})).
					Return(nil).
					Once()

				d.host.On("Upload", mock.Anything, mock.Anything).
					Return(usecase.NewUploadImageRes(imageURL), nil).
					Once()

				d.repo.On("AppendImage", mock.Anything, accountID, "A", imageURL).
					Return(false, errors.New("connection reset")).
					Once()
			},
			assert: func(t *testing.T, res *usecase.DistributeImagesRes, err error, d deps) {
				require.Error(t, err)
				assert.Nil(t, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repo:      mocks.NewMockProductRepository(t),
				extractor: mocks.NewMockArchiveExtractor(t),
				host:      mocks.NewMockImageHost(t),
				trigger:   mocks.NewMockClassificationUC(t),
			}
			tt.setup(d)

			scratch := t.TempDir()
			uc := usecase.NewImageUC(d.repo, d.extractor, d.host, d.trigger, scratch, retry.Immediate(1), logger.NewNop())

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			res, err := uc.DistributeImages(ctx, &usecase.DistributeImagesReq{
				AccountID: accountID,
				FileName:  tt.fileName,
				Origin:    origin,
				Archive:   []byte("archive"),
			})
			tt.assert(t, res, err, d)

			// временная директория запроса удаляется в любом случае
			left, readErr := os.ReadDir(filepath.Join(scratch, accountID))
			require.NoError(t, readErr)
			assert.Empty(t, left)
		})
	}
}
