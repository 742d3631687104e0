// Package contenthost загружает изображения на внешний контент-хост по HTTP.
package contenthost

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strings"

	"github.com/DRSN-tech/lca-catalog/internal/cfg"
	"github.com/DRSN-tech/lca-catalog/internal/domain"
	"github.com/DRSN-tech/lca-catalog/internal/infrastructure"
	"github.com/DRSN-tech/lca-catalog/internal/usecase"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/jimlawless/whereami"
)

// HTTPHost отправляет файл multipart-запросом на origin + UploadPath.
// Публичный URL строится на том же origin: origin + PublicPath с тем же query.
type HTTPHost struct {
	client *http.Client
	cfg    *cfg.ContentHostCfg
}

func NewHTTPHost(c *cfg.ContentHostCfg) *HTTPHost {
	return &HTTPHost{
		client: &http.Client{Timeout: c.Timeout},
		cfg:    c,
	}
}

func (h *HTTPHost) Upload(ctx context.Context, req *usecase.UploadImageReq) (*usecase.UploadImageRes, error) {
	origin := h.resolveOrigin(req.Origin)
	query := url.Values{h.cfg.QueryParam: {req.Image.Name}}.Encode()

	body, contentType, err := multipartBody(req.Image)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, origin+h.cfg.UploadPath+"?"+query, body)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrImageUpload, err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, e.Wrap(whereami.WhereAmI(), e.NewDetailedError(e.ErrImageUpload, map[string]any{
			"image":  req.Image.Name,
			"status": resp.StatusCode,
		}))
	}

	return usecase.NewUploadImageRes(origin + h.cfg.PublicPath + "?" + query), nil
}

// resolveOrigin принимает только абсолютный http(s) origin, иначе берёт значение по умолчанию.
func (h *HTTPHost) resolveOrigin(origin string) string {
	u, err := url.Parse(strings.TrimSpace(origin))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return h.cfg.DefaultOrigin
	}

	return u.Scheme + "://" + u.Host
}

func multipartBody(image *domain.Image) (*bytes.Buffer, string, error) {
	data, err := os.ReadFile(image.Path)
	if err != nil {
		return nil, "", err
	}

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, image.Name))
	header.Set("Content-Type", infrastructure.ContentTypeByName(image.Name))

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}

	return body, mw.FormDataContentType(), nil
}
