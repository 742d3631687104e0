package http

import (
	"net/http"

	"github.com/DRSN-tech/lca-catalog/internal/usecase"
	"github.com/DRSN-tech/lca-catalog/pkg/logger"
)

type ProductHandler struct {
	importUC         usecase.ImportUC
	imagesUC         usecase.ImagesUC
	classificationUC usecase.ClassificationUC
	maxUploadBytes   int64
	logger           logger.Logger
}

func NewProductHandler(importUC usecase.ImportUC, imagesUC usecase.ImagesUC,
	classificationUC usecase.ClassificationUC, maxUploadBytes int64, logger logger.Logger) *ProductHandler {
	return &ProductHandler{
		importUC:         importUC,
		imagesUC:         imagesUC,
		classificationUC: classificationUC,
		maxUploadBytes:   maxUploadBytes,
		logger:           logger,
	}
}

// importProducts
//
//	@Summary		Массовая загрузка продуктов
//	@Description	Создаёт продукты из CSV/XLSX по сопоставлению колонок
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			X-Account-ID	header		string	false	"Идентификатор аккаунта"
//	@Param			file			formData	file	true	"Табличный файл"
//	@Param			fieldMapping	formData	string	true	"JSON: поле продукта → колонка"
//	@Param			sheetName		formData	string	false	"Лист книги"
//	@Success		201				{object}	ImportProductsResponse
//	@Failure		400				{object}	ErrorResponse
//	@Router			/products/bulk [post]
func (p *ProductHandler) importProducts(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, p.maxUploadBytes)

	if err := ensureMultipartForm(r, maxFormMemory); err != nil {
		p.logger.Warnf("%d bulk import: %v", http.StatusBadRequest, err)
		WriteError(w, err)
		return
	}

	data, fh, err := readFormFile(r, "file")
	if err != nil {
		p.logger.Warnf("bulk import: %v", err)
		WriteError(w, err)
		return
	}

	mapping, err := parseFieldMapping(r.FormValue("fieldMapping"))
	if err != nil {
		p.logger.Warnf("bulk import: %v", err)
		WriteError(w, err)
		return
	}

	res, err := p.importUC.ImportProducts(r.Context(), &usecase.ImportProductsReq{
		AccountID: accountID(r),
		FileName:  fh.Filename,
		Extension: fileExtension(fh.Filename),
		Data:      data,
		SheetName: r.FormValue("sheetName"),
		Mapping:   mapping,
	})
	if err != nil {
		p.logger.Warnf("bulk import %s: %v", fh.Filename, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toImportProductsResponse(res))
}

// distributeImages
//
//	@Summary		Массовая загрузка изображений
//	@Description	Архив с папками, названными по кодам продуктов
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			X-Account-ID	header		string	false	"Идентификатор аккаунта"
//	@Param			file			formData	file	true	"Архив .zip или .rar"
//	@Success		200				{object}	DistributeImagesResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		502				{object}	ErrorResponse
//	@Router			/products/images/bulk [post]
func (p *ProductHandler) distributeImages(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, p.maxUploadBytes)

	if err := ensureMultipartForm(r, maxFormMemory); err != nil {
		p.logger.Warnf("%d image archive: %v", http.StatusBadRequest, err)
		WriteError(w, err)
		return
	}

	data, fh, err := readFormFile(r, "file")
	if err != nil {
		p.logger.Warnf("image archive: %v", err)
		WriteError(w, err)
		return
	}

	res, err := p.imagesUC.DistributeImages(r.Context(), &usecase.DistributeImagesReq{
		AccountID: accountID(r),
		FileName:  fh.Filename,
		Origin:    r.Header.Get("Origin"),
		Archive:   data,
	})
	if err != nil {
		p.logger.Warnf("image archive %s: %v", fh.Filename, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toDistributeImagesResponse(res))
}

// triggerClassification
//
//	@Summary		Запуск AI-классификации
//	@Description	Забирает все pending-записи аккаунта и ставит их в обработку
//	@Tags			products
//	@Produce		json
//	@Param			X-Account-ID	header		string	false	"Идентификатор аккаунта"
//	@Success		202				{object}	TriggerResponse
//	@Failure		400				{object}	ErrorResponse
//	@Router			/products/classification/trigger [post]
func (p *ProductHandler) triggerClassification(w http.ResponseWriter, r *http.Request) {
	res, err := p.classificationUC.Trigger(r.Context(), accountID(r))
	if err != nil {
		p.logger.Errorf(err, "classification trigger failed")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusAccepted, &TriggerResponse{Dispatched: res.Dispatched})
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
