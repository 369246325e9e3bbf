package handlers

import (
	"log"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-finder/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-finder/internal/httperr"
	"github.com/BruksfildServices01/barber-finder/internal/httpresp"
	"github.com/BruksfildServices01/barber-finder/internal/middleware"
	"github.com/BruksfildServices01/barber-finder/internal/storage"
	ucshop "github.com/BruksfildServices01/barber-finder/internal/usecase/barbershop"
)

const (
	maxImagesPerUpload = 5

	processedWidth   = 800
	processedHeight  = 600
	processedQuality = 80
)

type UploadHandler struct {
	repo  domain.Repository
	files *storage.Service

	addImagesUC   *ucshop.AddImages
	removeImageUC *ucshop.RemoveImage
}

func NewUploadHandler(
	repo domain.Repository,
	files *storage.Service,
	addImagesUC *ucshop.AddImages,
	removeImageUC *ucshop.RemoveImage,
) *UploadHandler {
	return &UploadHandler{
		repo:          repo,
		files:         files,
		addImagesUC:   addImagesUC,
		removeImageUC: removeImageUC,
	}
}

type DeleteImageRequest struct {
	URL string `json:"url" binding:"required"`
}

// UploadImages processes a multipart batch. A file that fails validation or
// processing is logged and skipped; the rest of the batch still succeeds.
func (h *UploadHandler) UploadImages(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Unauthorized. User not authenticated.")
		return
	}

	shopID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	// Authorize before any file hits the disk.
	if _, err := ucshop.CheckModify(c.Request.Context(), h.repo, caller, shopID); err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Expected multipart form data.")
		return
	}

	uploads := form.File["images"]
	if len(uploads) == 0 {
		httperr.BadRequest(c, "no_files", "No image files provided.")
		return
	}
	if len(uploads) > maxImagesPerUpload {
		httperr.BadRequest(c, "too_many_files", "Maximum 5 files per upload.")
		return
	}

	ctx := c.Request.Context()
	urls := make([]string, 0, len(uploads))
	skipped := 0

	for _, fh := range uploads {
		if err := h.files.ValidateImage(fh, storage.MaxBarbershopImageSize); err != nil {
			log.Printf("skipping upload %q: %v", fh.Filename, err)
			skipped++
			continue
		}

		rawPath, err := h.files.SaveUpload(fh, storage.CategoryBarbershops)
		if err != nil {
			log.Printf("skipping upload %q: %v", fh.Filename, err)
			skipped++
			continue
		}

		base := path.Base(rawPath)
		name := strings.TrimSuffix(base, path.Ext(base)) + ".jpg"
		processedPath := h.files.Path(storage.CategoryBarbershops, name)

		if err := h.files.ProcessImage(rawPath, processedPath, processedWidth, processedHeight, processedQuality); err != nil {
			log.Printf("skipping upload %q: %v", fh.Filename, err)
			h.files.DeleteFile(rawPath)
			skipped++
			continue
		}

		thumbName := strings.TrimSuffix(name, ".jpg") + "_thumb.jpg"
		thumbPath := h.files.Path(storage.CategoryBarbershops, thumbName)
		if err := h.files.GenerateThumbnail(processedPath, thumbPath, storage.ThumbnailSize); err != nil {
			log.Printf("thumbnail for %q: %v", name, err)
		} else if _, err := h.files.Publish(ctx, thumbPath, storage.CategoryBarbershops, thumbName); err != nil {
			log.Printf("publishing thumbnail %q: %v", thumbName, err)
		}

		url, err := h.files.Publish(ctx, processedPath, storage.CategoryBarbershops, name)
		if err != nil {
			log.Printf("skipping upload %q: %v", fh.Filename, err)
			h.files.DeleteFile(processedPath)
			skipped++
			continue
		}

		urls = append(urls, url)
	}

	if len(urls) == 0 {
		httperr.BadRequest(c, "no_valid_images", "No files in the batch could be processed.")
		return
	}

	shop, err := h.addImagesUC.Execute(ctx, caller, shopID, urls)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"barbershop": shop,
		"uploaded":   urls,
		"skipped":    skipped,
	})
}

func (h *UploadHandler) DeleteImage(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Unauthorized. User not authenticated.")
		return
	}

	shopID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req DeleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	url, err := h.removeImageUC.Execute(c.Request.Context(), caller, shopID, req.URL)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	// Best effort on disk: the gallery entry is already gone.
	filename := path.Base(url)
	h.files.Remove(c.Request.Context(), storage.CategoryBarbershops, filename)
	thumbName := strings.TrimSuffix(filename, path.Ext(filename)) + "_thumb.jpg"
	h.files.Remove(c.Request.Context(), storage.CategoryBarbershops, thumbName)

	httpresp.OK(c, gin.H{"message": "image_deleted"})
}
