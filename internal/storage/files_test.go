package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-finder/internal/httperr"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(t.TempDir(), nil)
	require.NoError(t, err)
	return svc
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// makeFileHeader builds a real multipart.FileHeader by writing and re-parsing
// a multipart form, the same way gin receives uploads.
func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("images", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["images"]
	require.Len(t, files, 1)
	return files[0]
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := jpeg.Decode(f)
	require.NoError(t, err)
	return img
}

func TestUniqueName(t *testing.T) {
	name := UniqueName("../../etc/passwd.png")
	assert.False(t, strings.Contains(name, "/"))
	assert.False(t, strings.Contains(name, ".."))
	assert.True(t, strings.HasSuffix(name, ".png"))

	assert.True(t, strings.HasSuffix(UniqueName("photo.JPEG"), ".jpeg"))

	// Unknown extensions are stripped entirely.
	odd := UniqueName("payload.php")
	assert.False(t, strings.Contains(odd, "."))

	assert.NotEqual(t, UniqueName("a.jpg"), UniqueName("a.jpg"))
}

func TestValidateImage(t *testing.T) {
	svc := newTestService(t)

	good := makeFileHeader(t, "photo.png", pngBytes(t, 40, 40))
	require.NoError(t, svc.ValidateImage(good, MaxBarbershopImageSize))

	err := svc.ValidateImage(good, 10)
	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "file_too_large"))

	// A text payload with an image extension fails the sniff.
	fake := makeFileHeader(t, "photo.png", []byte("definitely not an image"))
	err = svc.ValidateImage(fake, MaxBarbershopImageSize)
	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "invalid_file_type"))
}

func TestSaveUploadAndProcess(t *testing.T) {
	svc := newTestService(t)

	fh := makeFileHeader(t, "photo.png", pngBytes(t, 1200, 400))
	saved, err := svc.SaveUpload(fh, CategoryBarbershops)
	require.NoError(t, err)
	require.FileExists(t, saved)

	out := svc.Path(CategoryBarbershops, "processed.jpg")
	require.NoError(t, svc.ProcessImage(saved, out, 800, 600, 80))

	img := decodeFile(t, out)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())

	// The raw upload is consumed by processing.
	assert.NoFileExists(t, saved)
}

func TestGenerateThumbnailPreservesOriginal(t *testing.T) {
	svc := newTestService(t)

	fh := makeFileHeader(t, "photo.png", pngBytes(t, 640, 480))
	saved, err := svc.SaveUpload(fh, CategoryBarbershops)
	require.NoError(t, err)

	thumb := svc.Path(CategoryBarbershops, "photo_thumb.jpg")
	require.NoError(t, svc.GenerateThumbnail(saved, thumb, ThumbnailSize))

	img := decodeFile(t, thumb)
	assert.Equal(t, ThumbnailSize, img.Bounds().Dx())
	assert.Equal(t, ThumbnailSize, img.Bounds().Dy())
	assert.FileExists(t, saved)
}

func TestDeleteFileIdempotent(t *testing.T) {
	svc := newTestService(t)

	fh := makeFileHeader(t, "photo.png", pngBytes(t, 20, 20))
	saved, err := svc.SaveUpload(fh, CategoryProfiles)
	require.NoError(t, err)

	assert.True(t, svc.DeleteFile(saved))
	assert.False(t, svc.DeleteFile(saved))
}

func TestPublishWithoutRemote(t *testing.T) {
	svc := newTestService(t)

	url, err := svc.Publish(context.Background(), "", CategoryBarbershops, "abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/barbershops/abc.jpg", url)
}

func TestCropResizeUpscalesSmallSources(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 50, 50))
	out := cropResize(src, 200, 100)
	assert.Equal(t, 200, out.Bounds().Dx())
	assert.Equal(t, 100, out.Bounds().Dy())
}
