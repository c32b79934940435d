package overlay

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"reflect"
	"testing"
	"time"

	"github.com/orbitlapse/orbitlapse/internal/adapters/log"
	"github.com/orbitlapse/orbitlapse/internal/domain"
)

func testInfo() domain.FrameInfo {
	return domain.FrameInfo{
		Index: 1,
		Date:  time.Date(1879, 3, 14, 0, 0, 0, 0, time.UTC),
		Age:   domain.Age{Years: 7, Months: 0, Days: 3},
		Inner: []domain.LapCount{{Body: "Mercury", Laps: 22}, {Body: "Venus", Laps: 4}},
		Outer: []domain.LapCount{{Body: "Mars", Laps: 1}},
	}
}

// rawGIF encodes a small solid test image, matching the service's format.
func rawGIF(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewPaletted(image.Rect(0, 0, w, h), []color.Color{color.Black, color.White})
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode gif: %v", err)
	}
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestCompose_CanvasDimensions(t *testing.T) {
	c := NewComposer(domain.DefaultVideoSpec(), "", log.NewNoopLogger())

	out, err := c.Compose(rawGIF(t, 64, 64), testInfo())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if w, h := decodeSize(t, out); w != 1920 || h != 1080 {
		t.Errorf("output = %dx%d, want 1920x1080", w, h)
	}
}

func TestCompose_UndecodableRaw(t *testing.T) {
	c := NewComposer(domain.DefaultVideoSpec(), "", log.NewNoopLogger())

	_, err := c.Compose([]byte("not an image"), testInfo())
	var ce *domain.CompositionError
	if !errors.As(err, &ce) {
		t.Fatalf("Compose error = %v, want *domain.CompositionError", err)
	}
}

func TestPlaceholder_CanvasDimensions(t *testing.T) {
	c := NewComposer(domain.DefaultVideoSpec(), "", log.NewNoopLogger())

	out, err := c.Placeholder(testInfo())
	if err != nil {
		t.Fatalf("Placeholder: %v", err)
	}
	if w, h := decodeSize(t, out); w != 1920 || h != 1080 {
		t.Errorf("output = %dx%d, want 1920x1080", w, h)
	}
}

func TestTextLines_WithName(t *testing.T) {
	info := testInfo()
	info.Name = "Albert"

	want := []string{
		"year – 1879",
		"month – 03",
		"day – 14",
		"",
		"Albert's age in:",
		"years – 7",
		"months – 0",
		"days – 3",
		"",
		"Number of times Albert was lapped by:",
		"Mercury – 22",
		"Venus – 4",
		"",
		"Number of times Albert lapped:",
		"Mars – 1",
	}
	if got := textLines(info); !reflect.DeepEqual(got, want) {
		t.Errorf("textLines() = %q, want %q", got, want)
	}
}

func TestTextLines_DefaultSubject(t *testing.T) {
	got := textLines(testInfo())
	if got[4] != "Age in:" {
		t.Errorf("heading = %q, want \"Age in:\"", got[4])
	}
	if got[9] != "Number of times Earth was lapped by:" {
		t.Errorf("inner heading = %q, want Earth subject", got[9])
	}
}

func TestScaleToWidth_PreservesAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 512, 256))
	got := scaleToWidth(src, 1024)
	if got.Bounds().Dx() != 1024 || got.Bounds().Dy() != 512 {
		t.Errorf("scaled = %v, want 1024x512", got.Bounds())
	}
}
