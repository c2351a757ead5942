package tools

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"
	"image"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

const (
	pngSignature = "\x89PNG\r\n\x1a\n"
	// bytes per pixel of an 8-bit RGBA scanline
	pngBPP = 4
	// upper bound of a single IDAT chunk
	idatChunkSize = 32 << 10
)

// DecodeImage decodes any format registered with the image package
// (png, jpeg, gif, bmp, tiff, webp) and applies the EXIF orientation.
func DecodeImage(data []byte) (image.Image, error) {
	return imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
}

// DecodeImageConfig reads only the header: format and dimensions.
func DecodeImageConfig(data []byte) (image.Config, string, error) {
	return image.DecodeConfig(bytes.NewReader(data))
}

// ToNRGBA returns img as a non-premultiplied RGBA image anchored at (0, 0).
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// EncodeRGBAPNG writes m as an 8-bit RGBA png (color type 6).
// png.Encode downgrades opaque images to RGB, which drops the alpha channel.
// Scanlines are filtered adaptively and the deflate stream is split into
// IDAT chunks as it is produced.
func EncodeRGBAPNG(w io.Writer, m *image.NRGBA) error {
	b := m.Bounds()
	width, height := b.Dx(), b.Dy()

	bw := bufio.NewWriter(w)
	if _, err := io.WriteString(bw, pngSignature); err != nil {
		return err
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 8  // bit depth
	ihdr[9] = 6  // truecolor with alpha
	ihdr[10] = 0 // deflate
	ihdr[11] = 0 // adaptive filtering
	ihdr[12] = 0 // no interlace
	if err := writeChunk(bw, "IHDR", ihdr); err != nil {
		return err
	}

	idat := bufio.NewWriterSize(&idatWriter{w: bw}, idatChunkSize)
	zw := zlib.NewWriter(idat)
	rowLen := width * pngBPP
	prev := make([]byte, rowLen)
	var filtered [5][]byte
	for i := range filtered {
		filtered[i] = make([]byte, 1+rowLen)
		filtered[i][0] = byte(i)
	}
	for y := 0; y < height; y++ {
		cur := m.Pix[y*m.Stride : y*m.Stride+rowLen]
		f := filterScanline(&filtered, cur, prev)
		if _, err := zw.Write(filtered[f]); err != nil {
			return err
		}
		prev = cur
	}
	if err := zw.Close(); err != nil {
		return err
	}
	if err := idat.Flush(); err != nil {
		return err
	}
	if err := writeChunk(bw, "IEND", nil); err != nil {
		return err
	}
	return bw.Flush()
}

// filterScanline fills filtered[f][1:] with cur under each png filter type f
// and returns the type with the smallest sum of absolute signed differences.
func filterScanline(filtered *[5][]byte, cur, prev []byte) int {
	none, sub, up, avg, paeth := filtered[0][1:], filtered[1][1:], filtered[2][1:], filtered[3][1:], filtered[4][1:]
	copy(none, cur)
	for i := range cur {
		var left, upLeft byte
		above := prev[i]
		if i >= pngBPP {
			left = cur[i-pngBPP]
			upLeft = prev[i-pngBPP]
		}
		sub[i] = cur[i] - left
		up[i] = cur[i] - above
		avg[i] = cur[i] - byte((int(left)+int(above))/2)
		paeth[i] = cur[i] - paethPredictor(left, above, upLeft)
	}

	best, bestSum := 0, absSum(none)
	for f := 1; f < len(filtered); f++ {
		if s := absSum(filtered[f][1:]); s < bestSum {
			best, bestSum = f, s
		}
	}
	return best
}

func paethPredictor(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa, pb, pc := abs(p-int(a)), abs(p-int(b)), abs(p-int(c))
	switch {
	case pa <= pb && pa <= pc:
		return a
	case pb <= pc:
		return b
	default:
		return c
	}
}

func absSum(row []byte) int {
	sum := 0
	for _, v := range row {
		sum += abs(int(int8(v)))
	}
	return sum
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// idatWriter emits every Write as one IDAT chunk.
type idatWriter struct {
	w io.Writer
}

func (i *idatWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := writeChunk(i.w, "IDAT", p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func writeChunk(w io.Writer, name string, data []byte) error {
	header := make([]byte, 8)
	binary.BigEndian.PutUint32(header[0:4], uint32(len(data)))
	copy(header[4:8], name)
	if _, err := w.Write(header); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	crc := crc32.NewIEEE()
	crc.Write(header[4:8])
	crc.Write(data)
	footer := make([]byte, 4)
	binary.BigEndian.PutUint32(footer, crc.Sum32())
	_, err := w.Write(footer)
	return err
}
