package blobposter

import (
	"image"
	_ "image/png" // posters are PNG
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Poster is a decoded poster image and the file it came from.
type Poster struct {
	Name string
	Img  image.Image
}

// DecodeImages decodes the poster files in parallel. Files that cannot be
// opened or decoded are logged and skipped, so the result may be shorter than
// fileNames. Order follows fileNames.
func DecodeImages(logger *log.Logger, fileNames []string) []Poster {
	chans := make([]chan Poster, len(fileNames))
	for i, fName := range fileNames {
		chans[i] = make(chan Poster, 1)
		go func(out chan<- Poster, fName string) {
			defer close(out)
			file, err := os.Open(fName)
			if err != nil {
				logger.Warn("Cannot open poster", "file", fName, "err", err)
				return
			}
			defer file.Close()

			start := time.Now()
			img, kind, err := image.Decode(file)
			if err != nil {
				logger.Warn("Cannot decode poster", "file", fName, "err", err)
				return
			}
			logger.Debug("Decoded poster", "file", fName, "kind", kind, "took", time.Since(start))
			out <- Poster{Name: Basename(fName), Img: img}
		}(chans[i], fName)
	}

	posters := make([]Poster, 0, len(fileNames))
	for _, ch := range chans {
		if p, ok := <-ch; ok {
			posters = append(posters, p)
		}
	}
	return posters
}

// VpCenter inspects the window and image geometry, and determines where the
// origin of the image should be painted into the window.
// If the image is bigger than the window, this is always (0, 0).
// If a dimension of the image is smaller than the window, then:
// x = (win_width - image_width) / 2 and
// y = (win_height - image_height) / 2
func VpCenter(img image.Image, winWidth, winHeight int) image.Point {
	xmargin, ymargin := 0, 0
	if img.Bounds().Dx() < winWidth {
		xmargin = (winWidth - img.Bounds().Dx()) / 2
	}
	if img.Bounds().Dy() < winHeight {
		ymargin = (winHeight - img.Bounds().Dy()) / 2
	}
	return image.Point{xmargin, ymargin}
}
