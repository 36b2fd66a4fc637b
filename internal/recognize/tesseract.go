package recognize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/certhub/docscan/internal/entity"
)

// TesseractEngine runs recognition through a local tesseract installation.
type TesseractEngine struct {
	tessdataDir string
	logger      *slog.Logger
}

func NewTesseractEngine(tessdataDir string, logger *slog.Logger) *TesseractEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &TesseractEngine{tessdataDir: tessdataDir, logger: logger}
}

// Recognize runs one page image through tesseract. Word confidences are
// averaged and blended with a content heuristic; confidence is on [0,100].
func (t *TesseractEngine) Recognize(_ context.Context, image []byte, langs string, progress func(int)) (entity.RecognitionResult, error) {
	client := gosseract.NewClient()
	defer func() {
		if err := client.Close(); err != nil {
			t.logger.Warn("closing tesseract client", "error", err)
		}
	}()

	if t.tessdataDir != "" {
		if err := client.SetTessdataPrefix(t.tessdataDir); err != nil {
			return entity.RecognitionResult{}, fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if err := client.SetLanguage(strings.Split(langs, "+")...); err != nil {
		return entity.RecognitionResult{}, fmt.Errorf("set language: %w", err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return entity.RecognitionResult{}, fmt.Errorf("set image: %w", err)
	}

	if progress != nil {
		progress(10)
	}
	text, err := client.Text()
	if err != nil {
		return entity.RecognitionResult{}, fmt.Errorf("tesseract: %w", err)
	}
	if progress != nil {
		progress(90)
	}

	// mean word confidence, 0..100; missing boxes leave it at 0
	var ocrConf float64
	if boxes, berr := client.GetBoundingBoxesVerbose(); berr == nil {
		var sum float64
		var n int
		for _, b := range boxes {
			if b.Confidence < 0 {
				continue
			}
			sum += b.Confidence
			n++
		}
		if n > 0 {
			ocrConf = sum / float64(n)
		}
	} else {
		t.logger.Debug("word confidence unavailable", "error", berr)
	}

	conf := blendConfidence(ocrConf, heuristicConfidence(text))
	return entity.RecognitionResult{Text: text, Confidence: conf}, nil
}

// blendConfidence weights the engine's word confidence higher when present.
func blendConfidence(ocrConf, heurConf float64) float64 {
	var conf float64
	if ocrConf > 0 {
		conf = 0.7*ocrConf + 0.3*heurConf
	} else {
		conf = heurConf
	}
	if conf > 100 {
		conf = 100
	}
	if conf < 0 {
		conf = 0
	}
	return conf
}
