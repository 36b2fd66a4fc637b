package recognize

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/certhub/docscan/internal/entity"
)

type fakeEngine struct {
	fn func(ctx context.Context, image []byte, langs string, progress func(int)) (entity.RecognitionResult, error)
}

func (f *fakeEngine) Recognize(ctx context.Context, image []byte, langs string, progress func(int)) (entity.RecognitionResult, error) {
	return f.fn(ctx, image, langs, progress)
}

type recordingObserver struct {
	pages    []string
	progress []int
}

func (r *recordingObserver) PageStarted(file string, page int) {
	r.pages = append(r.pages, file)
}

func (r *recordingObserver) Progress(pct int) {
	r.progress = append(r.progress, pct)
}

func TestDriverRecognizeSuccess(t *testing.T) {
	engine := &fakeEngine{fn: func(_ context.Context, _ []byte, langs string, _ func(int)) (entity.RecognitionResult, error) {
		assert.Equal(t, LanguageProfile, langs)
		return entity.RecognitionResult{Text: "합격증", Confidence: 92.5}, nil
	}}
	d := NewDriver(engine, nil)

	res, err := d.Recognize(context.Background(), entity.RawPage{File: "a.png", Page: 1}, []byte("img"), nil)
	require.NoError(t, err)
	assert.Equal(t, "합격증", res.Text)
	assert.InDelta(t, 92.5, res.Confidence, 0.001)
}

func TestDriverClampsConfidence(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"above range", 150, 100},
		{"below range", -5, 0},
		{"in range", 73, 73},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &fakeEngine{fn: func(context.Context, []byte, string, func(int)) (entity.RecognitionResult, error) {
				return entity.RecognitionResult{Confidence: tt.in}, nil
			}}
			res, err := NewDriver(engine, nil).Recognize(context.Background(), entity.RawPage{}, nil, nil)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, res.Confidence, 0.001)
		})
	}
}

func TestDriverProgressIsMonotonic(t *testing.T) {
	engine := &fakeEngine{fn: func(_ context.Context, _ []byte, _ string, progress func(int)) (entity.RecognitionResult, error) {
		progress(30)
		progress(10) // regressions are dropped
		progress(60)
		progress(60) // repeats are dropped
		return entity.RecognitionResult{}, nil
	}}
	obs := &recordingObserver{}

	_, err := NewDriver(engine, nil).Recognize(context.Background(), entity.RawPage{File: "a.png", Page: 1}, nil, obs)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png"}, obs.pages)
	assert.Equal(t, []int{0, 30, 60, 100}, obs.progress)
}

func TestDriverProgressResetsPerPage(t *testing.T) {
	engine := &fakeEngine{fn: func(_ context.Context, _ []byte, _ string, progress func(int)) (entity.RecognitionResult, error) {
		progress(50)
		return entity.RecognitionResult{}, nil
	}}
	d := NewDriver(engine, nil)
	obs := &recordingObserver{}

	_, err := d.Recognize(context.Background(), entity.RawPage{File: "a.png", Page: 1}, nil, obs)
	require.NoError(t, err)
	_, err = d.Recognize(context.Background(), entity.RawPage{File: "b.png", Page: 1}, nil, obs)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.png", "b.png"}, obs.pages)
	assert.Equal(t, []int{0, 50, 100, 0, 50, 100}, obs.progress)
}

func TestDriverProgressClampsOutOfRangeReports(t *testing.T) {
	engine := &fakeEngine{fn: func(_ context.Context, _ []byte, _ string, progress func(int)) (entity.RecognitionResult, error) {
		progress(-10)
		progress(140)
		return entity.RecognitionResult{}, nil
	}}
	obs := &recordingObserver{}

	_, err := NewDriver(engine, nil).Recognize(context.Background(), entity.RawPage{}, nil, obs)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 100}, obs.progress)
}

func TestDriverTimeout(t *testing.T) {
	engine := &fakeEngine{fn: func(ctx context.Context, _ []byte, _ string, _ func(int)) (entity.RecognitionResult, error) {
		<-ctx.Done()
		return entity.RecognitionResult{}, ctx.Err()
	}}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := NewDriver(engine, nil).Recognize(ctx, entity.RawPage{File: "slow.png", Page: 1}, nil, nil)
	assert.ErrorIs(t, err, ErrRecognitionTimeout)
}

func TestClassifyEngineError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"deadline exceeded", context.DeadlineExceeded, ErrRecognitionTimeout},
		{"network", errors.New("Failed to fetch language model"), ErrNetworkFailure},
		{"download", errors.New("download interrupted"), ErrNetworkFailure},
		{"memory", errors.New("cannot allocate memory"), ErrResourceExhaustion},
		{"timeout message", errors.New("operation timed out"), ErrRecognitionTimeout},
		{"engine init", errors.New("could not initialize tesseract worker"), ErrEngineInit},
		{"tessdata", errors.New("tessdata directory missing"), ErrEngineInit},
		{"unknown", errors.New("something odd"), ErrRecognitionFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyEngineError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestBlendConfidence(t *testing.T) {
	// word confidence present: weighted blend
	assert.InDelta(t, 0.7*90+0.3*50, blendConfidence(90, 50), 0.001)
	// no word confidence: heuristic alone
	assert.InDelta(t, 50, blendConfidence(0, 50), 0.001)
	// clamped to [0,100]
	assert.InDelta(t, 100, blendConfidence(120, 120), 0.001)
}

func TestHeuristicConfidence(t *testing.T) {
	plain := heuristicConfidence("짧은 글")
	rich := heuristicConfidence("영수증 결제일: 2024.01.15 합계: 45,000원")
	assert.Greater(t, rich, plain)
	assert.GreaterOrEqual(t, plain, 0.0)
	assert.LessOrEqual(t, rich, 100.0)
}
