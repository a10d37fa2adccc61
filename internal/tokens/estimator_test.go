package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate_Empty(t *testing.T) {
	assert.Equal(t, 0, Estimate(""))
}

func TestEstimate_ScalesWithLength(t *testing.T) {
	short := Estimate("abcd")
	long := Estimate(strings.Repeat("abcd", 100))
	assert.Less(t, short, long)
}

func TestCropRatio_FitsWithinBudget(t *testing.T) {
	assert.Equal(t, 1.0, CropRatio(100, 8192))
}

func TestCropRatio_FloorsAtMinimum(t *testing.T) {
	ratio := CropRatio(1_000_000, 8192)
	assert.Equal(t, minCropRatio, ratio)
}

func TestCropRatio_ZeroPromptTokensIsNoCrop(t *testing.T) {
	assert.Equal(t, 1.0, CropRatio(0, 8192))
}

func TestCropContent_NoOpAtFullRatio(t *testing.T) {
	assert.Equal(t, "hello world", CropContent("hello world", 1.0))
}

func TestCropContent_TrimsAndAppendsNote(t *testing.T) {
	content := strings.Repeat("x", 1000)
	cropped := CropContent(content, 0.5)
	assert.Less(t, len(cropped), len(content))
	assert.Contains(t, cropped, "truncated")
}

func TestCropContent_CollapsesToEmptyWhenRatioTiny(t *testing.T) {
	assert.Equal(t, "", CropContent("short", 0.001))
}
