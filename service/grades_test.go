package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreAPR_Breakpoints(t *testing.T) {
	tests := []struct {
		apr  float64
		want int
	}{
		{0, 4}, {2, 4}, {2.01, 3}, {4, 3}, {4.01, 2}, {6, 2}, {6.01, 1}, {8, 1}, {8.01, 0}, {15, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoreAPR(tt.apr), "apr=%f", tt.apr)
	}
}

func TestScoreDiscount_Breakpoints(t *testing.T) {
	tests := []struct {
		discount float64
		want     int
	}{
		{10, 4}, {8, 4}, {7.99, 3}, {5, 3}, {4.99, 2}, {2, 2}, {1.99, 1}, {0, 1}, {-0.01, 0}, {-5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoreDiscount(tt.discount), "discount=%f", tt.discount)
	}
}

func TestScoreResidual_TermAdjustment(t *testing.T) {
	// 55% residual reads differently depending on the term.
	assert.Equal(t, 2, scoreResidual(55, 24), "short terms expect higher residuals")
	assert.Equal(t, 3, scoreResidual(55, 36))
	assert.Equal(t, 4, scoreResidual(55, 48), "long terms expect lower residuals")
}

func TestScoreOnePercent_Breakpoints(t *testing.T) {
	tests := []struct {
		ratio float64
		want  int
	}{
		{0.5, 4}, {0.8, 4}, {0.81, 3}, {1.0, 3}, {1.01, 2}, {1.2, 2}, {1.21, 1}, {1.5, 1}, {1.51, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoreOnePercent(tt.ratio), "ratio=%f", tt.ratio)
	}
}

func TestGraderMonotonicity(t *testing.T) {
	// Grades must never improve as the metric gets worse.
	prev := 4
	for apr := 0.0; apr <= 20; apr += 0.25 {
		score := scoreAPR(apr)
		assert.LessOrEqual(t, score, prev, "apr=%f", apr)
		prev = score
	}

	prev = 0
	for discount := -10.0; discount <= 15; discount += 0.25 {
		score := scoreDiscount(discount)
		assert.GreaterOrEqual(t, score, prev, "discount=%f", discount)
		prev = score
	}

	prev = 4
	for ratio := 0.1; ratio <= 3; ratio += 0.05 {
		score := scoreOnePercent(ratio)
		assert.LessOrEqual(t, score, prev, "ratio=%f", ratio)
		prev = score
	}

	for _, term := range []int{24, 36, 48} {
		prev = 0
		for residual := 20.0; residual <= 80; residual += 0.5 {
			score := scoreResidual(residual, term)
			assert.GreaterOrEqual(t, score, prev, "residual=%f term=%d", residual, term)
			prev = score
		}
	}
}

func TestCompositeScore_Weights(t *testing.T) {
	// 0.35·one% + 0.30·apr + 0.20·price + 0.15·residual.
	assert.InDelta(t, 2.2, compositeScore(1, 2, 4, 3, 0), 1e-9)
	assert.InDelta(t, 4.0, compositeScore(4, 4, 4, 4, 0), 1e-9)
	assert.InDelta(t, 0.0, compositeScore(0, 0, 0, 0, 0), 1e-9)
}

func TestCompositeScore_JunkPenalty(t *testing.T) {
	// $895 of junk knocks 0.895 points off.
	assert.InDelta(t, 1.605, compositeScore(1, 3, 4, 3, 895), 1e-9)

	// The penalty caps at 1.5 points.
	assert.InDelta(t, 2.5, compositeScore(4, 4, 4, 4, 10000), 1e-9)

	// And the result never goes below zero.
	assert.InDelta(t, 0.0, compositeScore(0, 0, 0, 1, 5000), 1e-9)
}

func TestCompositeLetter_Breakpoints(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{4.0, 4}, {3.5, 4}, {3.49, 3}, {2.5, 3}, {2.49, 2}, {1.5, 2}, {1.49, 1}, {0.75, 1}, {0.74, 0}, {0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, compositeLetter(tt.score), "score=%f", tt.score)
	}
}

func TestGradeComposite_Letters(t *testing.T) {
	assert.Equal(t, "A", GradeComposite(4, 4, 4, 4, 0).Letter)
	assert.Equal(t, "C", GradeComposite(1, 2, 4, 3, 0).Letter)
	assert.Equal(t, "F", GradeComposite(0, 0, 0, 0, 0).Letter)
}

func TestBuildGrade_LabelsMatchLetters(t *testing.T) {
	assert.Equal(t, "Excellent", buildGrade(4, "").Label)
	assert.Equal(t, "Good", buildGrade(3, "").Label)
	assert.Equal(t, "Fair", buildGrade(2, "").Label)
	assert.Equal(t, "Poor", buildGrade(1, "").Label)
	assert.Equal(t, "Bad", buildGrade(0, "").Label)
}
