package prosody

import "math"

// voicingThreshold is the minimum normalized autocorrelation peak for a
// frame to count as voiced. Below it the frame's pitch is reported as 0.
const voicingThreshold = 0.5

// silenceRMS marks frames too quiet to carry a usable pitch estimate
const silenceRMS = 1e-4

// RMSEnergy computes root-mean-square amplitude per hop window. The number
// of frames is ceil(len(samples)/hopLength); the final window may be short.
func RMSEnergy(samples []float64, frameLength, hopLength int) []float64 {
	var series []float64
	for start := 0; start < len(samples); start += hopLength {
		end := start + frameLength
		if end > len(samples) {
			end = len(samples)
		}
		var sum float64
		for _, v := range samples[start:end] {
			sum += v * v
		}
		series = append(series, math.Sqrt(sum/float64(end-start)))
	}
	return series
}

// PitchTrack estimates the fundamental frequency per hop window using
// normalized autocorrelation, restricted to [fmin, fmax]. Unvoiced or
// undetected frames are reported as 0. The series is frame-aligned with
// RMSEnergy for the same hop length.
func PitchTrack(samples []float64, sampleRate, frameLength, hopLength int, fmin, fmax float64) []float64 {
	lagMin := int(float64(sampleRate) / fmax)
	lagMax := int(float64(sampleRate) / fmin)
	if lagMin < 1 {
		lagMin = 1
	}

	var series []float64
	for start := 0; start < len(samples); start += hopLength {
		end := start + frameLength
		if end > len(samples) {
			end = len(samples)
		}
		series = append(series, framePitch(samples[start:end], sampleRate, lagMin, lagMax))
	}
	return series
}

func framePitch(frame []float64, sampleRate, lagMin, lagMax int) float64 {
	if lagMax >= len(frame) {
		lagMax = len(frame) - 1
	}
	if lagMax < lagMin {
		return 0
	}

	var r0 float64
	for _, v := range frame {
		r0 += v * v
	}
	if math.Sqrt(r0/float64(len(frame))) < silenceRMS {
		return 0
	}

	bestLag := 0
	bestCorr := 0.0
	for lag := lagMin; lag <= lagMax; lag++ {
		var r float64
		for i := 0; i+lag < len(frame); i++ {
			r += frame[i] * frame[i+lag]
		}
		if norm := r / r0; norm > bestCorr {
			bestCorr = norm
			bestLag = lag
		}
	}

	if bestLag == 0 || bestCorr < voicingThreshold {
		return 0
	}
	return float64(sampleRate) / float64(bestLag)
}
