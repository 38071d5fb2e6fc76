package scoring

import "strconv"

type bandThreshold struct {
	minCorrect int
	band       float64
}

// Official IELTS Academic Reading conversion, highest threshold first.
var academicReadingBands = []bandThreshold{
	{39, 9.0},
	{37, 8.5},
	{35, 8.0},
	{33, 7.5},
	{30, 7.0},
	{27, 6.5},
	{23, 6.0},
	{19, 5.5},
	{15, 5.0},
	{13, 4.5},
	{10, 4.0},
	{8, 3.5},
	{6, 3.0},
	{5, 2.5},
}

const floorBand = 2.0

// BandValue returns the band for a raw correct count.
func BandValue(correctCount int) float64 {
	for _, t := range academicReadingBands {
		if correctCount >= t.minCorrect {
			return t.band
		}
	}
	return floorBand
}

// BandScore returns the band for a raw correct count formatted with exactly
// one decimal digit, e.g. "7.0".
func BandScore(correctCount int) string {
	return strconv.FormatFloat(BandValue(correctCount), 'f', 1, 64)
}
