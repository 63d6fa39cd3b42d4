package domain

import "math"

// Label is the coarse polarity bucket.
type Label string

// Polarity labels.
const (
	LabelPositive Label = "positive"
	LabelNeutral  Label = "neutral"
	LabelNegative Label = "negative"
)

// LabelFor buckets polarity with a ±0.3 dead zone.
func LabelFor(polarity float64) Label {
	switch {
	case polarity > 0.3:
		return LabelPositive
	case polarity < -0.3:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Emotion is the dominant feeling of a quote.
type Emotion string

// Emotions, in keyword matching order.
const (
	EmotionJoy        Emotion = "joy"
	EmotionMotivation Emotion = "motivation"
	EmotionWisdom     Emotion = "wisdom"
	EmotionLove       Emotion = "love"
	EmotionSadness    Emotion = "sadness"
	EmotionAnger      Emotion = "anger"
	EmotionFear       Emotion = "fear"
)

// AllEmotions returns the emotions in keyword matching order.
func AllEmotions() []Emotion {
	return []Emotion{
		EmotionJoy, EmotionMotivation, EmotionWisdom, EmotionLove,
		EmotionSadness, EmotionAnger, EmotionFear,
	}
}

// EmotionForPolarity is used when no emotion keyword matched.
func EmotionForPolarity(polarity float64) Emotion {
	switch {
	case polarity > 0.5:
		return EmotionJoy
	case polarity > 0.1:
		return EmotionMotivation
	case polarity > -0.1:
		return EmotionWisdom
	case polarity > -0.5:
		return EmotionSadness
	default:
		return EmotionAnger
	}
}

// Sentiment is the annotation attached to a quote.
type Sentiment struct {
	Polarity     float64  `json:"polarity"`
	Subjectivity float64  `json:"subjectivity"`
	Label        Label    `json:"label"`
	Emotion      Emotion  `json:"emotion"`
	Intensity    float64  `json:"intensity"`
	Keywords     []string `json:"keywords,omitempty"`
}

// NewSentiment clamps the scores and derives Label and Intensity.
func NewSentiment(polarity, subjectivity float64, emotion Emotion, keywords []string) Sentiment {
	polarity = clamp(polarity, -1, 1)

	return Sentiment{
		Polarity:     polarity,
		Subjectivity: clamp(subjectivity, 0, 1),
		Label:        LabelFor(polarity),
		Emotion:      emotion,
		Intensity:    math.Abs(polarity),
		Keywords:     keywords,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
