package spaced_repetition

import "fmt"

// Rating is the learner's self-assessment after seeing the answer. The four
// buttons map onto SM-2's 0-5 quality scale through a RatingScale table.
type Rating int

const (
	// Complete blackout, the card must be relearned
	RatingAgain Rating = iota
	// Recalled, but with significant effort or only partially
	RatingHard
	// Correct recall with some hesitation
	RatingGood
	// Perfect recall with no hesitation
	RatingEasy
)

// Ratings lists the valid ratings in button order
var Ratings = []Rating{RatingAgain, RatingHard, RatingGood, RatingEasy}

func (r Rating) String() string {
	switch r {
	case RatingAgain:
		return "Again"
	case RatingHard:
		return "Hard"
	case RatingGood:
		return "Good"
	case RatingEasy:
		return "Easy"
	default:
		return fmt.Sprintf("Rating(%d)", int(r))
	}
}

// RatingScale maps ratings to SM-2 quality values (0 = total failure,
// 5 = perfect recall). The mapping is a table rather than arithmetic on the
// Rating value so it can be tuned without touching the algorithm.
type RatingScale map[Rating]int

// DefaultRatingScale deliberately trades granularity for a simple four
// button UI: Hard sits at the pass threshold, so a hard recall still counts
// as a success.
func DefaultRatingScale() RatingScale {
	return RatingScale{
		RatingAgain: 0,
		RatingHard:  3,
		RatingGood:  4,
		RatingEasy:  5,
	}
}

// InvalidRatingError reports a rating outside the closed four-value set.
// It indicates a bug in the presentation layer, not a runtime condition to
// recover from.
type InvalidRatingError struct {
	Rating Rating
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("invalid rating: %d (valid: Again, Hard, Good, Easy)", int(e.Rating))
}
