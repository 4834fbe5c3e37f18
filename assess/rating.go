package assess

import "fmt"

// Rating buckets the number of points used to discretize a curve.
type Rating int

const (
	// Unexpected is better than anything known to be achievable.
	Unexpected Rating = iota
	Optimal
	Exceptional
	Nice
	Ballpark
)

// RatePoints returns the rating of a discretization with n points.
func RatePoints(n int) Rating {
	switch {
	case n > 100:
		return Ballpark
	case n > 38:
		return Nice
	case n > 25:
		return Exceptional
	case n == 25:
		return Optimal
	default:
		return Unexpected
	}
}

func (r Rating) String() string {
	switch r {
	case Unexpected:
		return "unexpected"
	case Optimal:
		return "optimal"
	case Exceptional:
		return "exceptional"
	case Nice:
		return "nice"
	case Ballpark:
		return "ballpark"
	default:
		return fmt.Sprintf("Rating(%d)", int(r))
	}
}

// Message returns the verdict printed for the rating.
func (r Rating) Message() string {
	switch r {
	case Ballpark:
		return "In the ballpark of the example code. We can go faster!"
	case Nice:
		return "Pretty nice! You are well on your way!"
	case Exceptional:
		return "Exceptional! You should be very proud!"
	case Optimal:
		return "Optimal! (So far as I know...)"
	default:
		return "Better than what I thought possible?! I'd love to hear how you did this!"
	}
}
