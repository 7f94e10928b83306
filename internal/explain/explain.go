package explain

func VAMath() string {
	return `VA math is not simple addition: each rating applies to the capacity left over after the higher ratings have been counted.

Ratings are taken in descending order. Each step computes the remaining capacity (100 minus the running combined total), adds that remaining share scaled by the current rating, and rounds the running total half-up to a whole percent.

That is why 50% and 30% combine to 65%, not 80%: the 30% rating only applies to the 50% of capacity the first rating left behind.`
}

func Rounding() string {
	return `Two rounding rules apply, both round-half-up.

After each step the running combined total is rounded to the nearest whole percent, with .5 rounding upward.

The final combined total is then rounded to the nearest multiple of ten: a remainder of five or more rounds up, anything less rounds down. A combined 65% therefore becomes a 70% final rating, while 64% becomes 60%.`
}
