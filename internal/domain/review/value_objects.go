package review

type Rating struct {
	value int
}

// NewRating rejects anything outside the closed interval [1,5]; zero is
// invalid, not "unset".
func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }
