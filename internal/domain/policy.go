package domain

// BoardPolicy holds the content limits enforced on questions and answers.
type BoardPolicy struct {
	MaxTitleLength   int
	MaxContentLength int
	MaxTagLength     int
	MaxBountyPoints  int
}

// DefaultBoardPolicy returns the limits used when none are configured.
func DefaultBoardPolicy() BoardPolicy {
	return BoardPolicy{
		MaxTitleLength:   200,
		MaxContentLength: 50_000,
		MaxTagLength:     32,
		MaxBountyPoints:  10_000,
	}
}

// WithDefaults fills zero fields from DefaultBoardPolicy.
func (p BoardPolicy) WithDefaults() BoardPolicy {
	d := DefaultBoardPolicy()
	if p.MaxTitleLength <= 0 {
		p.MaxTitleLength = d.MaxTitleLength
	}
	if p.MaxContentLength <= 0 {
		p.MaxContentLength = d.MaxContentLength
	}
	if p.MaxTagLength <= 0 {
		p.MaxTagLength = d.MaxTagLength
	}
	if p.MaxBountyPoints <= 0 {
		p.MaxBountyPoints = d.MaxBountyPoints
	}
	return p
}
