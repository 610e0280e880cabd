package newsletter

import "errors"

// Issue is a newsletter issue submitted for publication.
type Issue struct {
	Title   string  `json:"title"`
	Content Content `json:"content"`
}

// Content carries the issue body in both formats; every outbound email
// includes both.
type Content struct {
	HTML string `json:"html"`
	Text string `json:"text"`
}

var (
	ErrTitleMissing   = errors.New("newsletter title must not be empty")
	ErrContentMissing = errors.New("newsletter content must include html and text bodies")
)

func (i *Issue) Validate() error {
	if i.Title == "" {
		return ErrTitleMissing
	}
	if i.Content.HTML == "" || i.Content.Text == "" {
		return ErrContentMissing
	}
	return nil
}
