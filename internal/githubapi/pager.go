package githubapi

import "context"

// Page is one fixed-size slice of a paginated listing.
type Page[T any] struct {
	Number  int
	Items   []T
	HasMore bool
}

// FetchPage loads one page by number. Implementations report HasMore=false
// on the final page (a short page or an exhausted upstream cursor).
type FetchPage[T any] func(ctx context.Context, page int) (Page[T], error)

// Pager walks a paginated listing lazily, one page per Next call. The
// sequence is not seekable: a consumer that stops mid-way must persist its
// own position (the sync watermark) and reissue the listing to continue.
type Pager[T any] struct {
	fetch FetchPage[T]
	next  int
	done  bool
}

func NewPager[T any](fetch FetchPage[T]) *Pager[T] {
	return &Pager[T]{fetch: fetch, next: 1}
}

// Next returns the next page. ok is false once the sequence is exhausted.
// A fetch error terminates the sequence; the pager does not retry.
func (p *Pager[T]) Next(ctx context.Context) (page Page[T], ok bool, err error) {
	if p.done {
		return Page[T]{}, false, nil
	}

	page, err = p.fetch(ctx, p.next)
	if err != nil {
		p.done = true
		return Page[T]{}, false, err
	}

	page.Number = p.next
	p.next++
	if !page.HasMore {
		p.done = true
	}
	return page, true, nil
}
