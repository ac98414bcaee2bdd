package githubapi

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceFetcher pages over a fixed slice with the given page size.
func sliceFetcher(items []int, pageSize int) FetchPage[int] {
	return func(_ context.Context, page int) (Page[int], error) {
		start := (page - 1) * pageSize
		if start >= len(items) {
			return Page[int]{}, nil
		}
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}
		return Page[int]{Items: items[start:end], HasMore: end < len(items)}, nil
	}
}

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func collect(t *testing.T, p *Pager[int]) ([]Page[int], error) {
	t.Helper()
	var pages []Page[int]
	for {
		page, ok, err := p.Next(context.Background())
		if err != nil {
			return pages, err
		}
		if !ok {
			return pages, nil
		}
		pages = append(pages, page)
	}
}

func TestPager_ExactMultipleOfPageSize(t *testing.T) {
	p := NewPager(sliceFetcher(intRange(300), 100))

	pages, err := collect(t, p)

	require.NoError(t, err)
	require.Len(t, pages, 3)
	for i, page := range pages {
		assert.Equal(t, i+1, page.Number)
		assert.Len(t, page.Items, 100)
	}
	assert.False(t, pages[2].HasMore)
}

func TestPager_TrailingPartialPage(t *testing.T) {
	p := NewPager(sliceFetcher(intRange(250), 100))

	pages, err := collect(t, p)

	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Len(t, pages[0].Items, 100)
	assert.Len(t, pages[1].Items, 100)
	assert.Len(t, pages[2].Items, 50)
	assert.False(t, pages[2].HasMore)
}

func TestPager_EmptySequence(t *testing.T) {
	p := NewPager(sliceFetcher(nil, 100))

	pages, err := collect(t, p)

	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Empty(t, pages[0].Items)
	assert.False(t, pages[0].HasMore)
}

func TestPager_ExhaustedStaysExhausted(t *testing.T) {
	p := NewPager(sliceFetcher(intRange(5), 100))

	_, ok, err := p.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		_, ok, err = p.Next(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestPager_ErrorTerminatesSequence(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	p := NewPager(func(_ context.Context, page int) (Page[int], error) {
		calls++
		if page == 2 {
			return Page[int]{}, boom
		}
		return Page[int]{Items: []int{1}, HasMore: true}, nil
	})

	_, ok, err := p.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = p.Next(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.False(t, ok)

	// A failed pager does not refetch.
	_, ok, err = p.Next(context.Background())
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, calls)
}
