package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBlogRequestValidate(t *testing.T) {
	testCases := []struct {
		name string
		req  ListBlogRequest
		want error
	}{
		{name: "defaults", req: ListBlogRequest{Page: 1, Limit: 10, SortBy: "timestamp", SortOrder: "desc"}},
		{name: "title asc", req: ListBlogRequest{Page: 2, Limit: 100, SortBy: "title", SortOrder: "asc"}},
		{name: "sort by price", req: ListBlogRequest{Page: 1, Limit: 10, SortBy: "price", SortOrder: "asc"}, want: ErrInvalidSortField},
		{name: "ascending", req: ListBlogRequest{Page: 1, Limit: 10, SortBy: "id", SortOrder: "ascending"}, want: ErrInvalidSortOrder},
		{name: "page zero", req: ListBlogRequest{Page: 0, Limit: 10, SortBy: "id", SortOrder: "asc"}, want: ErrInvalidPage},
		{name: "limit too big", req: ListBlogRequest{Page: 1, Limit: 101, SortBy: "id", SortOrder: "asc"}, want: ErrInvalidLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseEventDate(t *testing.T) {
	d, err := ParseEventDate("2025-12-25")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25", d.Format(EventDateLayout))

	d, err = ParseEventDate("2025-12-25T18:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25", d.Format(EventDateLayout))

	_, err = ParseEventDate("25/12/2025")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNormalizeClock(t *testing.T) {
	v, err := NormalizeClock("start_time", "18:30")
	require.NoError(t, err)
	assert.Equal(t, "18:30:00", v)

	v, err = NormalizeClock("start_time", "09:05:10")
	require.NoError(t, err)
	assert.Equal(t, "09:05:10", v)

	_, err = NormalizeClock("end_time", "25:00")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMoneyMarshal(t *testing.T) {
	b, err := json.Marshal(struct {
		Price Money  `json:"price"`
		Old   *Money `json:"old"`
	}{Price: NewMoney(decimal.NewFromInt(270))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":270.00,"old":null}`, string(b))
}

func TestUpdateOrderRequestIsEmpty(t *testing.T) {
	assert.True(t, (&UpdateOrderRequest{ID: 1}).IsEmpty())
	p := 3
	assert.False(t, (&UpdateOrderRequest{ID: 1, Participants: &p}).IsEmpty())
}
