package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Date
	}{
		{name: "date only", input: "2099-01-01", want: NewDate(2099, time.January, 1)},
		{name: "datetime", input: "2024-03-15T10:30:00", want: NewDate(2024, time.March, 15)},
		{name: "datetime with fraction", input: "2024-03-15T10:30:00.123456", want: NewDate(2024, time.March, 15)},
		{name: "datetime utc", input: "2024-03-15T23:59:59Z", want: NewDate(2024, time.March, 15)},
		{name: "offset keeps written date", input: "2024-03-15T23:30:00-05:00", want: NewDate(2024, time.March, 15)},
		{name: "space separator", input: "2024-03-15 08:00:00", want: NewDate(2024, time.March, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "2024-13-01", "2024/01/01", "01-02-2024", "2024-02-30"} {
		_, err := ParseDate(input)
		assert.ErrorIs(t, err, ErrInvalidDate, input)
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2024, time.May, 1)
	b := NewDate(2024, time.May, 2)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
	assert.False(t, a.Before(a))
	assert.True(t, a.Equal(NewDate(2024, time.May, 1)))
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2024-05-02 08:00 in UTC+10 is still 2024-05-01 in UTC
	now := time.Date(2024, time.May, 2, 8, 0, 0, 0, loc)
	assert.Equal(t, "2024-05-01", Today(now).String())
}

func TestDateJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2024, time.July, 4))
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-04"`, string(b))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-07-04T12:00:00"`), &d))
	assert.Equal(t, "2024-07-04", d.String())

	assert.Error(t, json.Unmarshal([]byte(`"July 4th"`), &d))
}

func TestDateBSON(t *testing.T) {
	type doc struct {
		Expires Date  `bson:"expires"`
		Starts  *Date `bson:"starts,omitempty"`
	}

	b, err := bson.Marshal(doc{Expires: NewDate(2030, time.December, 31)})
	require.NoError(t, err)

	var raw bson.M
	require.NoError(t, bson.Unmarshal(b, &raw))
	assert.Equal(t, "2030-12-31", raw["expires"])
	_, hasStart := raw["starts"]
	assert.False(t, hasStart)

	var decoded doc
	require.NoError(t, bson.Unmarshal(b, &decoded))
	assert.Equal(t, "2030-12-31", decoded.Expires.String())
	assert.Nil(t, decoded.Starts)
}

func TestDateBSONFromDatetime(t *testing.T) {
	b, err := bson.Marshal(bson.M{"expires": time.Date(2030, time.June, 1, 15, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	var decoded struct {
		Expires Date `bson:"expires"`
	}
	require.NoError(t, bson.Unmarshal(b, &decoded))
	assert.Equal(t, "2030-06-01", decoded.Expires.String())
}
