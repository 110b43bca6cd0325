package goquery_test

import (
	"testing"

	"github.com/k1-c/shiftwatch"
	"github.com/k1-c/shiftwatch/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schedulePage = `<!DOCTYPE html>
<html>
<head><title>出勤情報</title></head>
<body>
<div id="profile">
	<p>更新日 5/1 9:30</p>
</div>
<ul id="girl_sukkin">
	<li><dl><dt>5/3(土)</dt><dd>10:00～18:00</dd></dl></li>
	<li><dl><dt>5/4(日)</dt><dd>お休み</dd></dl></li>
	<li><dl><dt>5/10(土)</dt><dd>12:00～20:00</dd></dl></li>
</ul>
</body>
</html>`

func TestExtractor_Locate(t *testing.T) {
	t.Parallel()

	t.Run("returns container markup", func(t *testing.T) {
		t.Parallel()

		content, err := goquery.NewExtractor().Locate(schedulePage)

		require.NoError(t, err)
		assert.Contains(t, content, "<dl>")
		assert.Contains(t, content, "5/10(土)")
		assert.NotContains(t, content, "更新日")
	})

	t.Run("returns ENOTFOUND when container is missing", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><ul id="other"><li><dl><dt>5/3</dt><dd>10:00～18:00</dd></dl></li></ul></body></html>`

		_, err := goquery.NewExtractor().Locate(page)

		require.Error(t, err)
		assert.Equal(t, shiftwatch.ENOTFOUND, shiftwatch.ErrorCode(err))
	})

	t.Run("concatenates multiple containers in document order", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
<div class="week"><dl><dt>5/3</dt><dd>10:00-18:00</dd></dl></div>
<div class="week"><dl><dt>5/10</dt><dd>12:00-20:00</dd></dl></div>
</body></html>`
		ex := goquery.NewExtractor(goquery.WithContainerSelector("div.week"))

		content, err := ex.Locate(page)
		require.NoError(t, err)

		records, err := ex.Parse(content)
		require.NoError(t, err)
		assert.Equal(t, []shiftwatch.ScheduleRecord{
			{Day: "5/3", Time: "10:00 - 18:00"},
			{Day: "5/10", Time: "12:00 - 20:00"},
		}, records)
	})
}

func TestExtractor_Parse(t *testing.T) {
	t.Parallel()

	t.Run("returns one record per valid entry in order", func(t *testing.T) {
		t.Parallel()

		content := `
<li><dl><dt>5/3(土)</dt><dd>10:00～18:00</dd></dl></li>
<li><dl><dt>5/10(土)</dt><dd>12:00～20:00</dd></dl></li>
<li><dl><dt>5/17(土)</dt><dd>9:30～15:00</dd></dl></li>`

		records, err := goquery.NewExtractor().Parse(content)

		require.NoError(t, err)
		assert.Equal(t, []shiftwatch.ScheduleRecord{
			{Day: "5/3", Time: "10:00 - 18:00"},
			{Day: "5/10", Time: "12:00 - 20:00"},
			{Day: "5/17", Time: "9:30 - 15:00"},
		}, records)
	})

	t.Run("drops invalid entries without disturbing neighbors", func(t *testing.T) {
		t.Parallel()

		content := `
<li><dl><dt>5/3(土)</dt><dd>10:00～18:00</dd></dl></li>
<li><dl><dt>5/4(日)</dt><dd>お休み</dd></dl></li>
<li><dl><dt>未定</dt><dd>11:00～19:00</dd></dl></li>
<li><dl><dt>5/10(土)</dt><dd>12:00～20:00</dd></dl></li>`

		records, err := goquery.NewExtractor().Parse(content)

		require.NoError(t, err)
		assert.Equal(t, []shiftwatch.ScheduleRecord{
			{Day: "5/3", Time: "10:00 - 18:00"},
			{Day: "5/10", Time: "12:00 - 20:00"},
		}, records)
	})

	t.Run("returns empty schedule when every entry is invalid", func(t *testing.T) {
		t.Parallel()

		content := `<li><dl><dt>5/4(日)</dt><dd>お休み</dd></dl></li><li><dl><dd>調整中</dd></dl></li>`

		records, err := goquery.NewExtractor().Parse(content)

		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("returns EINVALID when there are no entries at all", func(t *testing.T) {
		t.Parallel()

		content := `<li>出勤情報はありません</li>`

		_, err := goquery.NewExtractor().Parse(content)

		require.Error(t, err)
		assert.Equal(t, shiftwatch.EINVALID, shiftwatch.ErrorCode(err))
	})

	t.Run("returns EINVALID for empty content", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor().Parse("")

		require.Error(t, err)
		assert.Equal(t, shiftwatch.EINVALID, shiftwatch.ErrorCode(err))
	})

	t.Run("keeps tokens separated by tags apart", func(t *testing.T) {
		t.Parallel()

		// As text this would read "5/310:00", where the day pattern would match "5/31".
		content := `<dl><dt>5/3</dt><dd>10:00</dd><dd>18:00</dd></dl>`

		records, err := goquery.NewExtractor().Parse(content)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "5/3", records[0].Day)
		assert.Equal(t, "10:00 - 18:00", records[0].Time)
	})

	t.Run("uses custom entry selector", func(t *testing.T) {
		t.Parallel()

		content := `<div class="day">5/3 10:00-18:00</div><div class="day">5/10 12:00-20:00</div>`

		records, err := goquery.NewExtractor(goquery.WithEntrySelector("div.day")).Parse(content)

		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}

func TestExtractor_LocateThenParse(t *testing.T) {
	t.Parallel()

	ex := goquery.NewExtractor()

	content, err := ex.Locate(schedulePage)
	require.NoError(t, err)

	records, err := ex.Parse(content)
	require.NoError(t, err)

	// The update stamp outside the container is not picked up.
	assert.Equal(t, []shiftwatch.ScheduleRecord{
		{Day: "5/3", Time: "10:00 - 18:00"},
		{Day: "5/10", Time: "12:00 - 20:00"},
	}, records)
}
