package bref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const scheduleFixture = `
<html><body>
<div class="game_summary expanded nohover">
	<table class="teams">
		<tbody>
			<tr class="loser"><td><a href="/teams/MIA/2024.html">Miami Heat</a></td><td class="right">102</td></tr>
			<tr class="winner"><td><a href="/teams/BOS/2024.html">Boston Celtics</a></td><td class="right">118</td></tr>
		</tbody>
	</table>
	<p class="links"><a href="/boxscores/202403050BOS.html">Final</a></p>
</div>
<div class="game_summary expanded nohover">
	<table class="teams">
		<tbody>
			<tr class="winner"><td><a href="/teams/DEN/2024.html">Denver Nuggets</a></td><td class="right">115</td></tr>
			<tr class="loser"><td><a href="/teams/PHO/2024.html">Phoenix Suns</a></td><td class="right">107</td></tr>
		</tbody>
	</table>
	<p class="links"><a href="/boxscores/202403050DEN.html">Final</a></p>
</div>
</body></html>`

func TestParseSchedule(t *testing.T) {
	games, err := ParseSchedule(scheduleFixture, "")
	require.NoError(t, err)
	require.Len(t, games, 2)

	require.Equal(t, "Boston Celtics", games[0].Winner)
	require.Equal(t, 118, games[0].WinnerScore)
	require.Equal(t, "Miami Heat", games[0].Loser)
	require.Equal(t, 102, games[0].LoserScore)
	require.Equal(t, BaseURL+"/boxscores/202403050BOS.html", games[0].BoxScoreURL)

	require.Equal(t, "Denver Nuggets", games[1].Winner)
	require.Equal(t, "Phoenix Suns", games[1].Loser)
}

func TestParseScheduleTeamFilter(t *testing.T) {
	cases := []struct {
		filter string
		expect int
	}{
		{filter: "Boston", expect: 1},
		{filter: "Boston Celtics", expect: 1},
		{filter: "Miami", expect: 1},
		{filter: "Denver", expect: 1},
		{filter: "Toronto", expect: 0},
	}

	for _, test := range cases {
		games, err := ParseSchedule(scheduleFixture, test.filter)
		require.NoError(t, err)
		require.Len(t, games, test.expect, "filter %q", test.filter)
	}
}

func TestParseScheduleMalformedBlocks(t *testing.T) {
	// A block missing its winner row still parses with sentinel values;
	// a block with no box-score link is dropped.
	html := `
<div class="game_summary expanded nohover">
	<table class="teams">
		<tbody>
			<tr class="loser"><td><a>Miami Heat</a></td><td class="right">oops</td></tr>
		</tbody>
	</table>
	<p class="links"><a href="/boxscores/202403050BOS.html">Final</a></p>
</div>
<div class="game_summary expanded nohover">
	<table class="teams">
		<tbody>
			<tr class="winner"><td><a>Denver Nuggets</a></td><td class="right">115</td></tr>
			<tr class="loser"><td><a>Phoenix Suns</a></td><td class="right">107</td></tr>
		</tbody>
	</table>
</div>`

	games, err := ParseSchedule(html, "")
	require.NoError(t, err)
	require.Len(t, games, 1)
	require.Equal(t, "Unknown", games[0].Winner)
	require.Equal(t, 0, games[0].WinnerScore)
	require.Equal(t, "Miami Heat", games[0].Loser)
	require.Equal(t, 0, games[0].LoserScore)
}

func TestParseScheduleEmptyPage(t *testing.T) {
	games, err := ParseSchedule("<html><body></body></html>", "")
	require.NoError(t, err)
	require.Empty(t, games)
}

func TestAbsoluteURL(t *testing.T) {
	require.Equal(t, BaseURL+"/boxscores/x.html", absoluteURL("/boxscores/x.html"))
	require.Equal(t, BaseURL+"/boxscores/x.html", absoluteURL("boxscores/x.html"))
	require.Equal(t, "https://example.com/x", absoluteURL("https://example.com/x"))
}
