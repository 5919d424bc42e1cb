package bref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const lineScoreFixture = `
<table id="line_score">
	<thead>
		<tr><th></th><th>1</th><th>2</th><th>3</th><th>4</th><th>T</th></tr>
	</thead>
	<tbody>
		<tr><th><a href="/teams/MIA/2024.html">MIA</a></th><td>25</td><td>30</td><td>22</td><td>25</td><td>102</td></tr>
		<tr><th><a href="/teams/BOS/2024.html">BOS</a></th><td>30</td><td>28</td><td>30</td><td>30</td><td>118</td></tr>
	</tbody>
</table>`

const fourFactorsFixture = `
<table id="four_factors">
	<thead>
		<tr><th></th><th>eFG%</th><th>TOV%</th><th>ORB%</th><th>FT/FGA</th></tr>
	</thead>
	<tbody>
		<tr><th>MIA</th><td>.489</td><td>11.9</td><td>22.5</td><td>.178</td></tr>
		<tr><th>BOS</th><td>.573</td><td>9.4</td><td>28.1</td><td>.205</td></tr>
	</tbody>
</table>`

func TestExtractLineScore(t *testing.T) {
	lineScore, fourFactors, err := ExtractLineScoreFourFactors(lineScoreFixture + fourFactorsFixture)
	require.NoError(t, err)
	require.Len(t, lineScore, 2)
	require.Len(t, fourFactors, 2)

	// Away team listed first on the source page
	require.Equal(t, "MIA", lineScore[0].Team)
	require.Equal(t, "BOS", lineScore[1].Team)

	require.Equal(t, "25", lineScore[0].Periods["1"])
	require.Equal(t, "102", lineScore[0].Periods["t"])
	require.Equal(t, "118", lineScore[1].Periods["t"])
	require.Equal(t, "No OT", lineScore[0].OvertimeInfo)
	require.Equal(t, "No OT", lineScore[1].OvertimeInfo)

	require.Equal(t, ".489", fourFactors[0].EFGPct)
	require.Equal(t, "11.9", fourFactors[0].TOVPct)
	require.Equal(t, "28.1", fourFactors[1].ORBPct)
	require.Equal(t, ".205", fourFactors[1].FTRate)
}

func TestExtractLineScoreOvertime(t *testing.T) {
	html := `
<table id="line_score">
	<thead>
		<tr><th></th><th>1</th><th>2</th><th>3</th><th>4</th><th>OT</th><th>T</th></tr>
	</thead>
	<tbody>
		<tr><th>MIA</th><td>25</td><td>30</td><td>22</td><td>25</td><td>10</td><td>112</td></tr>
		<tr><th>BOS</th><td>30</td><td>28</td><td>24</td><td>20</td><td>14</td><td>116</td></tr>
	</tbody>
</table>`

	lineScore, _, err := ExtractLineScoreFourFactors(html)
	require.NoError(t, err)
	require.Len(t, lineScore, 2)

	// Both teams play the same periods, so the label is shared
	require.Equal(t, "OT", lineScore[0].OvertimeInfo)
	require.Equal(t, "OT", lineScore[1].OvertimeInfo)
	require.Equal(t, "10", lineScore[0].Periods["ot"])
	require.Equal(t, "112", lineScore[0].Periods["t"])
}

func TestExtractLineScoreDoubleOvertime(t *testing.T) {
	html := `
<table id="line_score">
	<thead>
		<tr><th></th><th>1</th><th>2</th><th>3</th><th>4</th><th>OT1</th><th>OT2</th><th>T</th></tr>
	</thead>
	<tbody>
		<tr><th>MIA</th><td>25</td><td>30</td><td>22</td><td>25</td><td>10</td><td>8</td><td>120</td></tr>
		<tr><th>BOS</th><td>30</td><td>28</td><td>24</td><td>20</td><td>10</td><td>12</td><td>124</td></tr>
	</tbody>
</table>`

	lineScore, _, err := ExtractLineScoreFourFactors(html)
	require.NoError(t, err)
	require.Len(t, lineScore, 2)
	require.Equal(t, "2OT", lineScore[0].OvertimeInfo)
	require.Equal(t, "8", lineScore[0].Periods["ot2"])
}

func TestExtractLineScoreInsideComment(t *testing.T) {
	// The source ships these tables inside HTML comments; extraction falls
	// back to scanning the raw markup.
	html := "<html><body><div><!--" + lineScoreFixture + "--></div><div><!--" + fourFactorsFixture + "--></div></body></html>"

	lineScore, fourFactors, err := ExtractLineScoreFourFactors(html)
	require.NoError(t, err)
	require.Len(t, lineScore, 2)
	require.Len(t, fourFactors, 2)
	require.Equal(t, "MIA", lineScore[0].Team)
	require.Equal(t, ".573", fourFactors[1].EFGPct)
}

func TestExtractLineScoreMissingTables(t *testing.T) {
	lineScore, fourFactors, err := ExtractLineScoreFourFactors("<html><body><p>nothing here</p></body></html>")
	require.NoError(t, err)
	require.Empty(t, lineScore)
	require.Empty(t, fourFactors)
}

func TestGameContext(t *testing.T) {
	cases := []struct {
		html       string
		isPlayoff  bool
		round      string
		gameNumber int
		label      string
	}{
		{
			html:      "<html><body><h1>Miami Heat at Boston Celtics Box Score</h1></body></html>",
			isPlayoff: false,
			label:     "Regular Season",
		},
		{
			html:       "<html><body><div>NBA Finals, Game 3</div></body></html>",
			isPlayoff:  true,
			round:      "NBA Finals",
			gameNumber: 3,
			label:      "NBA Finals Game 3",
		},
		{
			html:       "<html><body><div>Eastern Conference First Round Game 6</div></body></html>",
			isPlayoff:  true,
			round:      "First Round",
			gameNumber: 6,
			label:      "First Round Game 6",
		},
		{
			html:       "<html><body><div>Play-In Tournament, Game 1</div></body></html>",
			isPlayoff:  true,
			round:      "Play-In Tournament",
			gameNumber: 1,
			label:      "Play-In Tournament Game 1",
		},
	}

	for _, test := range cases {
		info := GameContext(test.html)
		require.Equal(t, test.isPlayoff, info.IsPlayoff)
		require.Equal(t, test.round, info.Round)
		require.Equal(t, test.gameNumber, info.GameNumber)
		require.Equal(t, test.label, info.Label())
	}
}
