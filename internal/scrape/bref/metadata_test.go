package bref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const metadataFixture = `
<html><body>
<div>Officials: <a href="/referees/smithje99r.html">Josh Tiven</a>, <a href="/referees/doejo99r.html">Marc Davis</a>, <a href="/referees/roeja99r.html">Jacyn Goble</a>&nbsp;</div>
<div>Attendance:&nbsp;19,156</div>
<div>Time of Game: 2:14</div>
</body></html>`

func TestExtractMetadata(t *testing.T) {
	md := ExtractMetadata(metadataFixture)

	require.NotNil(t, md.Officials)
	require.Equal(t, "Josh Tiven, Marc Davis, Jacyn Goble", *md.Officials)

	require.NotNil(t, md.Attendance)
	require.Equal(t, "19,156", *md.Attendance)

	require.NotNil(t, md.TimeOfGame)
	require.Equal(t, "2:14", *md.TimeOfGame)
}

func TestExtractMetadataFieldsIndependent(t *testing.T) {
	// Each label missing from the page nulls that field only
	md := ExtractMetadata(`<html><body><div>Attendance:&nbsp;601</div></body></html>`)
	require.Nil(t, md.Officials)
	require.NotNil(t, md.Attendance)
	require.Equal(t, "601", *md.Attendance)
	require.Nil(t, md.TimeOfGame)
}

func TestExtractMetadataEmptyPage(t *testing.T) {
	md := ExtractMetadata("<html><body></body></html>")
	require.Nil(t, md.Officials)
	require.Nil(t, md.Attendance)
	require.Nil(t, md.TimeOfGame)
}

const inactiveFixture = `
<html><body>
<div>
	<strong>Inactive:</strong>
	<span><strong>MIA</strong></span>
	<a href="/players/h/herroty01.html">Tyler Herro</a>,
	<a href="/players/r/richani01.html">Nick Richards</a>
	<span><strong>BOS</strong></span>
	<a href="/players/b/banchpa01.html">Paolo Banchero</a>
</div>
</body></html>`

func TestExtractInactivePlayers(t *testing.T) {
	records, err := ExtractInactivePlayers(inactiveFixture)
	require.NoError(t, err)
	require.Len(t, records, 3)

	require.Equal(t, InactivePlayerRecord{Player: "Tyler Herro", Team: "MIA", Reason: InactiveReason}, records[0])
	require.Equal(t, InactivePlayerRecord{Player: "Nick Richards", Team: "MIA", Reason: InactiveReason}, records[1])
	require.Equal(t, InactivePlayerRecord{Player: "Paolo Banchero", Team: "BOS", Reason: InactiveReason}, records[2])
}

func TestExtractInactivePlayersMissingSection(t *testing.T) {
	records, err := ExtractInactivePlayers("<html><body><strong>Officials</strong></body></html>")
	require.NoError(t, err)
	require.Empty(t, records)
}
