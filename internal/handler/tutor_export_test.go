package handler

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tutorhub/internal/seed"
)

func TestGenerateTutorExport(t *testing.T) {
	data, err := GenerateTutorExport(seed.Tutors())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Tutors")
	require.NoError(t, err)
	require.Len(t, rows, 37, "header plus one row per tutor")
	assert.Equal(t, tutorExportHeader, rows[0])
	assert.Equal(t, "tutor-1", rows[1][0])
	assert.Equal(t, "Rafiq Ahmed", rows[1][1])
	assert.Equal(t, "APPROVED", rows[1][9])
}

func TestGenerateTutorExport_Empty(t *testing.T) {
	data, err := GenerateTutorExport(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Tutors")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
