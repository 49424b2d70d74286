package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBoundaries(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StatusError, Classify(0))
	assert.Equal(t, StatusWarning, Classify(1))
	assert.Equal(t, StatusWarning, Classify(15))
	assert.Equal(t, StatusWarning, Classify(49))
	assert.Equal(t, StatusOK, Classify(50))
	assert.Equal(t, StatusOK, Classify(10000))
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "OK", StatusOK.String())
	assert.Equal(t, "WARNING", StatusWarning.String())
	assert.Equal(t, "ERROR", StatusError.String())
}

func TestProjectReportStatusOfMissingCell(t *testing.T) {
	t.Parallel()

	lines := NewAuthorDateTable()
	lines.Add("A", MustParseDate("2024-01-01"), 60)

	report := NewProjectReport("p", nil, nil, lines)

	assert.Equal(t, StatusOK, report.Status("A", MustParseDate("2024-01-01")))
	assert.Equal(t, StatusError, report.Status("A", MustParseDate("2024-01-02")))
	assert.Equal(t, StatusError, report.Status("B", MustParseDate("2024-01-01")))
}
